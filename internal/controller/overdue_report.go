package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (i *implementation) GetOverdueReport(c *gin.Context) {
	i.logger.Info("Validating overdue report request.")

	entries, err := i.statsUseCase.OverdueReport(c.Request.Context())

	if err != nil {
		i.logger.Error("Error during overdue report request.", zap.Error(err))
		c.JSON(http.StatusOK, failFromError(err))
		return
	}

	i.logger.Info("Overdue report request has passed successfully.")

	c.JSON(http.StatusOK, ok(entries))
}
