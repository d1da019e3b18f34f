package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (i *implementation) GetStats(c *gin.Context) {
	i.logger.Info("Validating get stats request.")

	statistics, err := i.statsUseCase.Statistics(c.Request.Context())

	if err != nil {
		i.logger.Error("Error during get stats request.", zap.Error(err))
		c.JSON(http.StatusOK, failFromError(err))
		return
	}

	i.logger.Info("Get stats request has passed successfully.")

	c.JSON(http.StatusOK, ok(statistics))
}
