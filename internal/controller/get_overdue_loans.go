package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (i *implementation) GetOverdueLoans(c *gin.Context) {
	i.logger.Info("Validating get overdue loans request.")

	userID := c.Param("id")

	loans, err := i.lendingUseCase.OverdueForUser(c.Request.Context(), userID)

	if err != nil {
		i.logger.Error("Error during get overdue loans request.", zap.Error(err))
		c.JSON(http.StatusOK, failFromError(err))
		return
	}

	i.logger.Info("Get overdue loans request has passed successfully.")

	c.JSON(http.StatusOK, ok(loans))
}
