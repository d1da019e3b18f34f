package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (i *implementation) SafeDeleteUser(c *gin.Context) {
	i.logger.Info("Validating safe delete user request.")

	userID := c.Param("id")

	result, err := i.inventoryUseCase.SafeDeleteUser(c.Request.Context(), userID)

	if err != nil {
		i.logger.Error("Error during safe delete user request.", zap.Error(err))
		c.JSON(http.StatusOK, failFromError(err))
		return
	}

	i.logger.Info("Safe delete user request has passed successfully.")

	c.JSON(http.StatusOK, ok(result))
}
