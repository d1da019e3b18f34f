package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (i *implementation) SafeDeleteBook(c *gin.Context) {
	i.logger.Info("Validating safe delete book request.")

	bookID := c.Param("id")

	result, err := i.inventoryUseCase.SafeDeleteBook(c.Request.Context(), bookID)

	if err != nil {
		i.logger.Error("Error during safe delete book request.", zap.Error(err))
		c.JSON(http.StatusOK, failFromError(err))
		return
	}

	i.logger.Info("Safe delete book request has passed successfully.")

	c.JSON(http.StatusOK, ok(result))
}
