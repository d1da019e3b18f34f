package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (i *implementation) SearchBooks(c *gin.Context) {
	i.logger.Info("Validating search books request.")

	query := c.Query("q")

	books, err := i.inventoryUseCase.Search(c.Request.Context(), query)

	if err != nil {
		i.logger.Error("Error during search books request.", zap.Error(err))
		c.JSON(http.StatusOK, failFromError(err))
		return
	}

	i.logger.Info("Search books request has passed successfully.")

	c.JSON(http.StatusOK, ok(books))
}
