package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type batchDeleteRequest struct {
	BookIDs []string `json:"book_ids" binding:"required"`
}

func (i *implementation) BatchDeleteBooks(c *gin.Context) {
	i.logger.Info("Validating batch delete request.")

	var request batchDeleteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		i.logger.Error("Error during validating batch delete request.", zap.Error(err))
		c.JSON(http.StatusOK, fail(codeBadRequest, err.Error()))
		return
	}

	result, err := i.inventoryUseCase.BatchDelete(c.Request.Context(), request.BookIDs)

	if err != nil {
		i.logger.Error("Error during batch delete request.", zap.Error(err))
		c.JSON(http.StatusOK, failFromError(err))
		return
	}

	i.logger.Info("Batch delete request has passed successfully.")

	c.JSON(http.StatusOK, ok(result))
}
