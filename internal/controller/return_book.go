package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type returnBookRequest struct {
	UserID string `json:"user_id" binding:"required"`
	BookID string `json:"book_id" binding:"required"`
}

func (i *implementation) ReturnBook(c *gin.Context) {
	i.logger.Info("Validating return book request.")

	var request returnBookRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		i.logger.Error("Error during validating return book request.", zap.Error(err))
		c.JSON(http.StatusOK, fail(codeBadRequest, err.Error()))
		return
	}

	result, err := i.lendingUseCase.Return(c.Request.Context(), request.UserID, request.BookID)

	if err != nil {
		i.logger.Error("Error during return book request.", zap.Error(err))
		c.JSON(http.StatusOK, failFromError(err))
		return
	}

	i.logger.Info("Return book request has passed successfully.")

	c.JSON(http.StatusOK, ok(result))
}
