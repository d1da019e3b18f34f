package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type borrowBookRequest struct {
	UserID string `json:"user_id" binding:"required"`
	BookID string `json:"book_id" binding:"required"`
}

func (i *implementation) BorrowBook(c *gin.Context) {
	i.logger.Info("Validating borrow book request.")

	var request borrowBookRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		i.logger.Error("Error during validating borrow book request.", zap.Error(err))
		c.JSON(http.StatusOK, fail(codeBadRequest, err.Error()))
		return
	}

	result, err := i.lendingUseCase.Borrow(c.Request.Context(), request.UserID, request.BookID)

	if err != nil {
		i.logger.Error("Error during borrow book request.", zap.Error(err))
		c.JSON(http.StatusOK, failFromError(err))
		return
	}

	i.logger.Info("Borrow book request has passed successfully.")

	c.JSON(http.StatusOK, ok(result))
}
