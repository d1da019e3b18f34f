package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type returnAllRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (i *implementation) ReturnAll(c *gin.Context) {
	i.logger.Info("Validating return all request.")

	var request returnAllRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		i.logger.Error("Error during validating return all request.", zap.Error(err))
		c.JSON(http.StatusOK, fail(codeBadRequest, err.Error()))
		return
	}

	result, err := i.lendingUseCase.ReturnAll(c.Request.Context(), request.UserID)

	if err != nil {
		i.logger.Error("Error during return all request.", zap.Error(err))
		c.JSON(http.StatusOK, failFromError(err))
		return
	}

	i.logger.Info("Return all request has passed successfully.")

	c.JSON(http.StatusOK, ok(result))
}
