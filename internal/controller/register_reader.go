package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerReaderRequest struct {
	Username string `json:"username" binding:"required"`
	CardID   string `json:"card_id" binding:"required"`
}

func (i *implementation) RegisterReader(c *gin.Context) {
	i.logger.Info("Validating register reader request.")

	var request registerReaderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		i.logger.Error("Error during validating register reader request.", zap.Error(err))
		c.JSON(http.StatusOK, fail(codeBadRequest, err.Error()))
		return
	}

	user, err := i.authUseCase.RegisterReader(c.Request.Context(), request.Username, request.CardID)

	if err != nil {
		i.logger.Error("Error during register reader request.", zap.Error(err))
		c.JSON(http.StatusOK, failFromError(err))
		return
	}

	i.logger.Info("Register reader request has passed successfully.")

	c.JSON(http.StatusOK, ok(user))
}
