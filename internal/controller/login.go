package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/project/lending/internal/entity"
	"go.uber.org/zap"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

func (i *implementation) Login(c *gin.Context) {
	i.logger.Info("Validating login request.")

	var request loginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		i.logger.Error("Error during validating login request.", zap.Error(err))
		c.JSON(http.StatusOK, fail(codeBadRequest, err.Error()))
		return
	}

	token, user, err := i.authUseCase.Login(c.Request.Context(), request.Username, request.Password)

	if err != nil {
		i.logger.Error("Error during login request.", zap.Error(err))
		c.JSON(http.StatusOK, failFromError(err))
		return
	}

	i.logger.Info("Login request has passed successfully.")

	c.JSON(http.StatusOK, ok(loginResponse{Token: token, User: user}))
}
