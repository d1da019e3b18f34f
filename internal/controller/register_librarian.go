package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerLibrarianRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func (i *implementation) RegisterLibrarian(c *gin.Context) {
	i.logger.Info("Validating register librarian request.")

	var request registerLibrarianRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		i.logger.Error("Error during validating register librarian request.", zap.Error(err))
		c.JSON(http.StatusOK, fail(codeBadRequest, err.Error()))
		return
	}

	user, err := i.authUseCase.RegisterLibrarian(c.Request.Context(), request.Username, request.Password)

	if err != nil {
		i.logger.Error("Error during register librarian request.", zap.Error(err))
		c.JSON(http.StatusOK, failFromError(err))
		return
	}

	i.logger.Info("Register librarian request has passed successfully.")

	c.JSON(http.StatusOK, ok(user))
}
