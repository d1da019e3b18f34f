package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type addBookRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
	Year   int    `json:"year"`
	Genre  string `json:"genre"`
}

func (i *implementation) AddBook(c *gin.Context) {
	i.logger.Info("Validating add book request.")

	var request addBookRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		i.logger.Error("Error during validating add book request.", zap.Error(err))
		c.JSON(http.StatusOK, fail(codeBadRequest, err.Error()))
		return
	}

	book, err := i.inventoryUseCase.AddBook(c.Request.Context(), request.Title, request.Author, request.Year, request.Genre)

	if err != nil {
		i.logger.Error("Error during add book request.", zap.Error(err))
		c.JSON(http.StatusOK, failFromError(err))
		return
	}

	i.logger.Info("Add book request has passed successfully.")

	c.JSON(http.StatusOK, ok(book))
}
