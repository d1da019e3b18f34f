package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/project/lending/internal/entity"
	"go.uber.org/zap"
)

// DeletionCandidates lists books matching one selection filter: author,
// genre (optionally exact), year_before, or lost. Exactly one filter is
// expected per call.
func (i *implementation) DeletionCandidates(c *gin.Context) {
	i.logger.Info("Validating deletion candidates request.")

	ctx := c.Request.Context()

	var (
		books []entity.Book
		err   error
	)

	switch {
	case c.Query("author") != "":
		books, err = i.inventoryUseCase.CandidatesByAuthor(ctx, c.Query("author"))
	case c.Query("genre") != "":
		exact := c.Query("exact") == "true"
		books, err = i.inventoryUseCase.CandidatesByGenre(ctx, c.Query("genre"), exact)
	case c.Query("year_before") != "":
		var year int
		year, err = strconv.Atoi(c.Query("year_before"))
		if err != nil {
			i.logger.Error("Error during validating deletion candidates request.", zap.Error(err))
			c.JSON(http.StatusOK, fail(codeBadRequest, "year_before must be an integer"))
			return
		}
		books, err = i.inventoryUseCase.CandidatesByYearBefore(ctx, year)
	case c.Query("lost") == "true":
		books, err = i.inventoryUseCase.LostBookCandidates(ctx)
	default:
		c.JSON(http.StatusOK, fail(codeBadRequest, "one of author, genre, year_before or lost is required"))
		return
	}

	if err != nil {
		i.logger.Error("Error during deletion candidates request.", zap.Error(err))
		c.JSON(http.StatusOK, failFromError(err))
		return
	}

	i.logger.Info("Deletion candidates request has passed successfully.")

	c.JSON(http.StatusOK, ok(books))
}
