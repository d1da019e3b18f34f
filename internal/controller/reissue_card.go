package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type reissueCardRequest struct {
	NewCardID string `json:"new_card_id" binding:"required"`
}

func (i *implementation) ReissueCard(c *gin.Context) {
	i.logger.Info("Validating reissue card request.")

	var request reissueCardRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		i.logger.Error("Error during validating reissue card request.", zap.Error(err))
		c.JSON(http.StatusOK, fail(codeBadRequest, err.Error()))
		return
	}

	user, err := i.authUseCase.ReissueCard(c.Request.Context(), c.Param("id"), request.NewCardID)

	if err != nil {
		i.logger.Error("Error during reissue card request.", zap.Error(err))
		c.JSON(http.StatusOK, failFromError(err))
		return
	}

	i.logger.Info("Reissue card request has passed successfully.")

	c.JSON(http.StatusOK, ok(user))
}
