package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/project/lending/internal/entity"
	"go.uber.org/zap"
)

type finesResponse struct {
	Total   float64                `json:"total"`
	Details []entity.OverdueDetail `json:"details"`
}

func (i *implementation) GetFines(c *gin.Context) {
	i.logger.Info("Validating get fines request.")

	userID := c.Param("id")

	total, details, err := i.lendingUseCase.FinesForUser(c.Request.Context(), userID)

	if err != nil {
		i.logger.Error("Error during get fines request.", zap.Error(err))
		c.JSON(http.StatusOK, failFromError(err))
		return
	}

	i.logger.Info("Get fines request has passed successfully.")

	c.JSON(http.StatusOK, ok(finesResponse{Total: total, Details: details}))
}
