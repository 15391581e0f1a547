package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"voyago/models"
	"voyago/services/planner"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlanHandler exposes the itinerary planner over HTTP.
type PlanHandler struct {
	Service planner.PlannerService
	Timeout time.Duration
}

func NewPlanHandler(svc planner.PlannerService, timeout time.Duration) *PlanHandler {
	return &PlanHandler{Service: svc, Timeout: timeout}
}

// CreatePlanHandler validates the request body and runs the pipeline under
// the configured overall timeout.
func (h *PlanHandler) CreatePlanHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid plan request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	ctx := c.Request.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	plan, err := h.Service.CreateTravelPlan(ctx, req)
	if err != nil {
		var planErr *planner.PlanError
		if errors.As(err, &planErr) && planErr.Code == planner.CodeInvalidDates {
			utils.JSONError(c, http.StatusBadRequest, "Failed to generate travel plan", planErr.Message)
			return
		}
		logger.Error("Travel plan generation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate travel plan", err.Error())
		return
	}

	c.JSON(http.StatusOK, plan)
}
