package handlers

import (
	"net/http"

	bookingRepo "voyago/database/repository/booking"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking lookups backing the planner.
type BookingHandler struct {
	Repo bookingRepo.BookingRepository
}

func NewBookingHandler(repo bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Repo: repo}
}

// GetBookingByIDHandler returns a stored booking record.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	id := c.Param("id")

	record, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch booking", zap.String("bookingId", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking", err.Error())
		return
	}
	if record == nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": record})
}
