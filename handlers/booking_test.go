package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"voyago/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingRepo struct {
	record *models.BookingRecord
	err    error
}

func (r *stubBookingRepo) GetByID(_ context.Context, _ string) (*models.BookingRecord, error) {
	return r.record, r.err
}

func (r *stubBookingRepo) GetHistoryByTravelerID(_ context.Context, _ string, _ []models.BookingStatus, _ int) ([]models.BookingRecord, error) {
	return nil, nil
}

func bookingRouter(repo *stubBookingRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(repo)
	r.GET("/api/bookings/:id", h.GetBookingByIDHandler)
	return r
}

func TestGetBookingByIDHandler_Found(t *testing.T) {
	repo := &stubBookingRepo{record: &models.BookingRecord{
		ID:     "b-1",
		City:   "Paris",
		Guests: 4,
		Status: models.BookingAccepted,
	}}
	router := bookingRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/b-1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "Paris")
}

func TestGetBookingByIDHandler_NotFound(t *testing.T) {
	router := bookingRouter(&stubBookingRepo{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBookingByIDHandler_RepoError(t *testing.T) {
	router := bookingRouter(&stubBookingRepo{err: errors.New("db down")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/b-1", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
