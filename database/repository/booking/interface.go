package bookingRepo

import (
	"context"

	"voyago/database"
	"voyago/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository resolves stored bookings for the planner. Lookups that
// find nothing return (nil, nil) / an empty slice rather than an error so
// the pipeline can degrade instead of failing.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	GetHistoryByTravelerID(ctx context.Context, travelerID string, statuses []models.BookingStatus, limit int) ([]models.BookingRecord, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("voyago")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
