package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID returns the booking record with the given ID, or (nil, nil) when
// no such booking exists.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.BookingRecord, error) {
	var record models.BookingRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &record, nil
}

// GetHistoryByTravelerID returns up to limit bookings for the traveler with
// one of the given statuses, most recent first by creation time.
func (r *mongoBookingRepo) GetHistoryByTravelerID(ctx context.Context, travelerID string, statuses []models.BookingStatus, limit int) ([]models.BookingRecord, error) {
	filter := bson.M{"traveler_id": travelerID}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking history for traveler %s: %w", travelerID, err)
	}
	defer cursor.Close(ctx)

	var records []models.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode booking history: %w", err)
	}
	return records, nil
}
