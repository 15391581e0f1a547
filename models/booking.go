package models

import "time"

// BookingStatus is the lifecycle state of a stored booking.
type BookingStatus string

const (
	BookingAccepted  BookingStatus = "accepted"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingPending   BookingStatus = "pending"
)

// HistoryStatuses are the booking states that count as travel history when
// inferring preferences.
var HistoryStatuses = []BookingStatus{BookingAccepted, BookingCompleted, BookingCancelled}

// BookingRecord is a stored booking joined with its property details. When a
// plan request carries a booking ID, the record is authoritative for
// location, dates and guest count.
type BookingRecord struct {
	ID           string        `bson:"id" json:"id"`
	PropertyID   string        `bson:"property_id" json:"propertyId"`
	TravelerID   string        `bson:"traveler_id" json:"travelerId"`
	StartDate    string        `bson:"start_date" json:"startDate"` // "YYYY-MM-DD"
	EndDate      string        `bson:"end_date" json:"endDate"`     // "YYYY-MM-DD"
	Guests       int           `bson:"guests" json:"guests"`
	TotalPrice   float64       `bson:"total_price" json:"totalPrice"`
	Status       BookingStatus `bson:"status" json:"status"`
	PropertyName string        `bson:"property_name" json:"propertyName"`
	PropertyType string        `bson:"property_type" json:"propertyType"`
	City         string        `bson:"city" json:"city"`
	Country      string        `bson:"country" json:"country"`
	CreatedAt    time.Time     `bson:"created_at" json:"createdAt"`
}
