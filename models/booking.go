package models

import "time"

// Booking is append-only: it is never mutated or deleted after creation.
// EventID is a weak reference, checked once at save time.
type Booking struct {
	BookingID string    `json:"bookingid" bson:"bookingid"`
	EventID   string    `json:"eventid" bson:"eventid"`
	Email     string    `json:"email" bson:"email"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
