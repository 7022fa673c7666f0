package models

import (
	"errors"
	"net/mail"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is the persistence record for a confirmed reservation,
// stored in the "booking" collection. service_name is a snapshot of
// the service name at booking time and is not kept in sync. Records
// are never updated or deleted by this core.
type Booking struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ServiceID    string             `bson:"service_id"`
	ServiceName  string             `bson:"service_name,omitempty"`
	CustomerName string             `bson:"customer_name"`
	Email        string             `bson:"email"`
	Date         string             `bson:"date"`
	StartTime    string             `bson:"start_time"`
	EndTime      string             `bson:"end_time"`
	Notes        string             `bson:"notes,omitempty"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// BookingResponse is the wire representation of a Booking.
type BookingResponse struct {
	ID           string    `json:"id"`
	ServiceID    string    `json:"service_id"`
	ServiceName  string    `json:"service_name,omitempty"`
	CustomerName string    `json:"customer_name"`
	Email        string    `json:"email"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Response converts the stored record to its wire representation.
func (b Booking) Response() BookingResponse {
	return BookingResponse{
		ID:           b.ID.Hex(),
		ServiceID:    b.ServiceID,
		ServiceName:  b.ServiceName,
		CustomerName: b.CustomerName,
		Email:        b.Email,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Notes:        b.Notes,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
	}
}

// CreateBookingRequest is the payload for creating a booking.
type CreateBookingRequest struct {
	ServiceID    string `json:"service_id" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
	Notes        string `json:"notes"`
	Status       string `json:"status"`
}

// Validate applies the schema constraints before the payload reaches
// the conflict check.
func (r *CreateBookingRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email must be a valid address")
	}
	if !ValidDate(r.Date) {
		return errors.New("date must be YYYY-MM-DD")
	}
	if !ValidClock(r.StartTime) {
		return errors.New("start_time must be HH:MM")
	}
	if !ValidClock(r.EndTime) {
		return errors.New("end_time must be HH:MM")
	}
	switch r.Status {
	case "", BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
	default:
		return errors.New("status must be pending, confirmed or cancelled")
	}
	return nil
}

// Record builds the persistence record for the payload. The service
// name snapshot is filled by the caller after resolving the service.
func (r *CreateBookingRequest) Record(now time.Time) *Booking {
	status := r.Status
	if status == "" {
		status = BookingStatusConfirmed
	}
	return &Booking{
		ServiceID:    r.ServiceID,
		CustomerName: r.CustomerName,
		Email:        r.Email,
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Notes:        r.Notes,
		Status:       status,
		CreatedAt:    now,
	}
}
