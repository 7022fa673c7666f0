// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"appointments/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository provides access to the "booking" collection.
type Repository interface {
	// GetByServiceID returns every booking for a service, all dates.
	GetByServiceID(ctx context.Context, serviceID string) ([]models.Booking, error)
	// List returns bookings newest-created first, optionally filtered
	// by service id (empty string means no filter).
	List(ctx context.Context, serviceID string) ([]models.Booking, error)
	// CreateIfFree atomically checks the booking's interval against
	// existing bookings for the same service and date, and inserts it
	// when free. Returns models.ErrSlotTaken on overlap. Cancelled
	// bookings participate in the check unless countCancelled is
	// false.
	CreateIfFree(ctx context.Context, booking *models.Booking, countCancelled bool) (string, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB-backed booking repository
// over the given database handle.
func NewMongoBookingRepo(db *mongo.Database) Repository {
	return &mongoBookingRepo{coll: db.Collection("booking")}
}
