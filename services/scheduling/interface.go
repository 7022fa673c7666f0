// File: services/scheduling/interface.go
package scheduling

import (
	"context"
	"time"

	availabilityRepo "appointments/database/repository/availability"
	bookingRepo "appointments/database/repository/booking"
	serviceRepo "appointments/database/repository/service"
	"appointments/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Horizon and result-cap contract for free-slot computation.
const (
	DefaultHorizonDays = 14
	MaxFreeSlots       = 200
)

// Service exposes the scheduling operations: the free-slot engine,
// conflict-checked booking creation, and the thin catalog reads and
// writes around them.
type Service interface {
	ListServices(ctx context.Context) ([]models.ServiceResponse, error)
	CreateService(ctx context.Context, req *models.CreateServiceRequest) (string, error)

	ListRules(ctx context.Context, serviceID string) ([]models.AvailabilityResponse, error)
	CreateRule(ctx context.Context, req *models.CreateAvailabilityRequest) (string, error)

	// FreeSlots computes the free slots for a service over the next
	// `days` calendar days starting from today (UTC). Slots are
	// ordered day ascending, then rule retrieval order, then time
	// ascending within a rule window, and capped at MaxFreeSlots
	// across the whole horizon.
	FreeSlots(ctx context.Context, serviceID string, days int) ([]models.FreeSlot, error)

	// CreateBooking validates the service reference, checks the
	// requested interval for overlap against existing bookings on the
	// same service and date, and inserts the record atomically.
	CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (string, error)

	ListBookings(ctx context.Context, serviceID string) ([]models.BookingResponse, error)
}

// DefaultSchedulingService is the production implementation backed by
// the Mongo repositories and an optional Redis response cache.
type DefaultSchedulingService struct {
	Services serviceRepo.Repository
	Rules    availabilityRepo.Repository
	Bookings bookingRepo.Repository

	// Cache, when non-nil, stores computed free-slot responses keyed
	// by service, horizon and a per-service version that is bumped on
	// every booking insertion.
	Cache    *redis.Client
	CacheTTL time.Duration

	// CountCancelled keeps cancelled bookings occupying their slot in
	// both computation and conflict checks.
	CountCancelled bool

	// Now supplies the reference time; nil means time.Now. The engine
	// only uses its UTC calendar date.
	Now func() time.Time

	Logger *zap.Logger
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultSchedulingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
