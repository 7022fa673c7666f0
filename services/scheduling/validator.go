// File: services/scheduling/validator.go
package scheduling

import (
	"context"
	"errors"

	"appointments/metrics"
	"appointments/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CreateBooking resolves the service, snapshots its name into the
// record, and hands the conflict check plus insert to the repository,
// which runs them atomically. A request overlapping any existing
// booking for the same service and date fails with ErrSlotTaken;
// cancelled bookings participate in the check unless CountCancelled
// is disabled.
func (s *DefaultSchedulingService) CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (string, error) {
	if s.Services == nil || s.Bookings == nil {
		return "", models.ErrStorageUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(req.ServiceID)
	if err != nil {
		return "", models.ErrInvalidID
	}
	svc, err := s.Services.GetByID(ctx, oid)
	if err != nil {
		return "", err
	}

	booking := req.Record(s.now().UTC())
	booking.ServiceName = svc.Name

	id, err := s.Bookings.CreateIfFree(ctx, booking, s.CountCancelled)
	if err != nil {
		if errors.Is(err, models.ErrSlotTaken) {
			metrics.IncBookingConflict()
			s.logger().Info("booking rejected: slot already booked",
				zap.String("service_id", req.ServiceID),
				zap.String("date", req.Date),
				zap.String("start_time", req.StartTime),
				zap.String("end_time", req.EndTime))
			return "", models.ErrSlotTaken
		}
		return "", err
	}

	metrics.IncBookingCreated(booking.Status)
	s.bumpSlotVersion(ctx, req.ServiceID)
	s.logger().Info("booking created",
		zap.String("booking_id", id),
		zap.String("service_id", req.ServiceID),
		zap.String("date", booking.Date),
		zap.String("start_time", booking.StartTime))
	return id, nil
}

// ListBookings returns bookings newest-created first, optionally
// filtered by service.
func (s *DefaultSchedulingService) ListBookings(ctx context.Context, serviceID string) ([]models.BookingResponse, error) {
	if s.Bookings == nil {
		return nil, models.ErrStorageUnavailable
	}
	if serviceID != "" {
		if _, err := primitive.ObjectIDFromHex(serviceID); err != nil {
			return nil, models.ErrInvalidID
		}
	}

	bookings, err := s.Bookings.List(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	out := make([]models.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.Response())
	}
	return out, nil
}
