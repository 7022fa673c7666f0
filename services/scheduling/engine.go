// File: services/scheduling/engine.go
package scheduling

import (
	"context"
	"time"

	"appointments/metrics"
	"appointments/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// interval is a half-open [start,end) window in minutes from midnight.
type interval struct {
	start int
	end   int
}

// FreeSlots loads the availability rules and bookings for a service
// and returns its free slots over the next `days` calendar days.
func (s *DefaultSchedulingService) FreeSlots(ctx context.Context, serviceID string, days int) ([]models.FreeSlot, error) {
	if s.Services == nil || s.Rules == nil || s.Bookings == nil {
		return nil, models.ErrStorageUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(serviceID)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	if days <= 0 {
		days = DefaultHorizonDays
	}

	metrics.IncSlotQuery()
	if slots, ok := s.cachedSlots(ctx, serviceID, days); ok {
		metrics.IncSlotCacheHit()
		return slots, nil
	}

	svc, err := s.Services.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	rules, err := s.Rules.GetByServiceID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.GetByServiceID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	slots := computeFreeSlots(
		svc.DurationMinutes,
		rules,
		s.bookedIntervals(bookings),
		s.today(),
		days,
		s.logger(),
	)
	s.storeSlots(ctx, serviceID, days, slots)
	return slots, nil
}

// today returns the UTC calendar date of the reference clock, with no
// time-of-day component.
func (s *DefaultSchedulingService) today() time.Time {
	t := s.now().UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// bookedIntervals groups booking intervals by date. Status is not
// filtered unless CountCancelled is disabled, so by default a
// cancelled booking still blocks its slot.
func (s *DefaultSchedulingService) bookedIntervals(bookings []models.Booking) map[string][]interval {
	booked := make(map[string][]interval, len(bookings))
	for _, b := range bookings {
		if !s.CountCancelled && b.Status == models.BookingStatusCancelled {
			continue
		}
		start, err := models.ParseClock(b.StartTime)
		if err != nil {
			s.logger().Warn("skipping booking with malformed start_time",
				zap.String("booking_id", b.ID.Hex()), zap.Error(err))
			continue
		}
		end, err := models.ParseClock(b.EndTime)
		if err != nil {
			s.logger().Warn("skipping booking with malformed end_time",
				zap.String("booking_id", b.ID.Hex()), zap.Error(err))
			continue
		}
		booked[b.Date] = append(booked[b.Date], interval{start: start, end: end})
	}
	return booked
}

// computeFreeSlots walks the horizon day by day. For each day it
// selects the matching rules (weekday OR date union, no dedup),
// discretizes each rule window into duration-sized slots, and drops
// any slot overlapping a booked interval on that date. Generation
// order is the output order: day ascending, then rule retrieval
// order, then time ascending within a rule window. Generation stops
// once MaxFreeSlots have been emitted.
func computeFreeSlots(
	duration int,
	rules []models.AvailabilityRule,
	booked map[string][]interval,
	today time.Time,
	days int,
	logger *zap.Logger,
) []models.FreeSlot {
	if duration <= 0 {
		duration = 30
	}

	slots := make([]models.FreeSlot, 0)
	for i := 0; i < days && len(slots) < MaxFreeSlots; i++ {
		day := today.AddDate(0, 0, i)
		date := day.Format("2006-01-02")
		weekday := mondayWeekday(day)

		for _, rule := range rules {
			if !rule.Matches(date, weekday) {
				continue
			}
			start, err := models.ParseClock(rule.StartTime)
			if err != nil {
				logger.Warn("skipping availability rule with malformed start_time",
					zap.String("rule_id", rule.ID.Hex()), zap.Error(err))
				continue
			}
			end, err := models.ParseClock(rule.EndTime)
			if err != nil {
				logger.Warn("skipping availability rule with malformed end_time",
					zap.String("rule_id", rule.ID.Hex()), zap.Error(err))
				continue
			}

			// Step through the window; a final partial slot that
			// would pass end is never emitted.
			for cur := start; cur+duration <= end && len(slots) < MaxFreeSlots; cur += duration {
				if overlapsAny(booked[date], cur, cur+duration) {
					continue
				}
				slots = append(slots, models.FreeSlot{
					Date:      date,
					StartTime: models.FormatClock(cur),
					EndTime:   models.FormatClock(cur + duration),
				})
			}
			if len(slots) >= MaxFreeSlots {
				break
			}
		}
	}
	return slots
}

// mondayWeekday converts Go's Sunday-based weekday to the 0=Monday
// through 6=Sunday indexing the availability rules use.
func mondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func overlapsAny(booked []interval, start, end int) bool {
	for _, b := range booked {
		if models.Overlaps(start, end, b.start, b.end) {
			return true
		}
	}
	return false
}
