// File: services/scheduling/seed.go
package scheduling

import (
	"context"
	"fmt"

	"appointments/models"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// Seed inserts a starter service and Mon-Fri availability when the
// respective collections are empty. The emptiness checks make it
// idempotent across restarts; it is a bootstrap convenience, not a
// correctness-critical path.
func (s *DefaultSchedulingService) Seed(ctx context.Context) error {
	if s.Services == nil || s.Rules == nil {
		return models.ErrStorageUnavailable
	}

	count, err := s.Services.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: counting services: %w", err)
	}
	if count == 0 {
		price := 0.0
		name := "Consultation Call"
		id, err := s.Services.Create(ctx, &models.Service{
			Name:            name,
			Description:     "30-min strategy session",
			DurationMinutes: 30,
			Price:           &price,
			Color:           "#22c55e",
			Slug:            slug.Make(name),
			CreatedAt:       s.now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("seed: creating service: %w", err)
		}
		s.logger().Info("seeded starter service", zap.String("service_id", id))
	}

	count, err = s.Rules.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: counting availability rules: %w", err)
	}
	if count == 0 {
		svc, err := s.Services.First(ctx)
		if err != nil {
			return fmt.Errorf("seed: fetching service for availability: %w", err)
		}
		// Weekday availability Mon-Fri 09:00-17:00 UTC.
		for weekday := 0; weekday < 5; weekday++ {
			wd := weekday
			_, err := s.Rules.Create(ctx, &models.AvailabilityRule{
				ServiceID:  svc.ID.Hex(),
				Consultant: "You",
				Weekday:    &wd,
				StartTime:  "09:00",
				EndTime:    "17:00",
				Timezone:   "UTC",
				CreatedAt:  s.now().UTC(),
			})
			if err != nil {
				return fmt.Errorf("seed: creating availability rule: %w", err)
			}
		}
		s.logger().Info("seeded weekday availability", zap.String("service_id", svc.ID.Hex()))
	}

	return nil
}
