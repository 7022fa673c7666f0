// File: services/scheduling/catalog.go
package scheduling

import (
	"context"

	"appointments/models"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListServices returns every bookable service.
func (s *DefaultSchedulingService) ListServices(ctx context.Context) ([]models.ServiceResponse, error) {
	if s.Services == nil {
		return nil, models.ErrStorageUnavailable
	}
	services, err := s.Services.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.ServiceResponse, 0, len(services))
	for _, svc := range services {
		out = append(out, svc.Response())
	}
	return out, nil
}

// CreateService inserts a new service. The slug defaults to a
// URL-friendly form of the name.
func (s *DefaultSchedulingService) CreateService(ctx context.Context, req *models.CreateServiceRequest) (string, error) {
	if s.Services == nil {
		return "", models.ErrStorageUnavailable
	}
	rec := req.Record(s.now().UTC())
	if rec.Slug == "" {
		rec.Slug = slug.Make(rec.Name)
	}
	return s.Services.Create(ctx, rec)
}

// ListRules returns availability rules, optionally filtered by
// service.
func (s *DefaultSchedulingService) ListRules(ctx context.Context, serviceID string) ([]models.AvailabilityResponse, error) {
	if s.Rules == nil {
		return nil, models.ErrStorageUnavailable
	}

	var (
		rules []models.AvailabilityRule
		err   error
	)
	if serviceID != "" {
		if _, err := primitive.ObjectIDFromHex(serviceID); err != nil {
			return nil, models.ErrInvalidID
		}
		rules, err = s.Rules.GetByServiceID(ctx, serviceID)
	} else {
		rules, err = s.Rules.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]models.AvailabilityResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.Response())
	}
	return out, nil
}

// CreateRule inserts a new availability rule after checking the
// service reference.
func (s *DefaultSchedulingService) CreateRule(ctx context.Context, req *models.CreateAvailabilityRequest) (string, error) {
	if s.Services == nil || s.Rules == nil {
		return "", models.ErrStorageUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(req.ServiceID)
	if err != nil {
		return "", models.ErrInvalidID
	}
	if _, err := s.Services.GetByID(ctx, oid); err != nil {
		return "", err
	}

	return s.Rules.Create(ctx, req.Record(s.now().UTC()))
}
