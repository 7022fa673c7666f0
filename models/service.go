package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultServiceColor is the UI tag color assigned when none is given.
const DefaultServiceColor = "#6366F1"

// Service is the persistence record for a bookable offering, stored in
// the "service" collection. It is created at seed/admin time and
// read-only from the slot and booking flow.
type Service struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Description     string             `bson:"description,omitempty"`
	DurationMinutes int                `bson:"duration_minutes"`
	Price           *float64           `bson:"price,omitempty"`
	Color           string             `bson:"color"`
	Slug            string             `bson:"slug,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
}

// ServiceResponse is the wire representation of a Service.
type ServiceResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price,omitempty"`
	Color           string   `json:"color"`
	Slug            string   `json:"slug,omitempty"`
}

// Response converts the stored record to its wire representation.
func (s Service) Response() ServiceResponse {
	return ServiceResponse{
		ID:              s.ID.Hex(),
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Color:           s.Color,
		Slug:            s.Slug,
	}
}

// CreateServiceRequest is the payload for creating a service.
type CreateServiceRequest struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	DurationMinutes int      `json:"duration_minutes" binding:"required"`
	Price           *float64 `json:"price"`
	Color           string   `json:"color"`
	Slug            string   `json:"slug"`
}

// Validate applies the field constraints the schema imposes before the
// payload reaches the core.
func (r *CreateServiceRequest) Validate() error {
	if r.DurationMinutes < 15 || r.DurationMinutes > 240 {
		return errors.New("duration_minutes must be between 15 and 240")
	}
	if r.Price != nil && *r.Price < 0 {
		return errors.New("price must be non-negative")
	}
	return nil
}

// Record builds the persistence record for the payload. The slug is
// filled by the caller when absent.
func (r *CreateServiceRequest) Record(now time.Time) *Service {
	color := r.Color
	if color == "" {
		color = DefaultServiceColor
	}
	return &Service{
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Color:           color,
		Slug:            r.Slug,
		CreatedAt:       now,
	}
}
