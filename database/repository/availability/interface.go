// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"appointments/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository provides access to the "availability" collection.
type Repository interface {
	GetByServiceID(ctx context.Context, serviceID string) ([]models.AvailabilityRule, error)
	GetAll(ctx context.Context) ([]models.AvailabilityRule, error)
	Create(ctx context.Context, rule *models.AvailabilityRule) (string, error)
	Count(ctx context.Context) (int64, error)
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a MongoDB-backed availability
// repository over the given database handle.
func NewMongoAvailabilityRepo(db *mongo.Database) Repository {
	return &mongoAvailabilityRepo{coll: db.Collection("availability")}
}
