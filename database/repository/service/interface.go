// File: database/repository/service/interface.go
package serviceRepo

import (
	"context"

	"appointments/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository provides access to the "service" collection.
type Repository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	GetAll(ctx context.Context) ([]models.Service, error)
	First(ctx context.Context) (*models.Service, error)
	Create(ctx context.Context, svc *models.Service) (string, error)
	Count(ctx context.Context) (int64, error)
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a MongoDB-backed service repository
// over the given database handle.
func NewMongoServiceRepo(db *mongo.Database) Repository {
	return &mongoServiceRepo{coll: db.Collection("service")}
}
