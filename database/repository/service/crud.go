// File: database/repository/service/crud.go
package serviceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"appointments/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const queryTimeout = 5 * time.Second

func (r *mongoServiceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var svc models.Service
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&svc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	return &svc, nil
}

func (r *mongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

func (r *mongoServiceRepo) First(ctx context.Context) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var svc models.Service
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&svc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	return &svc, nil
}

func (r *mongoServiceRepo) Create(ctx context.Context, svc *models.Service) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, svc)
	if err != nil {
		return "", fmt.Errorf("failed to insert service: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected type for inserted ID")
	}
	return oid.Hex(), nil
}

func (r *mongoServiceRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count services: %w", err)
	}
	return n, nil
}
