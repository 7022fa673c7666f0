// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"appointments/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const queryTimeout = 5 * time.Second

// GetByServiceID returns every rule for a service in retrieval order.
// The order is part of the slot-ordering contract and is not re-sorted.
func (r *mongoAvailabilityRepo) GetByServiceID(ctx context.Context, serviceID string) ([]models.AvailabilityRule, error) {
	return r.find(ctx, bson.M{"service_id": serviceID})
}

func (r *mongoAvailabilityRepo) GetAll(ctx context.Context) ([]models.AvailabilityRule, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoAvailabilityRepo) find(ctx context.Context, filter bson.M) ([]models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability rules: %w", err)
	}
	defer cursor.Close(ctx)

	var rules []models.AvailabilityRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("error decoding availability rules: %w", err)
	}
	return rules, nil
}

func (r *mongoAvailabilityRepo) Create(ctx context.Context, rule *models.AvailabilityRule) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, rule)
	if err != nil {
		return "", fmt.Errorf("failed to insert availability rule: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected type for inserted ID")
	}
	return oid.Hex(), nil
}

func (r *mongoAvailabilityRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count availability rules: %w", err)
	}
	return n, nil
}
