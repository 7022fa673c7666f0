// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"appointments/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfFree runs the overlap check and the insert inside a single
// Mongo session transaction, so two concurrent requests for the same
// service, date and interval cannot both pass the check.
//
// Overlap uses half-open intervals: an existing booking conflicts iff
// existing.start_time < new.end_time AND existing.end_time >
// new.start_time. Lexicographic comparison is valid for zero-padded
// 24-hour HH:MM strings.
func (r *mongoBookingRepo) CreateIfFree(ctx context.Context, booking *models.Booking, countCancelled bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return "", fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	filter := bson.M{
		"service_id": booking.ServiceID,
		"date":       booking.Date,
		"start_time": bson.M{"$lt": booking.EndTime},
		"end_time":   bson.M{"$gt": booking.StartTime},
	}
	if !countCancelled {
		filter["status"] = bson.M{"$ne": models.BookingStatusCancelled}
	}

	var insertedID primitive.ObjectID
	txnFn := func(sc mongo.SessionContext) error {
		n, err := r.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		if n > 0 {
			return models.ErrSlotTaken
		}

		res, err := r.coll.InsertOne(sc, booking)
		if err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		oid, ok := res.InsertedID.(primitive.ObjectID)
		if !ok {
			return errors.New("unexpected type for inserted ID")
		}
		insertedID = oid
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, models.ErrSlotTaken) {
			return "", models.ErrSlotTaken
		}
		return "", fmt.Errorf("booking transaction failed: %w", err)
	}

	return insertedID.Hex(), nil
}
