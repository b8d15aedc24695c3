package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"turfbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts the booking and marks the catalog slot unavailable in a
// single transaction. The uniqueness check is not a separate read: the
// partial unique index on (turf_id, slot_id, date) rejects the insert
// itself when another active booking holds the key, so concurrent calls
// cannot both commit. A duplicate-key failure surfaces as
// ErrDuplicateBooking.
func (repo *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrDuplicateBooking
			}
			return fmt.Errorf("insert booking failed: %w", err)
		}

		filter := bson.M{
			"turf_id":  booking.TurfID,
			"slots.id": booking.SlotID,
		}
		update := bson.M{
			"$set": bson.M{"slots.$.available": false, "updated_at": time.Now()},
		}
		if _, err := repo.catalogColl.UpdateOne(sc, filter, update); err != nil {
			return fmt.Errorf("mark slot unavailable failed: %w", err)
		}
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
		if errors.Is(err, ErrDuplicateBooking) {
			return err
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}

// UpdateStatus transitions a booking to cancelled or completed. Cancelling
// clears the active flag, freeing the (turf, slot, date) key for another
// booking, and restores the catalog slot flag in the same transaction.
func (repo *MongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	booking, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking with id %s not found", id)
	}

	active := status != models.BookingCancelled

	sess, err := repo.bookingColl.Database().Client().StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		update := bson.M{"$set": bson.M{"status": status, "active": active}}
		res, err := repo.bookingColl.UpdateOne(sc, bson.M{"id": id}, update)
		if err != nil {
			return fmt.Errorf("update booking %s failed: %w", id, err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("booking with id %s not found", id)
		}

		if status == models.BookingCancelled {
			filter := bson.M{
				"turf_id":  booking.TurfID,
				"slots.id": booking.SlotID,
			}
			restore := bson.M{"$set": bson.M{"slots.$.available": true}}
			if _, err := repo.catalogColl.UpdateOne(sc, filter, restore); err != nil {
				return fmt.Errorf("restore slot availability failed: %w", err)
			}
		}
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
		return nil, fmt.Errorf("status transaction failed: %w", err)
	}

	booking.Status = status
	booking.Active = active
	return booking, nil
}
