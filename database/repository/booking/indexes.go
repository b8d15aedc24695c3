package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes on the bookings collection. The partial
// unique index on (turf_id, slot_id, date) over active bookings is what
// enforces the ledger invariant at write time: two concurrent inserts for
// the same key cannot both commit, and cancelled bookings (active=false)
// leave the key free for rebooking.
func (repo *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	activeOnly := options.Index().
		SetUnique(true).
		SetName("unique_active_turf_slot_date").
		SetPartialFilterExpression(bson.M{"active": true})

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{
				{Key: "turf_id", Value: 1},
				{Key: "slot_id", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: activeOnly,
		},
		{Keys: bson.D{{Key: "turf_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}

	if _, err := repo.bookingColl.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
