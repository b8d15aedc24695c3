package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"turfbook/database"
	"turfbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB. It also
// holds the catalogs collection so booking writes can flip the embedded
// slot availability flag in the same transaction.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	catalogColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	repo := &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		catalogColl: db.Collection("catalogs"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// dayWindow returns the [start, end) bounds of the calendar day containing t, in UTC.
func dayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

func (repo *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := repo.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// GetByTurfAndDate returns all bookings, any status, for the turf on the
// calendar day containing the given time.
func (repo *MongoBookingRepo) GetByTurfAndDate(ctx context.Context, turfID string, day time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start, end := dayWindow(day)
	filter := bson.M{
		"turf_id": turfID,
		"date":    bson.M{"$gte": start, "$lt": end},
	}
	return repo.find(ctx, filter)
}

func (repo *MongoBookingRepo) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return repo.find(ctx, bson.M{"user_id": userID})
}

func (repo *MongoBookingRepo) GetByOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return repo.find(ctx, bson.M{"owner_id": ownerID})
}

func (repo *MongoBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return repo.find(ctx, bson.M{})
}

func (repo *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := repo.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
