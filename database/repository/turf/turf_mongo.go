package turfRepo

import (
	"context"
	"fmt"
	"time"

	"turfbook/database"
	"turfbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTurfRepo implements TurfRepository using MongoDB.
type MongoTurfRepo struct {
	coll *mongo.Collection
}

// NewMongoTurfRepo constructs a new instance of MongoTurfRepo.
func NewMongoTurfRepo() TurfRepository {
	coll := database.DB().Collection("turfs")
	repo := &MongoTurfRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create turf indexes: %v\n", err)
	}
	return repo
}

func (r *MongoTurfRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoTurfRepo) Create(ctx context.Context, turf *models.Turf) (*models.Turf, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if turf.ID == "" {
		turf.ID = uuid.New().String()
	}
	now := time.Now()
	turf.CreatedAt = now
	turf.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, turf); err != nil {
		return nil, fmt.Errorf("failed to create turf: %w", err)
	}
	return turf, nil
}

func (r *MongoTurfRepo) Update(ctx context.Context, turf *models.Turf) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	turf.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": turf.ID}, bson.M{"$set": turf})
	if err != nil {
		return fmt.Errorf("failed to update turf %s: %w", turf.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("turf with id %s not found", turf.ID)
	}
	return nil
}

func (r *MongoTurfRepo) GetByID(ctx context.Context, id string) (*models.Turf, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var turf models.Turf
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&turf); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch turf with id %s: %w", id, err)
	}
	return &turf, nil
}

func (r *MongoTurfRepo) GetByOwner(ctx context.Context, ownerID string) ([]models.Turf, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch turfs for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var turfs []models.Turf
	if err := cursor.All(ctx, &turfs); err != nil {
		return nil, fmt.Errorf("failed to decode turfs: %w", err)
	}
	return turfs, nil
}

func (r *MongoTurfRepo) GetAll(ctx context.Context) ([]models.Turf, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve turfs: %w", err)
	}
	defer cursor.Close(ctx)

	var turfs []models.Turf
	if err := cursor.All(ctx, &turfs); err != nil {
		return nil, fmt.Errorf("failed to decode turfs: %w", err)
	}
	return turfs, nil
}
