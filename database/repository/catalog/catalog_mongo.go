package catalogRepo

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

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo constructs a new instance of MongoCatalogRepo.
func NewMongoCatalogRepo() CatalogRepository {
	coll := database.DB().Collection("catalogs")
	repo := &MongoCatalogRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create catalog indexes: %v\n", err)
	}
	return repo
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "turf_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slots.id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Replace upserts the whole catalog document keyed by turf_id. Any prior
// slot list for the turf is discarded, never merged.
func (r *MongoCatalogRepo) Replace(ctx context.Context, catalog *models.SlotCatalog) (*models.SlotCatalog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if catalog.ID == "" {
		catalog.ID = uuid.New().String()
	}
	catalog.UpdatedAt = time.Now()

	filter := bson.M{"turf_id": catalog.TurfID}
	update := bson.M{"$set": bson.M{
		"turf_id":    catalog.TurfID,
		"owner_id":   catalog.OwnerID,
		"slots":      catalog.Slots,
		"updated_at": catalog.UpdatedAt,
	}, "$setOnInsert": bson.M{"id": catalog.ID}}

	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return nil, fmt.Errorf("failed to replace catalog for turf %s: %w", catalog.TurfID, err)
	}

	return r.GetByTurfID(ctx, catalog.TurfID)
}

func (r *MongoCatalogRepo) GetByTurfID(ctx context.Context, turfID string) (*models.SlotCatalog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var catalog models.SlotCatalog
	if err := r.coll.FindOne(ctx, bson.M{"turf_id": turfID}).Decode(&catalog); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch catalog for turf %s: %w", turfID, err)
	}
	return &catalog, nil
}

func (r *MongoCatalogRepo) GetAll(ctx context.Context) ([]models.SlotCatalog, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve catalogs: %w", err)
	}
	defer cursor.Close(ctx)

	var catalogs []models.SlotCatalog
	if err := cursor.All(ctx, &catalogs); err != nil {
		return nil, fmt.Errorf("failed to decode catalogs: %w", err)
	}
	return catalogs, nil
}
