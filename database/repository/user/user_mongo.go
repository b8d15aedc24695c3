package userRepo

import (
	"context"
	"fmt"
	"time"

	"turfbook/database"
	"turfbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.DB().Collection("users")
	repo := &MongoUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create user indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("user with phone %s already exists", user.Phone)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &user, nil
}

func (r *MongoUserRepo) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with phone %s: %w", phone, err)
	}
	return &user, nil
}

func (r *MongoUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (r *MongoUserRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"token_hash": tokenHash}})
	if err != nil {
		return fmt.Errorf("failed to update token hash for user %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found", id)
	}
	return nil
}
