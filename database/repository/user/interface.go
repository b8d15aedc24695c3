package userRepo

import (
	"context"

	"turfbook/models"
)

// UserRepository defines persistence operations for platform accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	SetTokenHash(ctx context.Context, id, tokenHash string) error
}
