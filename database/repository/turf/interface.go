package turfRepo

import (
	"context"

	"turfbook/models"
)

// TurfRepository defines persistence operations for turf venues.
type TurfRepository interface {
	Create(ctx context.Context, turf *models.Turf) (*models.Turf, error)
	Update(ctx context.Context, turf *models.Turf) error
	GetByID(ctx context.Context, id string) (*models.Turf, error)
	GetByOwner(ctx context.Context, ownerID string) ([]models.Turf, error)
	GetAll(ctx context.Context) ([]models.Turf, error)
}
