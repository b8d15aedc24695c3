package turf

import (
	"context"

	turfRepo "turfbook/database/repository/turf"
	"turfbook/models"
)

// Service manages turf venue records.
type Service interface {
	Register(ctx context.Context, ownerID string, req models.RegisterTurfRequest) (*models.Turf, error)
	Update(ctx context.Context, turfID, ownerID string, req models.UpdateTurfRequest) (*models.Turf, error)
	GetByID(ctx context.Context, turfID string) (*models.Turf, error)
	GetByOwner(ctx context.Context, ownerID string) ([]models.Turf, error)
	GetAll(ctx context.Context) ([]models.Turf, error)
}

// DefaultTurfService is the production Service implementation.
type DefaultTurfService struct {
	Repo turfRepo.TurfRepository
}
