package catalogRepo

import (
	"context"

	"turfbook/models"
)

// CatalogRepository defines persistence operations for per-turf slot
// catalogs. Replace is last-write-wins: the stored catalog for a turf is
// always exactly the most recently submitted slot list.
type CatalogRepository interface {
	Replace(ctx context.Context, catalog *models.SlotCatalog) (*models.SlotCatalog, error)
	GetByTurfID(ctx context.Context, turfID string) (*models.SlotCatalog, error)
	GetAll(ctx context.Context) ([]models.SlotCatalog, error)
}
