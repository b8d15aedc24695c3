package catalog

import (
	"context"

	catalogRepo "turfbook/database/repository/catalog"
	turfRepo "turfbook/database/repository/turf"
	"turfbook/models"
)

// Service manages the master slot list of each turf.
type Service interface {
	// DefineSlots replaces the entire slot template for a turf. The
	// previous catalog, if any, is discarded.
	DefineSlots(ctx context.Context, turfID, ownerID string, slots []models.SlotInput) (*models.SlotCatalog, error)
	// GetCatalog returns the current catalog, or ErrCatalogNotFound.
	GetCatalog(ctx context.Context, turfID string) (*models.SlotCatalog, error)
	// GetAllCatalogs lists every turf's catalog (admin reporting).
	GetAllCatalogs(ctx context.Context) ([]models.SlotCatalog, error)
}

// DefaultCatalogService is the production Service implementation.
type DefaultCatalogService struct {
	Repo  catalogRepo.CatalogRepository
	Turfs turfRepo.TurfRepository
}
