package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"turfbook/models"
)

type fakeCatalogRepo struct {
	mu       sync.Mutex
	catalogs map[string]*models.SlotCatalog
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{catalogs: make(map[string]*models.SlotCatalog)}
}

func (f *fakeCatalogRepo) Replace(ctx context.Context, catalog *models.SlotCatalog) (*models.SlotCatalog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *catalog
	if existing, ok := f.catalogs[catalog.TurfID]; ok {
		stored.ID = existing.ID
	} else {
		stored.ID = "cat-" + catalog.TurfID
	}
	f.catalogs[catalog.TurfID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeCatalogRepo) GetByTurfID(ctx context.Context, turfID string) (*models.SlotCatalog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cat, ok := f.catalogs[turfID]
	if !ok {
		return nil, nil
	}
	out := *cat
	return &out, nil
}

func (f *fakeCatalogRepo) GetAll(ctx context.Context) ([]models.SlotCatalog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.SlotCatalog, 0, len(f.catalogs))
	for _, cat := range f.catalogs {
		out = append(out, *cat)
	}
	return out, nil
}

type fakeTurfRepo struct {
	turfs map[string]*models.Turf
}

func (f *fakeTurfRepo) Create(ctx context.Context, turf *models.Turf) (*models.Turf, error) {
	f.turfs[turf.ID] = turf
	return turf, nil
}

func (f *fakeTurfRepo) Update(ctx context.Context, turf *models.Turf) error {
	f.turfs[turf.ID] = turf
	return nil
}

func (f *fakeTurfRepo) GetByID(ctx context.Context, id string) (*models.Turf, error) {
	return f.turfs[id], nil
}

func (f *fakeTurfRepo) GetByOwner(ctx context.Context, ownerID string) ([]models.Turf, error) {
	var out []models.Turf
	for _, t := range f.turfs {
		if t.OwnerID == ownerID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTurfRepo) GetAll(ctx context.Context) ([]models.Turf, error) {
	var out []models.Turf
	for _, t := range f.turfs {
		out = append(out, *t)
	}
	return out, nil
}

func newTestService() (*DefaultCatalogService, *fakeCatalogRepo) {
	repo := newFakeCatalogRepo()
	turfs := &fakeTurfRepo{turfs: map[string]*models.Turf{
		"turf-1": {ID: "turf-1", OwnerID: "owner-1", Name: "Greenfield Arena"},
	}}
	return &DefaultCatalogService{Repo: repo, Turfs: turfs}, repo
}

func TestDefineSlotsStoresCatalog(t *testing.T) {
	svc, _ := newTestService()

	cat, err := svc.DefineSlots(context.Background(), "turf-1", "owner-1", []models.SlotInput{
		{Start: "06:00", End: "07:00", Price: 500},
		{Start: "07:00", End: "08:00", Price: 600},
	})
	if err != nil {
		t.Fatalf("DefineSlots returned error: %v", err)
	}
	if len(cat.Slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(cat.Slots))
	}
	for i, sl := range cat.Slots {
		if sl.ID == "" {
			t.Errorf("slot %d has no generated id", i)
		}
		if !sl.Available {
			t.Errorf("slot %d should start out available", i)
		}
	}
	if cat.Slots[0].ID == cat.Slots[1].ID {
		t.Error("slot ids must be distinct")
	}
}

func TestDefineSlotsReplacesWholeCatalog(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	first, err := svc.DefineSlots(ctx, "turf-1", "owner-1", []models.SlotInput{
		{Start: "06:00", End: "07:00", Price: 500},
		{Start: "07:00", End: "08:00", Price: 500},
		{Start: "08:00", End: "09:00", Price: 500},
	})
	if err != nil {
		t.Fatalf("first DefineSlots: %v", err)
	}

	second, err := svc.DefineSlots(ctx, "turf-1", "owner-1", []models.SlotInput{
		{Start: "18:00", End: "19:00", Price: 900},
	})
	if err != nil {
		t.Fatalf("second DefineSlots: %v", err)
	}
	if len(second.Slots) != 1 {
		t.Fatalf("expected replacement catalog with 1 slot, got %d", len(second.Slots))
	}
	if second.Slots[0].ID == first.Slots[0].ID {
		t.Error("replacement must mint fresh slot ids, not merge with the old list")
	}

	stored, _ := repo.GetByTurfID(ctx, "turf-1")
	if len(stored.Slots) != 1 || stored.Slots[0].Start != "18:00" {
		t.Errorf("stored catalog does not reflect last write: %+v", stored.Slots)
	}
}

func TestDefineSlotsValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name  string
		slots []models.SlotInput
		slot  int
	}{
		{"empty list", nil, -1},
		{"bad start format", []models.SlotInput{{Start: "6:00", End: "07:00"}}, 0},
		{"bad end format", []models.SlotInput{{Start: "06:00", End: "25:00"}}, 0},
		{"start equals end", []models.SlotInput{{Start: "06:00", End: "06:00"}}, 0},
		{"start after end", []models.SlotInput{{Start: "08:00", End: "07:00"}}, 0},
		{"negative price", []models.SlotInput{{Start: "06:00", End: "07:00", Price: -1}}, 0},
		{"second slot bad", []models.SlotInput{
			{Start: "06:00", End: "07:00", Price: 500},
			{Start: "07:00", End: "07:61", Price: 500},
		}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.DefineSlots(ctx, "turf-1", "owner-1", tc.slots)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Slot != tc.slot {
				t.Errorf("expected error on slot %d, got %d (%s)", tc.slot, verr.Slot, verr.Reason)
			}
		})
	}
}

func TestDefineSlotsRejectsOverlap(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.DefineSlots(context.Background(), "turf-1", "owner-1", []models.SlotInput{
		{Start: "06:00", End: "08:00", Price: 500},
		{Start: "07:00", End: "09:00", Price: 500},
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for overlapping windows, got %v", err)
	}

	// Back-to-back windows share a boundary but do not overlap.
	_, err = svc.DefineSlots(context.Background(), "turf-1", "owner-1", []models.SlotInput{
		{Start: "06:00", End: "07:00", Price: 500},
		{Start: "07:00", End: "08:00", Price: 500},
	})
	if err != nil {
		t.Fatalf("adjacent windows should be accepted: %v", err)
	}
}

func TestDefineSlotsOwnership(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	slots := []models.SlotInput{{Start: "06:00", End: "07:00", Price: 500}}

	if _, err := svc.DefineSlots(ctx, "no-such-turf", "owner-1", slots); !errors.Is(err, ErrTurfNotFound) {
		t.Errorf("expected ErrTurfNotFound, got %v", err)
	}
	if _, err := svc.DefineSlots(ctx, "turf-1", "owner-2", slots); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
}

func TestGetCatalogMissing(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.GetCatalog(context.Background(), "turf-1"); !errors.Is(err, ErrCatalogNotFound) {
		t.Errorf("expected ErrCatalogNotFound for undefined catalog, got %v", err)
	}
}
