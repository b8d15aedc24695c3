package catalog

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"turfbook/models"
	"turfbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// timePattern matches zero-padded 24-hour wall-clock times. Keeping the
// format zero-padded means lexical comparison orders times correctly.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func (s *DefaultCatalogService) DefineSlots(ctx context.Context, turfID, ownerID string, slots []models.SlotInput) (*models.SlotCatalog, error) {
	if len(slots) == 0 {
		return nil, &ValidationError{Slot: -1, Reason: "at least one slot is required"}
	}

	turf, err := s.Turfs.GetByID(ctx, turfID)
	if err != nil {
		return nil, fmt.Errorf("failed to load turf %s: %w", turfID, err)
	}
	if turf == nil {
		return nil, ErrTurfNotFound
	}
	if turf.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	for i, in := range slots {
		if !timePattern.MatchString(in.Start) {
			return nil, &ValidationError{Slot: i, Reason: fmt.Sprintf("start %q is not a valid HH:MM time", in.Start)}
		}
		if !timePattern.MatchString(in.End) {
			return nil, &ValidationError{Slot: i, Reason: fmt.Sprintf("end %q is not a valid HH:MM time", in.End)}
		}
		if in.Start >= in.End {
			return nil, &ValidationError{Slot: i, Reason: "start must be before end"}
		}
		if in.Price < 0 {
			return nil, &ValidationError{Slot: i, Reason: "price must not be negative"}
		}
	}

	if err := checkOverlap(slots); err != nil {
		return nil, err
	}

	built := make([]models.Slot, len(slots))
	for i, in := range slots {
		built[i] = models.Slot{
			ID:        uuid.New().String(),
			Start:     in.Start,
			End:       in.End,
			Price:     in.Price,
			Available: true,
		}
	}

	cat, err := s.Repo.Replace(ctx, &models.SlotCatalog{
		TurfID:  turfID,
		OwnerID: ownerID,
		Slots:   built,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store catalog for turf %s: %w", turfID, err)
	}

	utils.GetLogger().Info("slot catalog replaced",
		zap.String("turfID", turfID), zap.Int("slots", len(built)))
	return cat, nil
}

// checkOverlap rejects catalogs whose windows intersect. Slots are
// compared in start order; submission order is otherwise preserved.
func checkOverlap(slots []models.SlotInput) error {
	idx := make([]int, len(slots))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return slots[idx[a]].Start < slots[idx[b]].Start })

	for k := 1; k < len(idx); k++ {
		prev, cur := slots[idx[k-1]], slots[idx[k]]
		if cur.Start < prev.End {
			return &ValidationError{
				Slot:   idx[k],
				Reason: fmt.Sprintf("window %s-%s overlaps %s-%s", cur.Start, cur.End, prev.Start, prev.End),
			}
		}
	}
	return nil
}

func (s *DefaultCatalogService) GetCatalog(ctx context.Context, turfID string) (*models.SlotCatalog, error) {
	cat, err := s.Repo.GetByTurfID(ctx, turfID)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog for turf %s: %w", turfID, err)
	}
	if cat == nil {
		return nil, ErrCatalogNotFound
	}
	return cat, nil
}

func (s *DefaultCatalogService) GetAllCatalogs(ctx context.Context) ([]models.SlotCatalog, error) {
	return s.Repo.GetAll(ctx)
}
