package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	bookingRepo "turfbook/database/repository/booking"
	"turfbook/models"
	"turfbook/services/catalog"
)

// fakeBookingRepo enforces the same uniqueness guarantee as the mongo
// partial index: at most one active booking per (turf, slot, date).
type fakeBookingRepo struct {
	mu       sync.Mutex
	byID     map[string]*models.Booking
	activeBy map[string]string // turf|slot|date -> booking id
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		byID:     make(map[string]*models.Booking),
		activeBy: make(map[string]string),
	}
}

func ledgerKey(b *models.Booking) string {
	return b.TurfID + "|" + b.SlotID + "|" + b.Date.Format(DateLayout)
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := ledgerKey(booking)
	if _, held := f.activeBy[key]; held {
		return bookingRepo.ErrDuplicateBooking
	}
	stored := *booking
	f.byID[booking.ID] = &stored
	f.activeBy[key] = booking.ID
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	out := *b
	return &out, nil
}

func (f *fakeBookingRepo) GetByTurfAndDate(ctx context.Context, turfID string, day time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	end := day.Add(24 * time.Hour)
	var out []models.Booking
	for _, b := range f.byID {
		if b.TurfID == turfID && !b.Date.Before(day) && b.Date.Before(end) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.byID {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.byID {
		if b.OwnerID == ownerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Booking, 0, len(f.byID))
	for _, b := range f.byID {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.byID[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	b.Status = status
	b.Active = status != models.BookingCancelled
	if !b.Active {
		delete(f.activeBy, ledgerKey(b))
	}
	out := *b
	return &out, nil
}

type fakeCatalogRepo struct {
	mu       sync.Mutex
	catalogs map[string]*models.SlotCatalog
}

func (f *fakeCatalogRepo) Replace(ctx context.Context, cat *models.SlotCatalog) (*models.SlotCatalog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catalogs[cat.TurfID] = cat
	return cat, nil
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

func newTestService() (*DefaultBookingService, *fakeBookingRepo) {
	bookings := newFakeBookingRepo()
	catalogs := &fakeCatalogRepo{catalogs: map[string]*models.SlotCatalog{
		"turf-1": {
			ID:      "cat-1",
			TurfID:  "turf-1",
			OwnerID: "owner-1",
			Slots: []models.Slot{
				{ID: "slot-a", Start: "06:00", End: "07:00", Price: 500, Available: true},
				{ID: "slot-b", Start: "07:00", End: "08:00", Price: 500, Available: true},
				{ID: "slot-c", Start: "18:00", End: "19:00", Price: 900, Available: true},
			},
		},
		"turf-empty": {ID: "cat-2", TurfID: "turf-empty", OwnerID: "owner-1"},
	}}
	return &DefaultBookingService{Bookings: bookings, Catalogs: catalogs}, bookings
}

func testRequest() models.CreateBookingRequest {
	return models.CreateBookingRequest{
		TurfID:        "turf-1",
		SlotID:        "slot-a",
		OwnerID:       "owner-1",
		Date:          "2026-09-05",
		TotalAmount:   500,
		AdvanceAmount: 100,
		ScreenshotRef: "screenshots/pay-1",
	}
}

func TestCreateBooking(t *testing.T) {
	svc, _ := newTestService()

	bk, err := svc.CreateBooking(context.Background(), "user-1", testRequest())
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if bk.ID == "" {
		t.Error("booking id was not generated")
	}
	if bk.Status != models.BookingConfirmed {
		t.Errorf("expected status %q, got %q", models.BookingConfirmed, bk.Status)
	}
	if !bk.Active {
		t.Error("new booking must be active")
	}
	if bk.SlotTime != "06:00 - 07:00" {
		t.Errorf("unexpected slot time %q", bk.SlotTime)
	}
	want := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	if !bk.Date.Equal(want) {
		t.Errorf("date not normalised to UTC midnight: %v", bk.Date)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	mutate := []struct {
		name  string
		apply func(*models.CreateBookingRequest)
	}{
		{"missing turf", func(r *models.CreateBookingRequest) { r.TurfID = "" }},
		{"missing slot", func(r *models.CreateBookingRequest) { r.SlotID = "" }},
		{"missing owner", func(r *models.CreateBookingRequest) { r.OwnerID = "" }},
		{"missing date", func(r *models.CreateBookingRequest) { r.Date = "" }},
		{"bad date", func(r *models.CreateBookingRequest) { r.Date = "05-09-2026" }},
		{"missing screenshot", func(r *models.CreateBookingRequest) { r.ScreenshotRef = "" }},
	}

	for _, tc := range mutate {
		t.Run(tc.name, func(t *testing.T) {
			req := testRequest()
			tc.apply(&req)
			_, err := svc.CreateBooking(ctx, "user-1", req)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}

	if _, err := svc.CreateBooking(ctx, "", testRequest()); err == nil {
		t.Error("expected error for missing user id")
	}
}

func TestCreateBookingUnknownTargets(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := testRequest()
	req.TurfID = "no-such-turf"
	if _, err := svc.CreateBooking(ctx, "user-1", req); !errors.Is(err, catalog.ErrCatalogNotFound) {
		t.Errorf("expected ErrCatalogNotFound, got %v", err)
	}

	req = testRequest()
	req.SlotID = "no-such-slot"
	if _, err := svc.CreateBooking(ctx, "user-1", req); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("expected ErrSlotNotFound, got %v", err)
	}
}

func TestCreateBookingConflict(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateBooking(ctx, "user-1", testRequest()); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if _, err := svc.CreateBooking(ctx, "user-2", testRequest()); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	// Same slot on another date is a different ledger key.
	req := testRequest()
	req.Date = "2026-09-06"
	if _, err := svc.CreateBooking(ctx, "user-2", req); err != nil {
		t.Errorf("booking another date should succeed: %v", err)
	}

	// Another slot on the same date is free too.
	req = testRequest()
	req.SlotID = "slot-b"
	if _, err := svc.CreateBooking(ctx, "user-2", req); err != nil {
		t.Errorf("booking another slot should succeed: %v", err)
	}
}

func TestConcurrentBookingsSingleWinner(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	const contenders = 32
	var wg sync.WaitGroup
	results := make(chan error, contenders)

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := svc.CreateBooking(ctx, "user-"+string(rune('a'+n%26)), testRequest())
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrSlotTaken):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("expected exactly one winner, got %d", wins)
	}
	if conflicts != contenders-1 {
		t.Errorf("expected %d conflicts, got %d", contenders-1, conflicts)
	}

	all, _ := repo.GetAll(ctx)
	if len(all) != 1 {
		t.Errorf("ledger should hold a single booking, found %d", len(all))
	}
}

func TestCancelFreesSlotForRebooking(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.CreateBooking(ctx, "user-1", testRequest())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	cancelled, err := svc.CancelBooking(ctx, first.ID)
	if err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if cancelled.Status != models.BookingCancelled || cancelled.Active {
		t.Errorf("cancelled booking in wrong state: status=%s active=%v", cancelled.Status, cancelled.Active)
	}

	second, err := svc.CreateBooking(ctx, "user-2", testRequest())
	if err != nil {
		t.Fatalf("rebooking after cancel failed: %v", err)
	}
	if second.ID == first.ID {
		t.Error("rebooking must create a new booking record")
	}
}

func TestStatusTransitions(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	bk, err := svc.CreateBooking(ctx, "user-1", testRequest())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	done, err := svc.CompleteBooking(ctx, bk.ID)
	if err != nil {
		t.Fatalf("CompleteBooking: %v", err)
	}
	if done.Status != models.BookingCompleted || !done.Active {
		t.Errorf("completed booking in wrong state: status=%s active=%v", done.Status, done.Active)
	}

	// A completed booking still holds its slot and cannot be cancelled.
	if _, err := svc.CancelBooking(ctx, bk.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition cancelling completed booking, got %v", err)
	}
	if _, err := svc.CreateBooking(ctx, "user-2", testRequest()); !errors.Is(err, ErrSlotTaken) {
		t.Errorf("completed booking must still hold the slot, got %v", err)
	}

	if _, err := svc.CancelBooking(ctx, "no-such-booking"); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("expected ErrBookingNotFound, got %v", err)
	}
}
