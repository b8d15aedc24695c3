package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"turfbook/services/catalog"
)

func fixedClock(value string) func() time.Time {
	t, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t.UTC() }
}

func TestResolveFutureDateAllFree(t *testing.T) {
	svc, _ := newTestService()
	svc.Now = fixedClock("2026-09-01 12:00")

	slots, err := svc.Resolve(context.Background(), "turf-1", "2026-09-05")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
	for _, sl := range slots {
		if !sl.Available {
			t.Errorf("slot %s should be available on a free future date", sl.SlotID)
		}
	}
	// Catalog order is preserved.
	if slots[0].SlotID != "slot-a" || slots[1].SlotID != "slot-b" || slots[2].SlotID != "slot-c" {
		t.Errorf("slots out of catalog order: %v", slots)
	}
}

func TestResolveMarksBookedSlots(t *testing.T) {
	svc, _ := newTestService()
	svc.Now = fixedClock("2026-09-01 12:00")
	ctx := context.Background()

	if _, err := svc.CreateBooking(ctx, "user-1", testRequest()); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	slots, err := svc.Resolve(ctx, "turf-1", "2026-09-05")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for _, sl := range slots {
		want := sl.SlotID != "slot-a"
		if sl.Available != want {
			t.Errorf("slot %s availability = %v, want %v", sl.SlotID, sl.Available, want)
		}
	}

	// The same slot on a different date is unaffected.
	slots, err = svc.Resolve(ctx, "turf-1", "2026-09-06")
	if err != nil {
		t.Fatalf("Resolve other date: %v", err)
	}
	for _, sl := range slots {
		if !sl.Available {
			t.Errorf("slot %s on another date should be available", sl.SlotID)
		}
	}
}

func TestResolveIgnoresCancelledBookings(t *testing.T) {
	svc, _ := newTestService()
	svc.Now = fixedClock("2026-09-01 12:00")
	ctx := context.Background()

	bk, err := svc.CreateBooking(ctx, "user-1", testRequest())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if _, err := svc.CancelBooking(ctx, bk.ID); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	slots, err := svc.Resolve(ctx, "turf-1", "2026-09-05")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for _, sl := range slots {
		if !sl.Available {
			t.Errorf("slot %s should be free again after cancellation", sl.SlotID)
		}
	}
}

func TestResolveSameDayCutoff(t *testing.T) {
	svc, _ := newTestService()
	// Midday: the 06:00 and 07:00 slots have started, 18:00 has not.
	svc.Now = fixedClock("2026-09-05 12:00")

	slots, err := svc.Resolve(context.Background(), "turf-1", "2026-09-05")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got := map[string]bool{}
	for _, sl := range slots {
		got[sl.SlotID] = sl.Available
	}
	if got["slot-a"] || got["slot-b"] {
		t.Errorf("started slots must be unavailable today: %v", got)
	}
	if !got["slot-c"] {
		t.Error("evening slot should still be available at midday")
	}
}

func TestResolveCutoffAtExactStart(t *testing.T) {
	svc, _ := newTestService()
	// Exactly at slot start the slot is no longer bookable.
	svc.Now = fixedClock("2026-09-05 18:00")

	slots, err := svc.Resolve(context.Background(), "turf-1", "2026-09-05")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for _, sl := range slots {
		if sl.SlotID == "slot-c" && sl.Available {
			t.Error("slot starting now must not be bookable")
		}
	}

	// One minute earlier it still is.
	svc.Now = fixedClock("2026-09-05 17:59")
	slots, _ = svc.Resolve(context.Background(), "turf-1", "2026-09-05")
	for _, sl := range slots {
		if sl.SlotID == "slot-c" && !sl.Available {
			t.Error("slot should be bookable right up to its start time")
		}
	}
}

func TestResolveCutoffDoesNotLeakToOtherDays(t *testing.T) {
	svc, _ := newTestService()
	svc.Now = fixedClock("2026-09-05 23:30")

	slots, err := svc.Resolve(context.Background(), "turf-1", "2026-09-06")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for _, sl := range slots {
		if !sl.Available {
			t.Errorf("tomorrow's slot %s should be unaffected by today's clock", sl.SlotID)
		}
	}
}

func TestResolveEmptyAndMissingCatalogs(t *testing.T) {
	svc, _ := newTestService()
	svc.Now = fixedClock("2026-09-01 12:00")
	ctx := context.Background()

	slots, err := svc.Resolve(ctx, "turf-empty", "2026-09-05")
	if err != nil {
		t.Fatalf("Resolve on empty catalog: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("empty catalog should yield an empty list, got %d slots", len(slots))
	}

	if _, err := svc.Resolve(ctx, "no-such-turf", "2026-09-05"); !errors.Is(err, catalog.ErrCatalogNotFound) {
		t.Errorf("expected ErrCatalogNotFound, got %v", err)
	}

	var verr *ValidationError
	if _, err := svc.Resolve(ctx, "turf-1", "not-a-date"); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for malformed date, got %v", err)
	}
}
