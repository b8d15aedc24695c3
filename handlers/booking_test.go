package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"turfbook/models"
	"turfbook/services/booking"

	"github.com/gin-gonic/gin"
)

// stubBookingService returns canned errors so handler mapping can be
// checked without a real ledger.
type stubBookingService struct {
	transitionErr error
}

func (s *stubBookingService) CreateBooking(ctx context.Context, userID string, req models.CreateBookingRequest) (*models.Booking, error) {
	return nil, nil
}

func (s *stubBookingService) Resolve(ctx context.Context, turfID, date string) ([]models.AvailableSlot, error) {
	return nil, nil
}

func (s *stubBookingService) GetBookingsForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingService) GetBookingsForOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingService) GetBookingsForTurfAndDate(ctx context.Context, turfID, date string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingService) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingService) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return nil, s.transitionErr
}

func (s *stubBookingService) CompleteBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return nil, s.transitionErr
}

func performCancel(t *testing.T, svc booking.Service) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	h := NewBookingHandler(svc)
	router.PUT("/bookings/cancel/:bookingId", h.CancelBookingHandler)

	req := httptest.NewRequest(http.MethodPut, "/bookings/cancel/bk-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCancelBookingTerminalStatusConflict(t *testing.T) {
	w := performCancel(t, &stubBookingService{transitionErr: booking.ErrInvalidTransition})

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(body.Message, "transitionable") {
		t.Errorf("message should describe the transition failure, got %q", body.Message)
	}
}

func TestCancelBookingNotFound(t *testing.T) {
	w := performCancel(t, &stubBookingService{transitionErr: booking.ErrBookingNotFound})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
