package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Limpiar-Hub/portal-core/internal/api"
	"github.com/Limpiar-Hub/portal-core/internal/models"
	"github.com/Limpiar-Hub/portal-core/internal/state"
)

type fakeBookingAPI struct {
	mu       sync.Mutex
	requests []api.CreateBookingInput
	createFn func(input api.CreateBookingInput) (models.Booking, error)
	started  chan struct{}
	release  chan struct{}
}

func (f *fakeBookingAPI) CreateBooking(ctx context.Context, input api.CreateBookingInput) (models.Booking, error) {
	f.mu.Lock()
	f.requests = append(f.requests, input)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
		<-f.release
	}
	if f.createFn == nil {
		return models.Booking{BookingID: "b1", RequestID: input.RequestID, Status: models.BookingPending}, nil
	}
	return f.createFn(input)
}

func completeWizard() *state.BookingWizard {
	w := state.NewBookingWizard()
	w.Open()
	w.SetServiceTypes([]models.ServiceType{{ID: "1", Name: "Cleaning", Price: 100}})
	w.SetProperty(models.PropertyRef{ID: "p1", Name: "Prop"})
	w.SetDate(models.BookingDate{Type: models.DateTypeSingle})
	w.SetTimeSlots([]string{"09:00"})
	return w
}

func TestSubmitIncompleteDraft(t *testing.T) {
	w := state.NewBookingWizard()
	w.Open()
	f := NewFlow(&fakeBookingAPI{}, w)

	if _, err := f.Submit(context.Background()); !errors.Is(err, ErrDraftIncomplete) {
		t.Fatalf("expected ErrDraftIncomplete, got %v", err)
	}
}

func TestSubmitResetsWizardOnSuccess(t *testing.T) {
	w := completeWizard()
	backend := &fakeBookingAPI{}
	f := NewFlow(backend, w)

	booking, err := f.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if booking.BookingID != "b1" {
		t.Fatalf("booking id=%s", booking.BookingID)
	}
	if w.Complete() {
		t.Fatalf("wizard not reset after successful submit")
	}
}

func TestRetryReusesRequestID(t *testing.T) {
	w := completeWizard()
	wantID := w.Draft().RequestID

	failing := true
	backend := &fakeBookingAPI{createFn: func(input api.CreateBookingInput) (models.Booking, error) {
		if failing {
			return models.Booking{}, errors.New("backend down")
		}
		return models.Booking{BookingID: "b1", RequestID: input.RequestID}, nil
	}}
	f := NewFlow(backend, w)

	if _, err := f.Submit(context.Background()); err == nil {
		t.Fatalf("expected first submit to fail")
	}
	failing = false
	if _, err := f.Submit(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}

	if len(backend.requests) != 2 {
		t.Fatalf("requests=%d, want 2", len(backend.requests))
	}
	for i, req := range backend.requests {
		if req.RequestID != wantID {
			t.Fatalf("request %d used id %s, want %s", i, req.RequestID, wantID)
		}
	}
}

func TestDoubleSubmitRefused(t *testing.T) {
	w := completeWizard()
	backend := &fakeBookingAPI{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	f := NewFlow(backend, w)

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background())
		done <- err
	}()

	<-backend.started
	if _, err := f.Submit(context.Background()); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("expected ErrSubmitInFlight, got %v", err)
	}
	close(backend.release)
	if err := <-done; err != nil {
		t.Fatalf("first submit: %v", err)
	}

	if len(backend.requests) != 1 {
		t.Fatalf("requests=%d, want 1", len(backend.requests))
	}
}
