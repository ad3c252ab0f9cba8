package booking

import (
	"context"
	"errors"
	"sync"

	"github.com/Limpiar-Hub/portal-core/internal/api"
	"github.com/Limpiar-Hub/portal-core/internal/models"
	"github.com/Limpiar-Hub/portal-core/internal/state"
)

var (
	ErrDraftIncomplete = errors.New("booking draft incomplete")
	ErrSubmitInFlight  = errors.New("submit already in flight")
)

// BookingAPI is the slice of the backend client the submit flow needs.
type BookingAPI interface {
	CreateBooking(ctx context.Context, input api.CreateBookingInput) (models.Booking, error)
}

// Flow ties the wizard to the backend submit. One submit at a time; a
// failed submit keeps the draft (and its request id) so a retry lands on
// the same idempotency key instead of creating a second booking.
type Flow struct {
	api    BookingAPI
	wizard *state.BookingWizard

	mu       sync.Mutex
	inFlight bool
}

func NewFlow(bookingAPI BookingAPI, wizard *state.BookingWizard) *Flow {
	return &Flow{api: bookingAPI, wizard: wizard}
}

func (f *Flow) Submit(ctx context.Context) (models.Booking, error) {
	if !f.wizard.Complete() {
		return models.Booking{}, ErrDraftIncomplete
	}

	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return models.Booking{}, ErrSubmitInFlight
	}
	f.inFlight = true
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.inFlight = false
		f.mu.Unlock()
	}()

	draft := f.wizard.Draft()
	booking, err := f.api.CreateBooking(ctx, api.CreateBookingInput{
		RequestID:    draft.RequestID,
		PropertyID:   draft.Property.ID,
		ServiceTypes: draft.ServiceTypes,
		Date:         *draft.Date,
		TimeSlots:    draft.TimeSlots,
		Notes:        draft.Notes,
	})
	if err != nil {
		return models.Booking{}, err
	}

	// successful submit closes the wizard; the next Open mints a new key
	f.wizard.Close()
	return booking, nil
}
