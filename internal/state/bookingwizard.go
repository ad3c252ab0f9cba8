package state

import (
	"sync"

	"github.com/Limpiar-Hub/portal-core/internal/models"
	"github.com/google/uuid"
)

// Booking wizard steps. Step 5 (notes) has no required field.
const (
	StepServiceType = 1
	StepProperty    = 2
	StepDate        = 3
	StepTime        = 4
	StepNotes       = 5
	StepPreview     = 6
)

// BookingDraft is the snapshot shape handed to callers; internal slices
// are copied on read so callers never alias store state.
type BookingDraft struct {
	Step         int
	RequestID    string
	ServiceTypes []models.ServiceType
	Property     *models.PropertyRef
	Date         *models.BookingDate
	TimeSlots    []string
	Notes        string
	ModalOpen    bool
}

type BookingWizard struct {
	mu    sync.Mutex
	draft BookingDraft
}

func NewBookingWizard() *BookingWizard {
	w := &BookingWizard{}
	w.draft = initialDraft()
	return w
}

func initialDraft() BookingDraft {
	return BookingDraft{Step: StepServiceType}
}

// Open marks the wizard active and mints the draft's idempotency key. The
// key lives for the whole draft so a retried submit cannot create a
// duplicate booking server-side.
func (w *BookingWizard) Open() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft = initialDraft()
	w.draft.ModalOpen = true
	w.draft.RequestID = uuid.NewString()
}

// Close resets every field to its initial value. Idempotent.
func (w *BookingWizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft = initialDraft()
}

func (w *BookingWizard) SetServiceTypes(types []models.ServiceType) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.ServiceTypes = append([]models.ServiceType(nil), types...)
}

func (w *BookingWizard) SetProperty(p models.PropertyRef) {
	w.mu.Lock()
	defer w.mu.Unlock()
	prop := p
	w.draft.Property = &prop
}

func (w *BookingWizard) SetDate(d models.BookingDate) {
	w.mu.Lock()
	defer w.mu.Unlock()
	date := d
	w.draft.Date = &date
}

func (w *BookingWizard) SetTimeSlots(slots []string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.TimeSlots = append([]string(nil), slots...)
}

func (w *BookingWizard) SetNotes(notes string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Notes = notes
}

// SetStep moves to the requested step if every step before it has its
// required field populated. Returns false and leaves the step unchanged
// otherwise.
func (w *BookingWizard) SetStep(step int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if step < StepServiceType || step > StepPreview {
		return false
	}
	for s := StepServiceType; s < step; s++ {
		if !w.stepComplete(s) {
			return false
		}
	}
	w.draft.Step = step
	return true
}

// Next advances one step, gated on the current step's required field.
func (w *BookingWizard) Next() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft.Step >= StepPreview {
		return false
	}
	if !w.stepComplete(w.draft.Step) {
		return false
	}
	w.draft.Step++
	return true
}

// Back decrements the step without clearing entered data, so a user can
// correct an earlier step and come forward again.
func (w *BookingWizard) Back() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft.Step <= StepServiceType {
		return false
	}
	w.draft.Step--
	return true
}

func (w *BookingWizard) stepComplete(step int) bool {
	switch step {
	case StepServiceType:
		return len(w.draft.ServiceTypes) > 0
	case StepProperty:
		return w.draft.Property != nil
	case StepDate:
		return w.draft.Date != nil
	case StepTime:
		return len(w.draft.TimeSlots) > 0
	case StepNotes:
		return true
	default:
		return true
	}
}

// Complete reports whether the draft has everything a submit needs.
func (w *BookingWizard) Complete() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for s := StepServiceType; s <= StepTime; s++ {
		if !w.stepComplete(s) {
			return false
		}
	}
	return true
}

func (w *BookingWizard) Draft() BookingDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	draft := w.draft
	draft.ServiceTypes = append([]models.ServiceType(nil), w.draft.ServiceTypes...)
	draft.TimeSlots = append([]string(nil), w.draft.TimeSlots...)
	if w.draft.Property != nil {
		prop := *w.draft.Property
		draft.Property = &prop
	}
	if w.draft.Date != nil {
		date := *w.draft.Date
		draft.Date = &date
	}
	return draft
}
