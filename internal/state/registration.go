package state

import "sync"

// Registration status values. The machine only moves
// idle -> loading -> (success | error); the sole way out of error is a
// fresh Begin.
const (
	StatusIdle    = "idle"
	StatusLoading = "loading"
	StatusSuccess = "success"
	StatusError   = "error"
)

// RegistrationForm backs the multi-step cleaning-business registration
// and onboarding flows. Field updates are additive merges, so going back
// a step never loses what was already entered.
type RegistrationForm struct {
	mu       sync.Mutex
	step     int
	maxStep  int
	fields   map[string]string
	status   string
	errorMsg string
}

func NewRegistrationForm(steps int) *RegistrationForm {
	if steps < 1 {
		steps = 1
	}
	return &RegistrationForm{
		step:    1,
		maxStep: steps,
		fields:  make(map[string]string),
		status:  StatusIdle,
	}
}

// Update merges field values into the draft.
func (f *RegistrationForm) Update(fields map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, v := range fields {
		f.fields[k] = v
	}
}

func (f *RegistrationForm) Next() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step >= f.maxStep {
		return false
	}
	f.step++
	return true
}

func (f *RegistrationForm) Prev() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step <= 1 {
		return false
	}
	f.step--
	return true
}

// Begin moves the status to loading. Allowed from idle or error (a
// resubmission); refused while a submit is already in flight or after
// success.
func (f *RegistrationForm) Begin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusLoading || f.status == StatusSuccess {
		return false
	}
	f.status = StatusLoading
	f.errorMsg = ""
	return true
}

func (f *RegistrationForm) Succeed() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusLoading {
		f.status = StatusSuccess
	}
}

func (f *RegistrationForm) Fail(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusLoading {
		f.status = StatusError
		f.errorMsg = msg
	}
}

func (f *RegistrationForm) Status() (string, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, f.errorMsg
}

func (f *RegistrationForm) Step() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

func (f *RegistrationForm) Field(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields[name]
}

func (f *RegistrationForm) Fields() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.fields))
	for k, v := range f.fields {
		out[k] = v
	}
	return out
}
