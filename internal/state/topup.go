package state

import "sync"

// TopUpModal is the wallet top-up dialog state: open flag, amount, and
// payment method. Close resets everything.
type TopUpModal struct {
	mu     sync.Mutex
	open   bool
	amount float64
	method string
}

func NewTopUpModal() *TopUpModal {
	return &TopUpModal{}
}

func (m *TopUpModal) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = true
}

func (m *TopUpModal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
	m.amount = 0
	m.method = ""
}

func (m *TopUpModal) SetAmount(amount float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.amount = amount
}

func (m *TopUpModal) SetMethod(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.method = method
}

func (m *TopUpModal) State() (bool, float64, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open, m.amount, m.method
}
