package state

import (
	"sync"

	"github.com/Limpiar-Hub/portal-core/internal/models"
)

// TicketStore holds support tickets newest-first. Tickets are never
// deleted; resolution is a one-way flip.
type TicketStore struct {
	mu      sync.Mutex
	tickets []models.Ticket
	filter  string
}

func NewTicketStore() *TicketStore {
	return &TicketStore{}
}

// Add prepends a ticket so the newest shows first. A duplicate id
// refreshes the existing entry in place instead of adding a second row.
func (s *TicketStore) Add(t models.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].TicketID == t.TicketID {
			s.tickets[i] = t
			return
		}
	}
	s.tickets = append([]models.Ticket{t}, s.tickets...)
}

// Resolve flips a ticket to resolved. Resolving an already-resolved or
// unknown ticket is a no-op.
func (s *TicketStore) Resolve(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].TicketID == id {
			s.tickets[i].Status = models.TicketResolved
			return
		}
	}
}

// SetFilter selects which status Filtered returns; empty means all.
func (s *TicketStore) SetFilter(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = status
}

func (s *TicketStore) Filtered() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		if s.filter == "" || t.Status == s.filter {
			out = append(out, t)
		}
	}
	return out
}

func (s *TicketStore) All() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Ticket(nil), s.tickets...)
}
