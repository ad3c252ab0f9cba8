package state

import (
	"testing"

	"github.com/Limpiar-Hub/portal-core/internal/models"
)

func TestResolveIdempotent(t *testing.T) {
	s := NewTicketStore()
	s.Add(models.Ticket{TicketID: "t1", Title: "Leak", Status: models.TicketOpen})

	s.Resolve("t1")
	s.Resolve("t1")

	all := s.All()
	if len(all) != 1 {
		t.Fatalf("tickets=%d, want 1", len(all))
	}
	if all[0].Status != models.TicketResolved {
		t.Fatalf("status=%s, want resolved", all[0].Status)
	}

	// unknown id is a no-op
	s.Resolve("missing")
}

func TestResolvedFilterScenario(t *testing.T) {
	s := NewTicketStore()
	s.Add(models.Ticket{TicketID: "t1", Status: models.TicketOpen})
	s.Resolve("t1")
	s.SetFilter(models.TicketResolved)

	got := s.Filtered()
	if len(got) != 1 || got[0].TicketID != "t1" {
		t.Fatalf("resolved filter returned %+v, want exactly t1", got)
	}

	s.SetFilter(models.TicketOpen)
	if got := s.Filtered(); len(got) != 0 {
		t.Fatalf("open filter returned %d tickets, want 0", len(got))
	}
}

func TestAddPrependsNewestFirst(t *testing.T) {
	s := NewTicketStore()
	s.Add(models.Ticket{TicketID: "t1", Status: models.TicketOpen})
	s.Add(models.Ticket{TicketID: "t2", Status: models.TicketOpen})

	all := s.All()
	if all[0].TicketID != "t2" || all[1].TicketID != "t1" {
		t.Fatalf("tickets not newest-first: %+v", all)
	}
}

func TestAddDuplicateRefreshes(t *testing.T) {
	s := NewTicketStore()
	s.Add(models.Ticket{TicketID: "t1", Title: "old", Status: models.TicketOpen})
	s.Add(models.Ticket{TicketID: "t1", Title: "new", Status: models.TicketOpen})

	all := s.All()
	if len(all) != 1 {
		t.Fatalf("tickets=%d, want 1", len(all))
	}
	if all[0].Title != "new" {
		t.Fatalf("title=%s, want new", all[0].Title)
	}
}
