package storage

import (
	"testing"
	"time"

	"github.com/hammamikhairi/ottokitchen/internal/domain"
	"github.com/hammamikhairi/ottokitchen/internal/logger"
)

func TestMemoryLedgerRecordAndGet(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	ledger := NewMemoryLedger(log)

	ticket := domain.Ticket{
		ID:       "t-1",
		DishName: "Tiramisu",
		Kind:     domain.KindDessert,
		Cuisine:  domain.CuisineItalian,
		PrepTime: 30,
		ServedAt: time.Now(),
	}

	// Record.
	ledger.Record(ticket)

	// Get.
	got, err := ledger.Get("t-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DishName != ticket.DishName {
		t.Fatalf("expected dish %s, got %s", ticket.DishName, got.DishName)
	}

	// Get nonexistent.
	if _, err := ledger.Get("nonexistent"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Re-record with the same ID replaces.
	ticket.PrepTime = 45
	ledger.Record(ticket)
	if n := len(ledger.Tickets()); n != 1 {
		t.Fatalf("expected 1 ticket after replace, got %d", n)
	}
	got, _ = ledger.Get("t-1")
	if got.PrepTime != 45 {
		t.Fatalf("expected replaced prep time 45, got %d", got.PrepTime)
	}
}

func TestMemoryLedgerOrderAndCounts(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	ledger := NewMemoryLedger(log)

	tickets := []domain.Ticket{
		{ID: "a", DishName: "Tacos", Cuisine: domain.CuisineMexican},
		{ID: "b", DishName: "Pho", Cuisine: domain.CuisineOther},
		{ID: "c", DishName: "Mole", Cuisine: domain.CuisineMexican},
	}
	for _, tk := range tickets {
		ledger.Record(tk)
	}

	got := ledger.Tickets()
	if len(got) != 3 {
		t.Fatalf("expected 3 tickets, got %d", len(got))
	}
	for i, tk := range tickets {
		if got[i].ID != tk.ID {
			t.Fatalf("ticket %d: expected %s, got %s", i, tk.ID, got[i].ID)
		}
	}

	if n := ledger.CountByCuisine(domain.CuisineMexican); n != 2 {
		t.Fatalf("expected 2 mexican tickets, got %d", n)
	}

	// Returned slice is a copy.
	got[0].DishName = "changed"
	if first, _ := ledger.Get("a"); first.DishName != "Tacos" {
		t.Fatalf("ledger mutated through returned slice: %s", first.DishName)
	}
}
