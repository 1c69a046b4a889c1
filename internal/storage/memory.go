// Package storage provides served-ticket ledger implementations.
package storage

import (
	"slices"
	"sync"

	"github.com/hammamikhairi/ottokitchen/internal/domain"
	"github.com/hammamikhairi/ottokitchen/internal/logger"
)

// Compile-time interface check.
var _ domain.ServedLog = (*MemoryLedger)(nil)

// MemoryLedger keeps served tickets in memory for the life of the
// process. Safe for concurrent access.
type MemoryLedger struct {
	mu      sync.RWMutex
	tickets []domain.Ticket
	byID    map[string]int
	log     *logger.Logger
}

// NewMemoryLedger creates an empty ledger.
func NewMemoryLedger(log *logger.Logger) *MemoryLedger {
	return &MemoryLedger{
		byID: make(map[string]int),
		log:  log,
	}
}

// Record appends a ticket. A ticket whose ID is already present replaces
// the earlier entry.
func (l *MemoryLedger) Record(ticket domain.Ticket) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i, ok := l.byID[ticket.ID]; ok {
		l.tickets[i] = ticket
		l.log.Debug("replaced ticket %s (%s)", ticket.ID, ticket.DishName)
		return
	}
	l.byID[ticket.ID] = len(l.tickets)
	l.tickets = append(l.tickets, ticket)
	l.log.Debug("recorded ticket %s (%s, %s)", ticket.ID, ticket.DishName, ticket.Cuisine)
}

// Tickets returns every ticket in the order it was recorded.
func (l *MemoryLedger) Tickets() []domain.Ticket {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.tickets)
}

// Get retrieves a ticket by ID.
func (l *MemoryLedger) Get(id string) (domain.Ticket, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.byID[id]
	if !ok {
		l.log.Debug("ticket not found: %s", id)
		return domain.Ticket{}, domain.ErrNotFound
	}
	return l.tickets[i], nil
}

// CountByCuisine returns how many served tickets belong to cuisine.
func (l *MemoryLedger) CountByCuisine(cuisine domain.CuisineType) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for _, t := range l.tickets {
		if t.Cuisine == cuisine {
			n++
		}
	}
	return n
}
