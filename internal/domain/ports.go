package domain

import "context"

// ServedLog records a ticket for every dish that leaves the kitchen.
// Implementations can be in-memory or backed by any other store.
type ServedLog interface {
	Record(ticket Ticket)
	Tickets() []Ticket
}

// IntentParser converts raw shell input into structured intents.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}
