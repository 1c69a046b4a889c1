package domain

import "time"

// Ticket is the record left behind when a dish is served.
type Ticket struct {
	ID       string
	DishName string
	Kind     Kind
	Cuisine  CuisineType
	PrepTime int
	ServedAt time.Time
}
