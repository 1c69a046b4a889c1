package domain

import (
	"fmt"
	"strings"
)

// ServingStyle describes how an appetizer reaches the table.
type ServingStyle int

const (
	ServingPlated ServingStyle = iota
	ServingFamilyStyle
	ServingBuffet
)

// String returns the tag form.
func (s ServingStyle) String() string {
	switch s {
	case ServingFamilyStyle:
		return "FAMILY_STYLE"
	case ServingBuffet:
		return "BUFFET"
	default:
		return "PLATED"
	}
}

// Label returns the human-readable name.
func (s ServingStyle) Label() string {
	switch s {
	case ServingFamilyStyle:
		return "Family Style"
	case ServingBuffet:
		return "Buffet"
	default:
		return "Plated"
	}
}

// ServingStyleFromString converts a tag. Returns ServingPlated for
// unrecognized tags.
func ServingStyleFromString(tag string) ServingStyle {
	switch tag {
	case "FAMILY_STYLE":
		return ServingFamilyStyle
	case "BUFFET":
		return ServingBuffet
	default:
		return ServingPlated
	}
}

// Appetizer is a starter dish.
type Appetizer struct {
	Base
	ServingStyle   ServingStyle
	SpicinessLevel int
	Vegetarian     bool
}

var _ Dish = (*Appetizer)(nil)

// Kind implements Dish.
func (a *Appetizer) Kind() Kind { return KindAppetizer }

// Equal implements Dish.
func (a *Appetizer) Equal(other Dish) bool {
	o, ok := other.(*Appetizer)
	if !ok || o == nil {
		return false
	}
	return a.Base.equal(&o.Base) &&
		a.ServingStyle == o.ServingStyle &&
		a.SpicinessLevel == o.SpicinessLevel &&
		a.Vegetarian == o.Vegetarian
}

// DietaryAccommodations applies, in order: vegetarian substitution,
// low-sodium spice reduction, gluten-free removal.
func (a *Appetizer) DietaryAccommodations(req DietaryRequest) {
	if req.Vegetarian {
		a.Vegetarian = true
		a.Ingredients = substitute(a.Ingredients, nonVegetarian, "Beans", "Mushrooms")
	}
	if req.LowSodium {
		a.SpicinessLevel = max(0, a.SpicinessLevel-2)
	}
	if req.GlutenFree {
		a.Ingredients = without(a.Ingredients, glutenSources)
	}
}

// Display implements Dish.
func (a *Appetizer) Display() string {
	var sb strings.Builder
	a.writeHeader(&sb)
	fmt.Fprintf(&sb, "Serving Style: %s\n", a.ServingStyle.Label())
	fmt.Fprintf(&sb, "Spiciness Level: %d\n", a.SpicinessLevel)
	fmt.Fprintf(&sb, "Vegetarian: %s\n", yesNo(a.Vegetarian))
	return sb.String()
}
