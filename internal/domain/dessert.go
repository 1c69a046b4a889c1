package domain

import (
	"fmt"
	"strings"
)

// FlavorProfile is the dominant taste of a dessert.
type FlavorProfile int

const (
	FlavorSweet FlavorProfile = iota
	FlavorBitter
	FlavorSour
	FlavorSalty
	FlavorUmami
)

// String returns the tag form.
func (f FlavorProfile) String() string {
	switch f {
	case FlavorBitter:
		return "BITTER"
	case FlavorSour:
		return "SOUR"
	case FlavorSalty:
		return "SALTY"
	case FlavorUmami:
		return "UMAMI"
	default:
		return "SWEET"
	}
}

// Label returns the human-readable name.
func (f FlavorProfile) Label() string {
	switch f {
	case FlavorBitter:
		return "Bitter"
	case FlavorSour:
		return "Sour"
	case FlavorSalty:
		return "Salty"
	case FlavorUmami:
		return "Umami"
	default:
		return "Sweet"
	}
}

// FlavorProfileFromString converts a tag. Returns FlavorSweet for
// unrecognized tags.
func FlavorProfileFromString(tag string) FlavorProfile {
	switch tag {
	case "BITTER":
		return FlavorBitter
	case "SOUR":
		return FlavorSour
	case "SALTY":
		return FlavorSalty
	case "UMAMI":
		return FlavorUmami
	default:
		return FlavorSweet
	}
}

// Dessert is a sweet course.
type Dessert struct {
	Base
	FlavorProfile  FlavorProfile
	SweetnessLevel int
	ContainsNuts   bool
}

var _ Dish = (*Dessert)(nil)

// Kind implements Dish.
func (d *Dessert) Kind() Kind { return KindDessert }

// Equal implements Dish.
func (d *Dessert) Equal(other Dish) bool {
	o, ok := other.(*Dessert)
	if !ok || o == nil {
		return false
	}
	return d.Base.equal(&o.Base) &&
		d.FlavorProfile == o.FlavorProfile &&
		d.SweetnessLevel == o.SweetnessLevel &&
		d.ContainsNuts == o.ContainsNuts
}

// DietaryAccommodations applies, in order: nut removal, sugar reduction,
// vegan substitution. The vegan pass sees the list left by the nut pass.
func (d *Dessert) DietaryAccommodations(req DietaryRequest) {
	if req.NutFree {
		d.ContainsNuts = false
		d.Ingredients = without(d.Ingredients, nuts)
	}
	if req.LowSugar {
		d.SweetnessLevel = max(0, d.SweetnessLevel-3)
	}
	if req.Vegan {
		d.Ingredients = substitute(d.Ingredients, dairyAndEggs, "Almond Milk", "Flax Egg")
	}
}

// Display implements Dish.
func (d *Dessert) Display() string {
	var sb strings.Builder
	d.writeHeader(&sb)
	fmt.Fprintf(&sb, "Flavor Profile: %s\n", d.FlavorProfile.Label())
	fmt.Fprintf(&sb, "Sweetness Level: %d\n", d.SweetnessLevel)
	fmt.Fprintf(&sb, "Contains Nuts: %s\n", yesNo(d.ContainsNuts))
	return sb.String()
}
