// Package domain defines the core types and interfaces for the kitchen.
// All other packages depend on domain; domain depends on no other
// internal package.
package domain

import (
	"fmt"
	"slices"
	"strings"
)

// ElaborateMinIngredients and ElaborateMinPrepTime define an elaborate dish.
const (
	ElaborateMinIngredients = 5
	ElaborateMinPrepTime    = 60
)

// Dish is a menu item held by a kitchen. Implementations are pointers to
// Appetizer, MainCourse, or Dessert.
type Dish interface {
	// Core returns the attributes shared by every variant.
	Core() *Base
	Kind() Kind
	// Equal reports whether other is the same variant with identical
	// shared and variant-specific attributes.
	Equal(other Dish) bool
	// DietaryAccommodations adjusts the dish in place.
	DietaryAccommodations(req DietaryRequest)
	// Display renders the dish as fixed labeled lines.
	Display() string
}

// Equal compares two dishes, treating nil as equal only to nil.
func Equal(a, b Dish) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Base holds the attributes shared by all dish variants.
type Base struct {
	Name        string
	Ingredients []string
	PrepTime    int // minutes
	Price       float64
	Cuisine     CuisineType
}

// Core returns the base record. Promoted to every variant.
func (b *Base) Core() *Base { return b }

// Elaborate reports whether the dish has at least five ingredients and
// takes at least an hour to prepare.
func (b *Base) Elaborate() bool {
	return len(b.Ingredients) >= ElaborateMinIngredients && b.PrepTime >= ElaborateMinPrepTime
}

func (b *Base) equal(o *Base) bool {
	return b.Name == o.Name &&
		b.PrepTime == o.PrepTime &&
		b.Price == o.Price &&
		b.Cuisine == o.Cuisine &&
		slices.Equal(b.Ingredients, o.Ingredients)
}

// writeHeader renders the shared display lines.
func (b *Base) writeHeader(sb *strings.Builder) {
	fmt.Fprintf(sb, "Dish Name: %s\n", b.Name)
	fmt.Fprintf(sb, "Ingredients: %s\n", strings.Join(b.Ingredients, ", "))
	fmt.Fprintf(sb, "Preparation Time: %d minutes\n", b.PrepTime)
	fmt.Fprintf(sb, "Price: $%.2f\n", b.Price)
	fmt.Fprintf(sb, "Cuisine Type: %s\n", b.Cuisine.Label())
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// Kind identifies a dish variant.
type Kind int

const (
	KindAppetizer Kind = iota
	KindMainCourse
	KindDessert
)

// String returns the record tag of the kind.
func (k Kind) String() string {
	switch k {
	case KindAppetizer:
		return "APPETIZER"
	case KindMainCourse:
		return "MAINCOURSE"
	case KindDessert:
		return "DESSERT"
	default:
		return "UNKNOWN"
	}
}

var kindNames = map[string]Kind{
	"APPETIZER":   KindAppetizer,
	"MAINCOURSE":  KindMainCourse,
	"MAIN_COURSE": KindMainCourse,
	"DESSERT":     KindDessert,
}

// KindFromString converts a record tag to a Kind. Unlike the attribute
// enums there is no fallback: ok is false for unknown tags.
func KindFromString(tag string) (Kind, bool) {
	k, ok := kindNames[tag]
	return k, ok
}

// CuisineType classifies a dish by cuisine.
type CuisineType int

const (
	CuisineItalian CuisineType = iota
	CuisineMexican
	CuisineChinese
	CuisineIndian
	CuisineAmerican
	CuisineFrench
	CuisineOther
)

// Cuisines lists every cuisine in report order.
var Cuisines = []CuisineType{
	CuisineItalian,
	CuisineMexican,
	CuisineChinese,
	CuisineIndian,
	CuisineAmerican,
	CuisineFrench,
	CuisineOther,
}

// String returns the tag form, e.g. "ITALIAN".
func (c CuisineType) String() string {
	switch c {
	case CuisineItalian:
		return "ITALIAN"
	case CuisineMexican:
		return "MEXICAN"
	case CuisineChinese:
		return "CHINESE"
	case CuisineIndian:
		return "INDIAN"
	case CuisineAmerican:
		return "AMERICAN"
	case CuisineFrench:
		return "FRENCH"
	default:
		return "OTHER"
	}
}

// Label returns the human-readable name, e.g. "Italian".
func (c CuisineType) Label() string {
	switch c {
	case CuisineItalian:
		return "Italian"
	case CuisineMexican:
		return "Mexican"
	case CuisineChinese:
		return "Chinese"
	case CuisineIndian:
		return "Indian"
	case CuisineAmerican:
		return "American"
	case CuisineFrench:
		return "French"
	default:
		return "Other"
	}
}

var cuisineNames = map[string]CuisineType{
	"ITALIAN":  CuisineItalian,
	"MEXICAN":  CuisineMexican,
	"CHINESE":  CuisineChinese,
	"INDIAN":   CuisineIndian,
	"AMERICAN": CuisineAmerican,
	"FRENCH":   CuisineFrench,
	"OTHER":    CuisineOther,
}

// CuisineFromString converts a tag to a CuisineType.
// Returns CuisineOther for unrecognized tags.
func CuisineFromString(tag string) CuisineType {
	if c, ok := cuisineNames[tag]; ok {
		return c
	}
	return CuisineOther
}
