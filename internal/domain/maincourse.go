package domain

import (
	"fmt"
	"slices"
	"strings"
)

// CookingMethod is how a main course is prepared.
type CookingMethod int

const (
	MethodGrilled CookingMethod = iota
	MethodBaked
	MethodBoiled
	MethodFried
	MethodSteamed
	MethodRaw
)

var cookingMethods = []struct {
	tag, label string
}{
	MethodGrilled: {"GRILLED", "Grilled"},
	MethodBaked:   {"BAKED", "Baked"},
	MethodBoiled:  {"BOILED", "Boiled"},
	MethodFried:   {"FRIED", "Fried"},
	MethodSteamed: {"STEAMED", "Steamed"},
	MethodRaw:     {"RAW", "Raw"},
}

// String returns the tag form.
func (m CookingMethod) String() string {
	if m < 0 || int(m) >= len(cookingMethods) {
		return cookingMethods[MethodGrilled].tag
	}
	return cookingMethods[m].tag
}

// Label returns the human-readable name.
func (m CookingMethod) Label() string {
	if m < 0 || int(m) >= len(cookingMethods) {
		return cookingMethods[MethodGrilled].label
	}
	return cookingMethods[m].label
}

// CookingMethodFromString converts a tag. Returns MethodGrilled for
// unrecognized tags.
func CookingMethodFromString(tag string) CookingMethod {
	for i, m := range cookingMethods {
		if m.tag == tag {
			return CookingMethod(i)
		}
	}
	return MethodGrilled
}

// SideCategory classifies a side dish.
type SideCategory int

const (
	SideGrain SideCategory = iota
	SidePasta
	SideLegume
	SideBread
	SideSalad
	SideSoup
	SideStarches
	SideVegetable
)

var sideCategories = []struct {
	tag, label string
}{
	SideGrain:     {"GRAIN", "Grain"},
	SidePasta:     {"PASTA", "Pasta"},
	SideLegume:    {"LEGUME", "Legume"},
	SideBread:     {"BREAD", "Bread"},
	SideSalad:     {"SALAD", "Salad"},
	SideSoup:      {"SOUP", "Soup"},
	SideStarches:  {"STARCHES", "Starches"},
	SideVegetable: {"VEGETABLE", "Vegetable"},
}

// String returns the tag form.
func (c SideCategory) String() string {
	if c < 0 || int(c) >= len(sideCategories) {
		return sideCategories[SideVegetable].tag
	}
	return sideCategories[c].tag
}

// Label returns the human-readable name.
func (c SideCategory) Label() string {
	if c < 0 || int(c) >= len(sideCategories) {
		return sideCategories[SideVegetable].label
	}
	return sideCategories[c].label
}

// SideCategoryFromString converts a tag. Returns SideVegetable for
// unrecognized tags.
func SideCategoryFromString(tag string) SideCategory {
	for i, c := range sideCategories {
		if c.tag == tag {
			return SideCategory(i)
		}
	}
	return SideVegetable
}

// containsGluten reports whether sides of this category are dropped by a
// gluten-free request.
func (c SideCategory) containsGluten() bool {
	switch c {
	case SideGrain, SidePasta, SideBread, SideStarches:
		return true
	}
	return false
}

// SideDish accompanies a main course.
type SideDish struct {
	Name     string
	Category SideCategory
}

// MainCourse is an entrée.
type MainCourse struct {
	Base
	CookingMethod CookingMethod
	ProteinType   string
	SideDishes    []SideDish
	GlutenFree    bool
}

var _ Dish = (*MainCourse)(nil)

// Kind implements Dish.
func (m *MainCourse) Kind() Kind { return KindMainCourse }

// AddSideDish appends a side dish.
func (m *MainCourse) AddSideDish(side SideDish) {
	m.SideDishes = append(m.SideDishes, side)
}

// Equal implements Dish.
func (m *MainCourse) Equal(other Dish) bool {
	o, ok := other.(*MainCourse)
	if !ok || o == nil {
		return false
	}
	return m.Base.equal(&o.Base) &&
		m.CookingMethod == o.CookingMethod &&
		m.ProteinType == o.ProteinType &&
		m.GlutenFree == o.GlutenFree &&
		slices.Equal(m.SideDishes, o.SideDishes)
}

// DietaryAccommodations applies, in order: vegetarian substitution,
// vegan dairy removal, gluten-free side filtering.
func (m *MainCourse) DietaryAccommodations(req DietaryRequest) {
	if req.Vegetarian {
		m.ProteinType = "Tofu"
		m.Ingredients = substitute(m.Ingredients, nonVegetarian, "Beans", "Mushrooms")
	}
	if req.Vegan {
		m.ProteinType = "Tofu"
		m.Ingredients = without(m.Ingredients, dairyAndEggs)
	}
	if req.GlutenFree {
		m.GlutenFree = true
		m.SideDishes = slices.DeleteFunc(m.SideDishes, func(s SideDish) bool {
			return s.Category.containsGluten()
		})
	}
}

// Display implements Dish.
func (m *MainCourse) Display() string {
	var sb strings.Builder
	m.writeHeader(&sb)
	fmt.Fprintf(&sb, "Cooking Method: %s\n", m.CookingMethod.Label())
	fmt.Fprintf(&sb, "Protein Type: %s\n", m.ProteinType)
	sb.WriteString("Side Dishes:")
	if len(m.SideDishes) == 0 {
		sb.WriteString(" None")
	}
	for _, side := range m.SideDishes {
		fmt.Fprintf(&sb, "\n%s (Category: %s)", side.Name, side.Category.Label())
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Gluten-Free: %s\n", yesNo(m.GlutenFree))
	return sb.String()
}
