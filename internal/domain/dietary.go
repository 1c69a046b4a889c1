package domain

import mapset "github.com/deckarep/golang-set/v2"

// DietaryRequest is a batch of independent accommodation flags. A flag
// with no rule for a given variant is ignored by that variant.
type DietaryRequest struct {
	Vegetarian bool
	Vegan      bool
	GlutenFree bool
	NutFree    bool
	LowSodium  bool
	LowSugar   bool
}

// Any reports whether at least one flag is set.
func (r DietaryRequest) Any() bool {
	return r.Vegetarian || r.Vegan || r.GlutenFree || r.NutFree || r.LowSodium || r.LowSugar
}

var (
	nonVegetarian = mapset.NewSet("Meat", "Chicken", "Fish", "Beef", "Pork", "Lamb", "Shrimp", "Bacon")
	glutenSources = mapset.NewSet("Wheat", "Flour", "Bread", "Pasta", "Barley", "Rye", "Oats", "Crust")
	dairyAndEggs  = mapset.NewSet("Milk", "Eggs", "Cheese", "Butter", "Cream", "Yogurt")
	nuts          = mapset.NewSet("Almonds", "Walnuts", "Pecans", "Hazelnuts", "Peanuts", "Cashews", "Pistachios")
)

// substitute walks ingredients in order. The first forbidden ingredient
// becomes first, the second becomes second, and any later ones are
// dropped. Other ingredients keep their relative order.
func substitute(ingredients []string, forbidden mapset.Set[string], first, second string) []string {
	out := make([]string, 0, len(ingredients))
	usedFirst, usedSecond := false, false
	for _, ing := range ingredients {
		if !forbidden.Contains(ing) {
			out = append(out, ing)
			continue
		}
		switch {
		case !usedFirst:
			out = append(out, first)
			usedFirst = true
		case !usedSecond:
			out = append(out, second)
			usedSecond = true
		}
	}
	return out
}

// without drops every forbidden ingredient.
func without(ingredients []string, forbidden mapset.Set[string]) []string {
	out := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if !forbidden.Contains(ing) {
			out = append(out, ing)
		}
	}
	return out
}
