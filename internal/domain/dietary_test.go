package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAppetizerDietaryAccommodations(t *testing.T) {
	tests := []struct {
		name          string
		ingredients   []string
		spiciness     int
		req           DietaryRequest
		wantIngr      []string
		wantSpiciness int
		wantVeg       bool
	}{
		{
			name:          "vegetarian keeps two replacements",
			ingredients:   []string{"Chicken", "Rice", "Shrimp", "Beef"},
			spiciness:     3,
			req:           DietaryRequest{Vegetarian: true},
			wantIngr:      []string{"Beans", "Rice", "Mushrooms"},
			wantSpiciness: 3,
			wantVeg:       true,
		},
		{
			name:          "low sodium floors at zero",
			ingredients:   []string{"Rice"},
			spiciness:     1,
			req:           DietaryRequest{LowSodium: true},
			wantIngr:      []string{"Rice"},
			wantSpiciness: 0,
		},
		{
			name:          "gluten free drops without replacement",
			ingredients:   []string{"Bread", "Tomato", "Flour", "Basil", "Crust"},
			spiciness:     4,
			req:           DietaryRequest{GlutenFree: true, LowSodium: true},
			wantIngr:      []string{"Tomato", "Basil"},
			wantSpiciness: 2,
		},
		{
			name:          "inapplicable flags are no-ops",
			ingredients:   []string{"Milk", "Almonds"},
			spiciness:     2,
			req:           DietaryRequest{Vegan: true, NutFree: true, LowSugar: true},
			wantIngr:      []string{"Milk", "Almonds"},
			wantSpiciness: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appetizer{
				Base:           Base{Name: "Starter", Ingredients: tt.ingredients},
				SpicinessLevel: tt.spiciness,
			}
			a.DietaryAccommodations(tt.req)

			if diff := cmp.Diff(tt.wantIngr, a.Ingredients); diff != "" {
				t.Errorf("ingredients (-want +got):\n%s", diff)
			}
			if a.SpicinessLevel != tt.wantSpiciness {
				t.Errorf("expected spiciness %d, got %d", tt.wantSpiciness, a.SpicinessLevel)
			}
			if a.Vegetarian != tt.wantVeg {
				t.Errorf("expected vegetarian=%v, got %v", tt.wantVeg, a.Vegetarian)
			}
		})
	}
}

func TestMainCourseDietaryAccommodations(t *testing.T) {
	m := &MainCourse{
		Base: Base{
			Name:        "Lasagna",
			Ingredients: []string{"Pasta", "Beef", "Cheese", "Pork", "Tomato", "Milk", "Bacon"},
		},
		ProteinType: "Beef",
		SideDishes: []SideDish{
			{Name: "Garlic Bread", Category: SideBread},
			{Name: "Caesar", Category: SideSalad},
			{Name: "Rice", Category: SideGrain},
			{Name: "Minestrone", Category: SideSoup},
			{Name: "Fries", Category: SideStarches},
			{Name: "Penne", Category: SidePasta},
		},
	}

	m.DietaryAccommodations(DietaryRequest{Vegetarian: true, Vegan: true, GlutenFree: true})

	wantIngr := []string{"Pasta", "Beans", "Mushrooms", "Tomato"}
	if diff := cmp.Diff(wantIngr, m.Ingredients); diff != "" {
		t.Errorf("ingredients (-want +got):\n%s", diff)
	}
	wantSides := []SideDish{
		{Name: "Caesar", Category: SideSalad},
		{Name: "Minestrone", Category: SideSoup},
	}
	if diff := cmp.Diff(wantSides, m.SideDishes); diff != "" {
		t.Errorf("side dishes (-want +got):\n%s", diff)
	}
	if m.ProteinType != "Tofu" {
		t.Errorf("expected Tofu, got %q", m.ProteinType)
	}
	if !m.GlutenFree {
		t.Error("expected gluten free flag")
	}
}

func TestMainCourseVeganOnly(t *testing.T) {
	m := &MainCourse{
		Base:        Base{Ingredients: []string{"Eggs", "Chicken", "Butter", "Butter"}},
		ProteinType: "Chicken",
	}

	m.DietaryAccommodations(DietaryRequest{Vegan: true})

	if diff := cmp.Diff([]string{"Chicken"}, m.Ingredients); diff != "" {
		t.Errorf("ingredients (-want +got):\n%s", diff)
	}
	if m.ProteinType != "Tofu" {
		t.Errorf("expected Tofu, got %q", m.ProteinType)
	}
	if m.GlutenFree {
		t.Error("gluten free set without request")
	}
}

func TestDessertComposesSequentially(t *testing.T) {
	tests := []struct {
		name          string
		ingredients   []string
		sweetness     int
		req           DietaryRequest
		wantIngr      []string
		wantSweetness int
	}{
		{
			name:          "all three flags",
			ingredients:   []string{"Milk", "Sugar", "Eggs"},
			sweetness:     8,
			req:           DietaryRequest{NutFree: true, LowSugar: true, Vegan: true},
			wantIngr:      []string{"Almond Milk", "Sugar", "Flax Egg"},
			wantSweetness: 5,
		},
		{
			name:          "vegan sees nut-filtered list",
			ingredients:   []string{"Almonds", "Cream", "Walnuts", "Butter", "Eggs", "Cocoa"},
			sweetness:     2,
			req:           DietaryRequest{NutFree: true, Vegan: true, LowSugar: true},
			wantIngr:      []string{"Almond Milk", "Flax Egg", "Cocoa"},
			wantSweetness: 0,
		},
		{
			name:          "nut free alone",
			ingredients:   []string{"Pecans", "Flour", "Pistachios"},
			sweetness:     6,
			req:           DietaryRequest{NutFree: true},
			wantIngr:      []string{"Flour"},
			wantSweetness: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Dessert{
				Base:           Base{Name: "Cake", Ingredients: tt.ingredients},
				SweetnessLevel: tt.sweetness,
				ContainsNuts:   true,
			}
			d.DietaryAccommodations(tt.req)

			if diff := cmp.Diff(tt.wantIngr, d.Ingredients); diff != "" {
				t.Errorf("ingredients (-want +got):\n%s", diff)
			}
			if d.SweetnessLevel != tt.wantSweetness {
				t.Errorf("expected sweetness %d, got %d", tt.wantSweetness, d.SweetnessLevel)
			}
			if tt.req.NutFree && d.ContainsNuts {
				t.Error("expected contains nuts cleared")
			}
		})
	}
}
