package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hammamikhairi/ottokitchen/internal/domain"
	"github.com/hammamikhairi/ottokitchen/internal/kitchen"
)

func TestRenderDish(t *testing.T) {
	d := &domain.Dessert{
		Base:           domain.Base{Name: "Tiramisu", Ingredients: []string{"Mascarpone"}, PrepTime: 60, Price: 9, Cuisine: domain.CuisineItalian},
		SweetnessLevel: 7,
	}

	out := RenderDish(d)
	for _, want := range []string{"DESSERT", "Tiramisu", "Mascarpone", "Italian"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderDish missing %q:\n%s", want, out)
		}
	}
	if RenderDish(nil) != "" {
		t.Error("expected empty render for nil dish")
	}
}

func TestRenderMenuEmpty(t *testing.T) {
	if out := RenderMenu(nil); !strings.Contains(out, "No open orders") {
		t.Fatalf("unexpected empty menu: %q", out)
	}
}

func TestRenderReport(t *testing.T) {
	r := kitchen.Report{
		Tally: []kitchen.CuisineCount{
			{Cuisine: domain.CuisineItalian, Count: 3},
			{Cuisine: domain.CuisineOther, Count: 0},
		},
		AvgPrepTime:         42,
		ElaboratePercentage: 33.33,
	}

	out := RenderReport(r)
	for _, want := range []string{"ITALIAN", "▪▪▪", "OTHER", "42 min", "33.33%"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderReport missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, barRune) != 3 {
		t.Errorf("expected 3 bar segments, got %d", strings.Count(out, barRune))
	}
}

func TestRenderTickets(t *testing.T) {
	served := time.Date(2024, 3, 1, 15, 4, 0, 0, time.UTC)
	out := RenderTickets([]domain.Ticket{{
		ID:       "0123456789abcdef",
		DishName: "Churros",
		Kind:     domain.KindDessert,
		Cuisine:  domain.CuisineMexican,
		PrepTime: 20,
		ServedAt: served,
	}})

	for _, want := range []string{"3:04PM", "01234567", "Churros", "Mexican", "20 min"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderTickets missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "89abcdef") {
		t.Error("expected ticket ID to be shortened")
	}
	if out := RenderTickets(nil); !strings.Contains(out, "Nothing served") {
		t.Errorf("unexpected empty ledger render: %q", out)
	}
}

func TestRenderBannerCentres(t *testing.T) {
	firstLine := func(s string) string { return strings.SplitN(s, "\n", 2)[0] }

	wide := firstLine(renderBanner(200))
	narrow := firstLine(renderBanner(10))
	if len(wide) <= len(narrow) {
		t.Fatalf("expected wide banner to be padded: wide=%q narrow=%q", wide, narrow)
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.PrintUserInput("report")
	p.PrintUrgent("no such dish")

	got := buf.String()
	if !strings.Contains(got, "> report\n") || !strings.Contains(got, "no such dish\n") {
		t.Fatalf("unexpected printer output: %q", got)
	}
}
