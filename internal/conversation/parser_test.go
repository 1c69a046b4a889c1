package conversation

import (
	"context"
	"errors"
	"testing"

	"github.com/hammamikhairi/ottokitchen/internal/domain"
	"github.com/hammamikhairi/ottokitchen/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input       string
		wantType    domain.IntentType
		wantPayload string
	}{
		// Report / menu
		{"report", domain.IntentReport, ""},
		{"STATS", domain.IntentReport, ""},
		{"menu", domain.IntentMenu, ""},
		{"orders", domain.IntentMenu, ""},

		// Tally
		{"tally italian", domain.IntentTally, "ITALIAN"},
		{"count  Mexican", domain.IntentTally, "MEXICAN"},

		// Serve keeps the name as typed
		{"serve Beef Wellington", domain.IntentServe, "Beef Wellington"},
		{"plate   Tiramisu", domain.IntentServe, "Tiramisu"},

		// Release
		{"release below 30", domain.IntentReleaseBelow, "30"},
		{"release under 5", domain.IntentReleaseBelow, "5"},
		{"release cuisine chinese", domain.IntentReleaseCuisine, "CHINESE"},
		{"release below soon", domain.IntentUnknown, "release below soon"},

		// Adjust
		{"adjust vegan Gluten-Free", domain.IntentAdjust, "vegan gluten-free"},
		{"diet nut-free", domain.IntentAdjust, "nut-free"},

		// History
		{"history", domain.IntentHistory, ""},
		{"tickets", domain.IntentHistory, ""},

		// Help / quit
		{"help", domain.IntentHelp, ""},
		{"?", domain.IntentHelp, ""},
		{"quit", domain.IntentQuit, ""},
		{"q", domain.IntentQuit, ""},

		// Unknown
		{"flambé the cat", domain.IntentUnknown, "flambé the cat"},
		{"serve", domain.IntentUnknown, "serve"},
		{"", domain.IntentUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if intent.Type != tt.wantType {
				t.Errorf("input=%q: got type %s, want %s", tt.input, intent.Type, tt.wantType)
			}
			if intent.Payload != tt.wantPayload {
				t.Errorf("input=%q: got payload %q, want %q", tt.input, intent.Payload, tt.wantPayload)
			}
		})
	}
}

func TestKeywordParserCancelled(t *testing.T) {
	parser := NewKeywordParser(logger.New(logger.LevelOff, nil))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := parser.Parse(ctx, "report"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParseDietaryRequest(t *testing.T) {
	tests := []struct {
		words []string
		want  domain.DietaryRequest
	}{
		{nil, domain.DietaryRequest{}},
		{[]string{"vegetarian"}, domain.DietaryRequest{Vegetarian: true}},
		{[]string{"VEGAN", "gluten_free"}, domain.DietaryRequest{Vegan: true, GlutenFree: true}},
		{[]string{"nut-free", "lowSodium", "low-sugar"}, domain.DietaryRequest{NutFree: true, LowSodium: true, LowSugar: true}},
	}

	for _, tt := range tests {
		got, err := ParseDietaryRequest(tt.words)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tt.words, err)
		}
		if got != tt.want {
			t.Errorf("%v: got %+v, want %+v", tt.words, got, tt.want)
		}
	}

	if _, err := ParseDietaryRequest([]string{"vegan", "keto"}); !errors.Is(err, ErrUnknownDiet) {
		t.Fatalf("expected ErrUnknownDiet, got %v", err)
	}
}
