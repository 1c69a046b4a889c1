// Package conversation turns shell input into kitchen intents.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/hammamikhairi/ottokitchen/internal/domain"
	"github.com/hammamikhairi/ottokitchen/internal/logger"
	"github.com/hammamikhairi/ottokitchen/internal/menu"
)

// ErrUnknownDiet is returned for a dietary flag ParseDietaryRequest does
// not recognise.
var ErrUnknownDiet = errors.New("unknown dietary flag")

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches user input to intents using keywords and simple patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
	// payload builds the intent payload from the regex submatches. Nil
	// means the intent carries no payload.
	payload func(match []string) string
}

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(report|stats|summary)$`), domain.IntentReport, nil},
		{regexp.MustCompile(`(?i)^(menu|list|show|orders)$`), domain.IntentMenu, nil},
		{regexp.MustCompile(`(?i)^(?:tally|count)\s+(.+)$`), domain.IntentTally, tagPayload},
		{regexp.MustCompile(`(?i)^(?:serve|send|plate)\s+(.+)$`), domain.IntentServe, rawPayload},
		{regexp.MustCompile(`(?i)^release\s+(?:below|under)\s+(\d+)$`), domain.IntentReleaseBelow, rawPayload},
		{regexp.MustCompile(`(?i)^release\s+cuisine\s+(.+)$`), domain.IntentReleaseCuisine, tagPayload},
		{regexp.MustCompile(`(?i)^(?:adjust|accommodate|diet)\s+(.+)$`), domain.IntentAdjust, flagsPayload},
		{regexp.MustCompile(`(?i)^(history|served|tickets|ledger)$`), domain.IntentHistory, nil},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp, nil},
		{regexp.MustCompile(`(?i)^(quit|exit|q|close)$`), domain.IntentQuit, nil},
	}
	return p
}

// Parse converts user input into an intent. Input that matches nothing is
// returned as IntentUnknown carrying the input as payload.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	trimmed := strings.Join(strings.Fields(input), " ")
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		p.log.Debug("matched intent: %s", rule.intent)
		intent := &domain.Intent{Type: rule.intent}
		if rule.payload != nil {
			intent.Payload = rule.payload(m)
		}
		return intent, nil
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

func rawPayload(m []string) string { return m[1] }

func tagPayload(m []string) string { return menu.Tag(m[1]) }

func flagsPayload(m []string) string { return strings.ToLower(m[1]) }

// ParseDietaryRequest builds a request from flag words such as "vegan" or
// "gluten-free". Words may be written in any case or with underscores.
func ParseDietaryRequest(words []string) (domain.DietaryRequest, error) {
	var req domain.DietaryRequest
	for _, w := range words {
		switch strcase.ToKebab(strings.TrimSpace(w)) {
		case "":
		case "vegetarian":
			req.Vegetarian = true
		case "vegan":
			req.Vegan = true
		case "gluten-free":
			req.GlutenFree = true
		case "nut-free":
			req.NutFree = true
		case "low-sodium":
			req.LowSodium = true
		case "low-sugar":
			req.LowSugar = true
		default:
			return domain.DietaryRequest{}, fmt.Errorf("%w: %q", ErrUnknownDiet, w)
		}
	}
	return req, nil
}
