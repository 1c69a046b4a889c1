// Package menu loads dishes from delimited text records.
//
// Each record is a comma-separated line:
//
//	KIND,Name,Ingr1;Ingr2,PrepMinutes,Price,CUISINE,Attr1;Attr2;Attr3
//
// The first line is a header and is ignored. Loading is best-effort: a bad
// record is skipped and reported, and the remaining records still load.
package menu

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/hammamikhairi/ottokitchen/internal/domain"
	"github.com/hammamikhairi/ottokitchen/internal/logger"
)

const (
	minFields     = 7
	minAttributes = 3
)

// RecordError describes a skipped record.
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Batch is the outcome of one load.
type Batch struct {
	Dishes  []domain.Dish
	Skipped []*RecordError
}

// Orderer accepts dishes. *kitchen.Kitchen satisfies it.
type Orderer interface {
	NewOrder(dish domain.Dish) bool
}

// Fill orders every dish in the batch and returns how many were rejected.
func (b *Batch) Fill(o Orderer) int {
	rejected := 0
	for _, d := range b.Dishes {
		if !o.NewOrder(d) {
			rejected++
		}
	}
	return rejected
}

// Loader parses dish records.
type Loader struct {
	log *logger.Logger
}

// NewLoader creates a loader.
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{log: log}
}

// LoadFile opens path and loads it.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening menu: %w", err)
	}
	defer f.Close()

	batch, err := l.Load(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return batch, nil
}

// Load reads every record from r. Only read failures and context
// cancellation are returned as errors.
func (l *Loader) Load(ctx context.Context, r io.Reader) (*Batch, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	batch := &Batch{}
	header := true
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return nil, err
			}
			if !header {
				l.skip(batch, perr.StartLine, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, perr.Err))
			}
			header = false
			continue
		}
		if header {
			header = false
			continue
		}

		line, _ := cr.FieldPos(0)
		dish, err := ParseRecord(fields)
		if err != nil {
			l.skip(batch, line, err)
			continue
		}
		batch.Dishes = append(batch.Dishes, dish)
	}

	l.log.Info("loaded %d dish(es), skipped %d record(s)", len(batch.Dishes), len(batch.Skipped))
	return batch, nil
}

func (l *Loader) skip(b *Batch, line int, err error) {
	rerr := &RecordError{Line: line, Err: err}
	b.Skipped = append(b.Skipped, rerr)
	l.log.Warn("skipping record: %v", rerr)
}

// ParseRecord builds a dish from one record's fields.
func ParseRecord(fields []string) (domain.Dish, error) {
	if len(fields) < minFields {
		return nil, fmt.Errorf("%w: %d fields, want %d", domain.ErrMalformedRecord, len(fields), minFields)
	}

	kind, ok := domain.KindFromString(Tag(fields[0]))
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownKind, fields[0])
	}

	prep, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil || prep < 0 {
		return nil, fmt.Errorf("%w: prep time %q", domain.ErrMalformedRecord, fields[3])
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
	if err != nil || price < 0 {
		return nil, fmt.Errorf("%w: price %q", domain.ErrMalformedRecord, fields[4])
	}

	base := domain.Base{
		Name:        strings.TrimSpace(fields[1]),
		Ingredients: splitList(fields[2]),
		PrepTime:    prep,
		Price:       price,
		Cuisine:     domain.CuisineFromString(Tag(fields[5])),
	}

	attrs := splitList(fields[6])
	if len(attrs) < minAttributes {
		return nil, fmt.Errorf("%w: %d %s attributes, want %d", domain.ErrMalformedRecord, len(attrs), kind, minAttributes)
	}

	switch kind {
	case domain.KindAppetizer:
		spice, err := strconv.Atoi(attrs[1])
		if err != nil || spice < 0 {
			return nil, fmt.Errorf("%w: spiciness %q", domain.ErrMalformedRecord, attrs[1])
		}
		return &domain.Appetizer{
			Base:           base,
			ServingStyle:   domain.ServingStyleFromString(Tag(attrs[0])),
			SpicinessLevel: spice,
			Vegetarian:     parseFlag(attrs[2]),
		}, nil

	case domain.KindMainCourse:
		return &domain.MainCourse{
			Base:          base,
			CookingMethod: domain.CookingMethodFromString(Tag(attrs[0])),
			ProteinType:   attrs[1],
			GlutenFree:    parseFlag(attrs[2]),
		}, nil

	default:
		sweet, err := strconv.Atoi(attrs[1])
		if err != nil || sweet < 0 {
			return nil, fmt.Errorf("%w: sweetness %q", domain.ErrMalformedRecord, attrs[1])
		}
		return &domain.Dessert{
			Base:           base,
			FlavorProfile:  domain.FlavorProfileFromString(Tag(attrs[0])),
			SweetnessLevel: sweet,
			ContainsNuts:   parseFlag(attrs[2]),
		}, nil
	}
}

// Tag normalizes a free-form enum token to its tag form, so "Family Style",
// "familyStyle" and "FAMILY_STYLE" all become "FAMILY_STYLE".
func Tag(s string) string {
	return strcase.ToScreamingSnake(strings.TrimSpace(s))
}

func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func parseFlag(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
