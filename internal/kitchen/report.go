package kitchen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/ottokitchen/internal/domain"
)

// CuisineCount is one line of the cuisine tally.
type CuisineCount struct {
	Cuisine domain.CuisineType
	Count   int
}

// Report summarises the open orders.
type Report struct {
	Tally               []CuisineCount // every cuisine, in domain.Cuisines order
	AvgPrepTime         int
	ElaboratePercentage float64
}

// KitchenReport tallies all seven cuisines and the prep statistics.
func (k *Kitchen) KitchenReport() Report {
	r := Report{
		Tally:               make([]CuisineCount, 0, len(domain.Cuisines)),
		AvgPrepTime:         k.AvgPrepTime(),
		ElaboratePercentage: k.ElaboratePercentage(),
	}
	for _, c := range domain.Cuisines {
		r.Tally = append(r.Tally, CuisineCount{Cuisine: c, Count: k.TallyCuisineTypes(c)})
	}
	return r
}

// String renders the report as plain text.
func (r Report) String() string {
	var b strings.Builder
	for _, c := range r.Tally {
		fmt.Fprintf(&b, "%s: %d\n", c.Cuisine, c.Count)
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "AVERAGE PREP TIME: %d\n", r.AvgPrepTime)
	fmt.Fprintf(&b, "ELABORATE DISHES: %s%%\n", strconv.FormatFloat(r.ElaboratePercentage, 'f', -1, 64))
	return b.String()
}

// DisplayMenu renders every open dish followed by a blank line.
func (k *Kitchen) DisplayMenu() string {
	var b strings.Builder
	for _, d := range k.Items() {
		b.WriteString(d.Display())
		b.WriteByte('\n')
	}
	return b.String()
}
