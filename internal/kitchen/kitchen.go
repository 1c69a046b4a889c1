// Package kitchen implements the active order collection: a bag of dishes
// with prep-time bookkeeping, cuisine tallies, and batch release.
package kitchen

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hammamikhairi/ottokitchen/internal/bag"
	"github.com/hammamikhairi/ottokitchen/internal/domain"
	"github.com/hammamikhairi/ottokitchen/internal/logger"
)

// Option configures the kitchen.
type Option func(*Kitchen)

// WithCapacity sets the maximum number of open orders.
func WithCapacity(n int) Option {
	return func(k *Kitchen) {
		k.capacity = n
	}
}

// WithServedLog records a ticket for every served dish.
func WithServedLog(l domain.ServedLog) Option {
	return func(k *Kitchen) {
		k.served = l
	}
}

// Kitchen is a bag of dishes. Add and Remove are overridden so that the
// embedded bag can never drift from the prep-time and elaborate counters.
// A Kitchen is not safe for concurrent use.
type Kitchen struct {
	*bag.Bag[domain.Dish]

	totalPrepTime  int
	countElaborate int

	capacity int
	served   domain.ServedLog
	log      *logger.Logger
	now      func() time.Time
}

// New creates an empty kitchen.
func New(log *logger.Logger, opts ...Option) *Kitchen {
	k := &Kitchen{
		capacity: bag.DefaultCapacity,
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(k)
	}
	k.Bag = bag.NewFunc(k.capacity, domain.Equal)
	return k
}

// NewOrder takes ownership of dish. It returns false, leaving the kitchen
// unchanged, when the kitchen is full or dish is nil.
func (k *Kitchen) NewOrder(dish domain.Dish) bool {
	if dish == nil {
		return false
	}
	if !k.Bag.Add(dish) {
		k.log.Debug("kitchen full (%d/%d), rejected %q", k.Size(), k.Capacity(), dish.Core().Name)
		return false
	}
	core := dish.Core()
	k.totalPrepTime += core.PrepTime
	if core.Elaborate() {
		k.countElaborate++
	}
	k.log.Debug("new order %q (%s, %d min)", core.Name, dish.Kind(), core.PrepTime)
	return true
}

// ServeDish removes the first dish equal to dish and releases it.
// It returns false with no side effects when no dish matches.
func (k *Kitchen) ServeDish(dish domain.Dish) bool {
	if dish == nil || k.IsEmpty() {
		return false
	}
	idx := k.IndexOf(dish)
	if idx < 0 {
		return false
	}

	held := k.At(idx)
	core := held.Core()
	k.totalPrepTime -= core.PrepTime
	if core.Elaborate() {
		k.countElaborate--
	}
	k.Bag.Remove(held)
	k.record(held)

	k.log.Debug("served %q (%d open)", core.Name, k.Size())
	return true
}

// Add is NewOrder under the bag's name.
func (k *Kitchen) Add(dish domain.Dish) bool { return k.NewOrder(dish) }

// Remove is ServeDish under the bag's name.
func (k *Kitchen) Remove(dish domain.Dish) bool { return k.ServeDish(dish) }

// Clear releases every dish without recording tickets.
func (k *Kitchen) Clear() {
	k.Bag.Clear()
	k.totalPrepTime = 0
	k.countElaborate = 0
}

func (k *Kitchen) record(dish domain.Dish) {
	if k.served == nil {
		return
	}
	core := dish.Core()
	k.served.Record(domain.Ticket{
		ID:       uuid.NewString(),
		DishName: core.Name,
		Kind:     dish.Kind(),
		Cuisine:  core.Cuisine,
		PrepTime: core.PrepTime,
		ServedAt: k.now(),
	})
}

// FindByName returns the first open dish with the given name, ignoring
// case.
func (k *Kitchen) FindByName(name string) (domain.Dish, bool) {
	for i := 0; i < k.Size(); i++ {
		if d := k.At(i); strings.EqualFold(d.Core().Name, name) {
			return d, true
		}
	}
	return nil, false
}

// PrepTimeSum returns the total prep time of all open dishes.
func (k *Kitchen) PrepTimeSum() int {
	if k.IsEmpty() {
		return 0
	}
	return k.totalPrepTime
}

// AvgPrepTime returns the mean prep time rounded to the nearest minute,
// or 0 when the kitchen is empty.
func (k *Kitchen) AvgPrepTime() int {
	if k.IsEmpty() {
		return 0
	}
	sum := 0
	for i := 0; i < k.Size(); i++ {
		sum += k.At(i).Core().PrepTime
	}
	return int(math.Round(float64(sum) / float64(k.Size())))
}

// ElaborateDishCount returns how many open dishes are elaborate.
func (k *Kitchen) ElaborateDishCount() int {
	if k.IsEmpty() {
		return 0
	}
	return k.countElaborate
}

// ElaboratePercentage returns the share of elaborate dishes as a
// percentage rounded to two decimals.
func (k *Kitchen) ElaboratePercentage() float64 {
	if k.IsEmpty() || k.countElaborate == 0 {
		return 0
	}
	return math.Round(float64(k.countElaborate)/float64(k.Size())*10000) / 100
}

// TallyCuisineTypes counts open dishes of the given cuisine.
func (k *Kitchen) TallyCuisineTypes(cuisine domain.CuisineType) int {
	n := 0
	for i := 0; i < k.Size(); i++ {
		if k.At(i).Core().Cuisine == cuisine {
			n++
		}
	}
	return n
}

// ReleaseDishesBelowPrepTime serves every dish that takes less than
// threshold minutes and returns how many were served.
func (k *Kitchen) ReleaseDishesBelowPrepTime(threshold int) int {
	n := k.releaseWhere(func(d domain.Dish) bool {
		return d.Core().PrepTime < threshold
	})
	k.log.Info("released %d dish(es) under %d min", n, threshold)
	return n
}

// ReleaseDishesOfCuisineType serves every dish of the given cuisine and
// returns how many were served.
func (k *Kitchen) ReleaseDishesOfCuisineType(cuisine domain.CuisineType) int {
	n := k.releaseWhere(func(d domain.Dish) bool {
		return d.Core().Cuisine == cuisine
	})
	k.log.Info("released %d %s dish(es)", n, cuisine)
	return n
}

// releaseWhere snapshots the matching dishes before serving any of them.
// Serving swaps the last element into the freed slot, so scanning the
// live bag by index while removing would skip elements.
func (k *Kitchen) releaseWhere(match func(domain.Dish) bool) int {
	var picked []domain.Dish
	for _, d := range k.Items() {
		if match(d) {
			picked = append(picked, d)
		}
	}
	n := 0
	for _, d := range picked {
		if k.ServeDish(d) {
			n++
		}
	}
	return n
}

// DietaryAdjustment applies req to every open dish. Ingredient lists can
// shrink, so the elaborate counter is rebuilt afterwards.
func (k *Kitchen) DietaryAdjustment(req domain.DietaryRequest) {
	elaborate := 0
	for i := 0; i < k.Size(); i++ {
		d := k.At(i)
		d.DietaryAccommodations(req)
		if d.Core().Elaborate() {
			elaborate++
		}
	}
	if elaborate != k.countElaborate {
		k.log.Debug("elaborate count %d -> %d after dietary adjustment", k.countElaborate, elaborate)
	}
	k.countElaborate = elaborate
	k.log.Info("dietary adjustment applied to %d dish(es)", k.Size())
}
