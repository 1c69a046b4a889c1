// Package bag provides a fixed-capacity, unordered multiset backed by a
// single array.
//
// Removal swaps the last element into the vacated slot, so element order
// is not stable across removals. Callers must not rely on positions.
package bag

// DefaultCapacity is used when a bag is created with a non-positive capacity.
const DefaultCapacity = 20

// EqualFunc reports whether two elements are equal.
type EqualFunc[T any] func(a, b T) bool

// Bag is a fixed-capacity unordered collection. Elements occupy indices
// [0, Size()) contiguously. The zero value is not usable; use New or NewFunc.
type Bag[T any] struct {
	items []T
	size  int
	equal EqualFunc[T]
}

// New creates a bag for comparable element types using ==.
func New[T comparable](capacity int) *Bag[T] {
	return NewFunc(capacity, func(a, b T) bool { return a == b })
}

// NewFunc creates a bag that compares elements with equal.
func NewFunc[T any](capacity int, equal EqualFunc[T]) *Bag[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Bag[T]{
		items: make([]T, capacity),
		equal: equal,
	}
}

// Size returns the number of elements currently held.
func (b *Bag[T]) Size() int { return b.size }

// Capacity returns the maximum number of elements.
func (b *Bag[T]) Capacity() int { return len(b.items) }

// IsEmpty reports whether the bag holds no elements.
func (b *Bag[T]) IsEmpty() bool { return b.size == 0 }

// IsFull reports whether the bag is at capacity.
func (b *Bag[T]) IsFull() bool { return b.size == len(b.items) }

// Add appends item. It returns false without mutating the bag when full.
func (b *Bag[T]) Add(item T) bool {
	if b.IsFull() {
		return false
	}
	b.items[b.size] = item
	b.size++
	return true
}

// Remove deletes the first element equal to item. The last element is
// moved into the freed slot. It returns false if nothing matched.
func (b *Bag[T]) Remove(item T) bool {
	idx := b.IndexOf(item)
	if idx < 0 {
		return false
	}
	last := b.size - 1
	b.items[idx] = b.items[last]
	var zero T
	b.items[last] = zero
	b.size--
	return true
}

// IndexOf returns the index of the first element equal to item, or -1.
func (b *Bag[T]) IndexOf(item T) int {
	for i := 0; i < b.size; i++ {
		if b.equal(b.items[i], item) {
			return i
		}
	}
	return -1
}

// Contains reports whether an element equal to item is present.
func (b *Bag[T]) Contains(item T) bool {
	return b.IndexOf(item) >= 0
}

// Count returns the number of elements equal to item.
func (b *Bag[T]) Count(item T) int {
	n := 0
	for i := 0; i < b.size; i++ {
		if b.equal(b.items[i], item) {
			n++
		}
	}
	return n
}

// At returns the element at index i. It panics if i is outside [0, Size()).
func (b *Bag[T]) At(i int) T {
	if i < 0 || i >= b.size {
		panic("bag: index out of range")
	}
	return b.items[i]
}

// Items returns a copy of the current elements.
func (b *Bag[T]) Items() []T {
	out := make([]T, b.size)
	copy(out, b.items[:b.size])
	return out
}

// Clear removes every element.
func (b *Bag[T]) Clear() {
	clear(b.items)
	b.size = 0
}
