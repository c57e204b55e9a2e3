// Package wrand exposes a generic weighted random selector implemented using binary search over a cumulative
// weight index.
package wrand

import (
	"math"
	"math/rand"
	"time"

	"golang.org/x/exp/slices"
)

// Selector performs weighted random selection over an ordered collection of items, where items with a higher
// weight are more likely to be selected.
//
// Selection operates on an integer cumulative weight index which is rebuilt lazily, only when a selection takes
// place after the collection has changed.
//
// NOTE: A Selector is not safe for concurrent use and needs to be wrapped in a lock to be shared safely between
// threads.
type Selector[T comparable] struct {
	items   []Item[T]
	options Options

	decimalPlaces int
	factor        float64

	cumulative []int
	total      int
	state      buildState

	rng *rand.Rand
}

// NewSelector creates an empty selector with the given options, retaining the given number of decimal places of
// weight precision.
//
// NOTE: Non-positive values for 'decimalPlaces' fall back to 'DefaultDecimalPlaces'.
func NewSelector[T comparable](options Options, decimalPlaces int) *Selector[T] {
	if decimalPlaces <= 0 {
		decimalPlaces = DefaultDecimalPlaces
	}

	return &Selector[T]{
		options:       options,
		decimalPlaces: decimalPlaces,
		factor:        math.Pow10(decimalPlaces),
		state:         buildStateDirty,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSelectorFromItems creates a selector pre-populated with the given items, surfacing the first item which
// fails to be added.
func NewSelectorFromItems[T comparable](items []Item[T], options Options, decimalPlaces int) (*Selector[T], error) {
	selector := NewSelector[T](options, decimalPlaces)

	if err := selector.AddItems(items...); err != nil {
		return nil, err
	}

	return selector, nil
}

// Add adds a value with the given weight to the selector.
func (s *Selector[T]) Add(value T, weight float64) error {
	return s.AddItem(Item[T]{Value: value, Weight: weight})
}

// AddItem adds the given item to the selector.
//
// Items whose weight is not a positive number are rejected with an 'InvalidWeightError' unless the selector was
// created with 'IgnoreZeroWeight', in which case they're silently discarded.
func (s *Selector[T]) AddItem(item Item[T]) error {
	if item.Weight <= 0 || math.IsNaN(item.Weight) {
		if s.options.Has(IgnoreZeroWeight) {
			return nil
		}

		return InvalidWeightError{weight: item.Weight}
	}

	s.items = append(s.items, item)
	s.state = buildStateDirty

	return nil
}

// AddItems adds the given items to the selector in order, stopping at the first item which fails to be added.
//
// NOTE: Items added before the failing item remain added.
func (s *Selector[T]) AddItems(items ...Item[T]) error {
	for _, item := range items {
		if err := s.AddItem(item); err != nil {
			return err
		}
	}

	return nil
}

// Remove removes the first item matching both the value and the weight of the given item, returning a boolean
// indicating whether one was found; the cumulative weight index is invalidated either way.
func (s *Selector[T]) Remove(item Item[T]) bool {
	idx := slices.Index(s.items, item)
	if idx != -1 {
		s.items = slices.Delete(s.items, idx, idx+1)
	}

	s.state = buildStateDirty

	return idx != -1
}

// Clear removes all the items from the selector.
func (s *Selector[T]) Clear() {
	s.items = nil
	s.state = buildStateDirty
}

// Len returns the number of items held by the selector.
func (s *Selector[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the items held by the selector, in insertion order.
func (s *Selector[T]) Items() []Item[T] {
	return slices.Clone(s.items)
}

// Select performs a single weighted draw, returning the value of the selected item.
func (s *Selector[T]) Select() (T, error) {
	switch len(s.items) {
	case 0:
		return *new(T), ErrEmptyCollection
	case 1:
		return s.items[0].Value, nil
	}

	s.build()

	return s.items[drawIndex(s.rng, s.cumulative, s.total, len(s.items))].Value, nil
}

// SelectMany performs 'count' weighted draws, returning the values of the selected items.
//
// Fails with an 'InvalidCountError' when the count is not positive, 'ErrEmptyCollection' when the selector
// holds no items, and an 'InsufficientItemsError' when duplicates are disallowed and the count exceeds the
// number of items held.
func (s *Selector[T]) SelectMany(count int) ([]T, error) {
	if count <= 0 {
		return nil, InvalidCountError{count: count}
	}

	if len(s.items) == 0 {
		return nil, ErrEmptyCollection
	}

	if !s.options.Has(AllowDuplicates) && count > len(s.items) {
		return nil, InsufficientItemsError{count: count, available: len(s.items)}
	}

	s.build()

	if s.options.Has(AllowDuplicates) {
		return s.selectWithReplacement(count), nil
	}

	return s.selectWithoutReplacement(count), nil
}

// selectWithReplacement performs 'count' independent draws against the unchanged item sequence.
func (s *Selector[T]) selectWithReplacement(count int) []T {
	values := make([]T, 0, count)

	for i := 0; i < count; i++ {
		values = append(values, s.items[drawIndex(s.rng, s.cumulative, s.total, len(s.items))].Value)
	}

	return values
}

// selectWithoutReplacement performs 'count' draws against working copies of the item sequence and the
// cumulative weight index, removing each selected item so it can't be drawn again; the selector itself is left
// untouched.
//
// Entries removed from the working index aren't re-summed, the remaining entries keep their original values;
// they stay sorted, and shrinking the draw range by each removed weight keeps them valid search keys. Searches
// remain O(log n) at the cost of an O(n) removal per draw.
func (s *Selector[T]) selectWithoutReplacement(count int) []T {
	var (
		items      = slices.Clone(s.items)
		cumulative = slices.Clone(s.cumulative)
		total      = s.total
		values     = make([]T, 0, count)
	)

	for i := 0; i < count && len(items) > 0; i++ {
		idx := drawIndex(s.rng, cumulative, total, len(items))

		values = append(values, items[idx].Value)

		total -= scale(items[idx].Weight, s.factor)
		items = slices.Delete(items, idx, idx+1)
		cumulative = slices.Delete(cumulative, idx, idx+1)
	}

	return values
}

// build recomputes the cumulative weight index if the item sequence has changed since it was last computed.
func (s *Selector[T]) build() {
	if s.state == buildStateClean {
		return
	}

	s.cumulative, s.total = CumulativeWeights(s.items, s.decimalPlaces)
	s.state = buildStateClean
}

// drawIndex returns the index selected by a single weighted draw, the smallest index whose cumulative weight is
// at least a uniformly random integer in [1, total].
//
// A total of zero means every weight was truncated to nothing leaving no valid draw range, the index is instead
// picked uniformly from the 'n' items present.
func drawIndex(rng *rand.Rand, cumulative []int, total, n int) int {
	if total == 0 {
		return rng.Intn(n)
	}

	return SearchCumulativeWeights(cumulative, 1+rng.Intn(total))
}
