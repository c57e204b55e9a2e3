package random

import (
	"github.com/couchbase/tools-common/random/wrand"
)

// WeightedChoice returns the value of a random item from the given slice, where items with a higher weight are
// more likely to be selected.
//
// The draw operates on the same cumulative weight index as a 'wrand.Selector' but is sourced from
// 'crypto/rand', making it safe for concurrent use; weight precision beyond 'wrand.DefaultDecimalPlaces'
// decimal places is not retained.
//
// NOTE: Unlike a 'wrand.Selector' the given weights aren't validated, they must not be negative.
func WeightedChoice[T comparable](items []wrand.Item[T]) (T, error) {
	switch len(items) {
	case 0:
		return *new(T), ErrChoiceIsEmpty
	case 1:
		return items[0].Value, nil
	}

	cumulative, total := wrand.CumulativeWeights(items, wrand.DefaultDecimalPlaces)

	// A total of zero means every weight was truncated to nothing, pick uniformly instead
	if total == 0 {
		idx, err := Integer(0, len(items)-1)
		if err != nil {
			return *new(T), err
		}

		return items[idx].Value, nil
	}

	r, err := Integer(1, total)
	if err != nil {
		return *new(T), err
	}

	return items[wrand.SearchCumulativeWeights(cumulative, r)].Value, nil
}
