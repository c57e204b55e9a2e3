package wrand

import (
	"math"
	"sort"
)

// CumulativeWeights derives the integer cumulative weight index for the given items, retaining the given number
// of decimal places of weight precision.
//
// The returned slice holds one entry per item where entry 'i' is the sum of the scaled weights of the items up
// to, and including 'i' making it monotonically non-decreasing; the returned total is its final entry. Each
// weight is multiplied by '10^decimalPlaces' then truncated, any further precision is silently lost.
//
// NOTE: Non-positive values for 'decimalPlaces' fall back to 'DefaultDecimalPlaces'.
func CumulativeWeights[T comparable](items []Item[T], decimalPlaces int) ([]int, int) {
	if decimalPlaces <= 0 {
		decimalPlaces = DefaultDecimalPlaces
	}

	var (
		factor     = math.Pow10(decimalPlaces)
		cumulative = make([]int, 0, len(items))
		total      int
	)

	for _, item := range items {
		total += scale(item.Weight, factor)
		cumulative = append(cumulative, total)
	}

	return cumulative, total
}

// SearchCumulativeWeights returns the index a draw of 'r' resolves to, the smallest index whose cumulative
// weight is at least 'r'; where no entry equals 'r' exactly, this is the index 'r' would be inserted at to keep
// the index sorted.
func SearchCumulativeWeights(cumulative []int, r int) int {
	return sort.Search(len(cumulative), func(i int) bool { return cumulative[i] >= r })
}

// scale converts the given weight into its integer representation, truncating any precision beyond that
// retained by the scale factor.
func scale(weight, factor float64) int {
	return int(weight * factor)
}
