package wrand

import (
	"errors"
	"fmt"
)

// ErrEmptyCollection is returned if the user attempts to select from a selector which holds no items.
var ErrEmptyCollection = errors.New("can't select from an empty collection")

// InvalidWeightError is returned when adding an item whose weight is not a positive number to a selector
// created without 'IgnoreZeroWeight'.
type InvalidWeightError struct {
	weight float64
}

func (e InvalidWeightError) Error() string {
	return fmt.Sprintf("invalid weight %v, weights must be greater than zero", e.weight)
}

// InvalidCountError is returned when performing a multi-select for a non-positive number of items.
type InvalidCountError struct {
	count int
}

func (e InvalidCountError) Error() string {
	return fmt.Sprintf("invalid count %d, count must be greater than zero", e.count)
}

// InsufficientItemsError is returned when performing a multi-select which disallows duplicates for more items
// than the selector holds.
type InsufficientItemsError struct {
	count     int
	available int
}

func (e InsufficientItemsError) Error() string {
	return fmt.Sprintf("can't select %d items without duplicates, only %d available", e.count, e.available)
}
