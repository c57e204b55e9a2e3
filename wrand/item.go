package wrand

// Item pairs a value with a weight.
type Item[T comparable] struct {
	// Value that may be selected.
	Value T

	// Weight of the item, a higher weight means it's more likely to be selected.
	//
	// NOTE: The sum of the scaled weights held by a selector must be less than 'math.MaxInt'.
	Weight float64
}
