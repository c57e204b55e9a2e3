package wrand

// DefaultDecimalPlaces is the number of decimal places of weight precision used when a selector is created with
// a non-positive value.
const DefaultDecimalPlaces = 2

// Options is a type for bitflags altering the behavior of a selector.
type Options uint8

const (
	// AllowDuplicates permits the same item to be selected more than once by a single multi-select.
	AllowDuplicates Options = 1 << iota

	// IgnoreZeroWeight silently discards items with a non-positive weight instead of rejecting them.
	IgnoreZeroWeight
)

// Has returns a boolean indicating whether the given flag is set.
func (o Options) Has(flag Options) bool {
	return o&flag != 0
}

// buildState indicates whether the cumulative weight index reflects the current item sequence.
type buildState uint8

const (
	// buildStateDirty indicates the item sequence has changed, the index must be recomputed before the next
	// selection.
	buildStateDirty buildState = iota

	// buildStateClean indicates the index exactly reflects the current item sequence.
	buildStateClean
)
