package wrand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionsHas(t *testing.T) {
	var options Options

	require.False(t, options.Has(AllowDuplicates))
	require.False(t, options.Has(IgnoreZeroWeight))

	options = AllowDuplicates

	require.True(t, options.Has(AllowDuplicates))
	require.False(t, options.Has(IgnoreZeroWeight))

	options = AllowDuplicates | IgnoreZeroWeight

	require.True(t, options.Has(AllowDuplicates))
	require.True(t, options.Has(IgnoreZeroWeight))
}
