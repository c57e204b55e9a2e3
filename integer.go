package random

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Integer returns a uniformly random integer in [mn..mx].
func Integer[T constraints.Integer](mn, mx T) (T, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(mx-mn)+1))
	if err != nil {
		return *new(T), err
	}

	return T(n.Int64() + int64(mn)), nil
}
