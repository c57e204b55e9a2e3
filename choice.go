// Package random exposes cryptographically sourced, one-shot random selection utility functions; for repeated
// weighted draws over a held collection, see the 'wrand' sub-package.
package random

// Choice returns a random element from the given slice.
func Choice[S ~[]E, E any](s S) (E, error) {
	switch len(s) {
	case 0:
		return *new(E), ErrChoiceIsEmpty
	case 1:
		return s[0], nil
	}

	idx, err := Integer(0, len(s)-1)
	if err != nil {
		return *new(E), err
	}

	return s[idx], nil
}

// Selection returns a slice of 'n' random elements from the given slice, an element may appear more than once.
//
// NOTE: This should not be used for password generation.
func Selection[S ~[]E, E any](s S, n int) (S, error) {
	choices := make(S, 0, n)

	for i := 0; i < n; i++ {
		choice, err := Choice(s)
		if err != nil {
			return nil, err
		}

		choices = append(choices, choice)
	}

	return choices, nil
}
