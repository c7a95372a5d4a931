// Package shuffle provides a seeded uniform shuffle shared by the
// round generators. Games take an explicit *rand.Rand so tests can
// seed for reproducibility.
package shuffle

import "math/rand"

// Slice permutes s in place using Fisher–Yates.
func Slice[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Copy returns a shuffled copy of s, leaving the input untouched.
func Copy[T any](rng *rand.Rand, s []T) []T {
	out := append([]T(nil), s...)
	Slice(rng, out)
	return out
}
