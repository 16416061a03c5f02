package Go_Utils

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// RandomArray of n values drawn uniformly from [0, bound) using r.
// Values may repeat. bound must fit in an int64. Returns nil if n<=0 or bound<=0.
func RandomArray[T constraints.Integer](r *rand.Rand, n int, bound T) []T {
	if n <= 0 || bound <= 0 {
		return nil
	}
	a := make([]T, n)
	for i := range a {
		a[i] = T(r.Int63n(int64(bound)))
	}
	return a
}

// RandomArrayAbove is RandomArray shifted by lo, drawing from [lo, lo+span).
// Used to push values past the current maximum of a tree.
func RandomArrayAbove[T constraints.Integer](r *rand.Rand, n int, lo, span T) []T {
	a := RandomArray(r, n, span)
	for i := range a {
		a[i] += lo
	}
	return a
}
