// Package pick abstracts the random choice among candidate replies so tests
// can inject a deterministic selector.
package pick

import "math/rand"

// Func selects an index in [0, n). n is always >= 1.
type Func func(n int) int

// Uniform is the default picker: uniform random with no seed guarantee.
func Uniform(n int) int {
	return rand.Intn(n)
}

// First always selects index 0. Useful in tests.
func First(n int) int {
	return 0
}

// One returns one of candidates using p, falling back to Uniform when p is
// nil. Panics on an empty candidate set, which indicates a programming error.
func One(p Func, candidates []string) string {
	if p == nil {
		p = Uniform
	}
	return candidates[p(len(candidates))]
}
