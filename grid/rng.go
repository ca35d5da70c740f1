// Package grid - RNG utilities for neighbor shuffling.
//
// Goals:
//   - Determinism: same seed ⇒ identical neighbor orders across runs.
//   - Encapsulation: one RNG per Grid; no hidden global source.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A Grid and its RNG belong to one goroutine.
package grid

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a using r.
// If r==nil, a deterministic default stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace[T any](a []T, r *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	if r == nil {
		r = rngFromSeed(0)
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Shuffle permutes n items in place through swap, drawing from the grid's
// RNG. Used by carvers that need their own randomized orders.
//
// Complexity: O(n).
func (g *Grid) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, g.rng.Intn(i+1))
	}
}
