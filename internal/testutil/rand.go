// Package testutil holds helpers shared by tests.
package testutil

import "math/rand/v2"

// SeededRand returns a PCG-backed generator seeded with seed.
//
// Two generators built from the same seed produce the same sequence, so a
// test can draw from one and predict the other.
//
// Thread-safety: the returned *rand.Rand is not safe for concurrent use.
func SeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
