// SPDX-License-Identifier: EPL-2.0

package glitch

import "math/rand/v2"

// Rand is the single source of randomness threaded through a run: subdivision
// coin flips, per-beat coin flips, catalog picks and calibration noise all
// draw from it. *rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewRand returns a seeded PCG generator. The same seed always produces the
// same glitches.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
