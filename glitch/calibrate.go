// SPDX-License-Identifier: EPL-2.0

package glitch

// NoiseBurst overwrites span samples of output from start with uniform
// integers in [-ceiling, ceiling]. The burst is truncated at the end of
// output and the ceiling is clamped to [0, MaxNoiseCeiling]. It returns the
// number of samples written.
func NoiseBurst(rng Rand, output []int, start, span, ceiling int) int {
	ceiling = min(max(ceiling, 0), MaxNoiseCeiling)

	end := min(start+span, len(output))
	written := 0

	for i := max(start, 0); i < end; i++ {
		output[i] = rng.IntN(2*ceiling+1) - ceiling
		written++
	}

	return written
}
