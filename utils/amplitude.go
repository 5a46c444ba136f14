// SPDX-License-Identifier: EPL-2.0

package utils

// MaxAmplitude returns the largest positive sample value representable at
// bitDepth. Unknown depths fall back to 16-bit.
func MaxAmplitude(bitDepth int) int {
	switch bitDepth {
	case 8:
		return 1<<7 - 1
	case 24:
		return 1<<23 - 1
	case 32:
		return 1<<31 - 1
	default:
		return 1<<15 - 1
	}
}

// Ceiling returns the smaller of ceiling and the bit depth's headroom, never
// less than zero.
func Ceiling(ceiling, bitDepth int) int {
	if ceiling < 0 {
		return 0
	}
	return min(ceiling, MaxAmplitude(bitDepth))
}
