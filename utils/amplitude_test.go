// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestMaxAmplitude(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		want     int
	}{
		{name: "8 bit", bitDepth: 8, want: math.MaxInt8},
		{name: "16 bit", bitDepth: 16, want: math.MaxInt16},
		{name: "24 bit", bitDepth: 24, want: 8388607},
		{name: "32 bit", bitDepth: 32, want: math.MaxInt32},
		{name: "unknown falls back to 16 bit", bitDepth: 12, want: math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := MaxAmplitude(tt.bitDepth); got != tt.want {
				t.Errorf("MaxAmplitude(%d) = %d, want %d", tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestCeiling(t *testing.T) {
	t.Parallel()

	if got := Ceiling(4096, 16); got != 4096 {
		t.Errorf("Ceiling(4096, 16) = %d, want 4096", got)
	}
	if got := Ceiling(4096, 8); got != math.MaxInt8 {
		t.Errorf("Ceiling(4096, 8) = %d, want %d", got, math.MaxInt8)
	}
	if got := Ceiling(-5, 16); got != 0 {
		t.Errorf("Ceiling(-5, 16) = %d, want 0", got)
	}
}

func BenchmarkCeiling(b *testing.B) {
	for b.Loop() {
		_ = Ceiling(4096, 24)
	}
}
