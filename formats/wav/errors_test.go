package wav

import (
	"errors"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNotWavFile", ErrNotWavFile, "not a WAV file"},
		{"ErrOnlyIntegerPCM", ErrOnlyIntegerPCM, "only integer PCM supported"},
		{"ErrUnsupportedChannels", ErrUnsupportedChannels, "only mono and stereo supported"},
		{"ErrUnsupportedBitDepth", ErrUnsupportedBitDepth, "unsupported bit depth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err == nil {
				t.Fatalf("%s is nil", tt.name)
			}
			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}
		})
	}
}

func TestErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	all := []error{ErrNotWavFile, ErrOnlyIntegerPCM, ErrUnsupportedChannels, ErrUnsupportedBitDepth}

	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}
