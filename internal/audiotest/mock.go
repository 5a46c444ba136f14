// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/ik5/beatglitch/audio"
)

// NewClip builds a clip whose samples come from waveform.
// frames is the number of frames; waveform receives the frame index and channel.
func NewClip(sampleRate, channels, bitDepth, frames int, waveform func(frame int, channel int) int) *audio.Clip {
	samples := make([]int, frames*channels)
	for f := range frames {
		for ch := range channels {
			samples[f*channels+ch] = waveform(f, ch)
		}
	}

	return &audio.Clip{
		SampleRate: sampleRate,
		Channels:   channels,
		BitDepth:   bitDepth,
		Samples:    samples,
	}
}

// NewRampClip creates a mono clip whose samples equal their index.
// Ramps make it obvious which source position ended up where.
func NewRampClip(sampleRate, frames int) *audio.Clip {
	return NewClip(sampleRate, 1, 16, frames, func(frame int, _ int) int {
		return frame
	})
}

// NewSilentClip creates a clip of zeros.
func NewSilentClip(sampleRate, channels, frames int) *audio.Clip {
	return NewClip(sampleRate, channels, 16, frames, func(int, int) int {
		return 0
	})
}

// NewSineClip creates a 16-bit clip holding a sine wave at half scale.
func NewSineClip(sampleRate, channels, frames int, frequency float64) *audio.Clip {
	return NewClip(sampleRate, channels, 16, frames, func(frame int, _ int) int {
		t := float64(frame) / float64(sampleRate)
		return int(16383 * math.Sin(2*math.Pi*frequency*t))
	})
}

// Ramp returns []int{0, 1, ..., n-1}.
func Ramp(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
