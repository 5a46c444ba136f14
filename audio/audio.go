// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"

	"github.com/ik5/beatglitch/tempo"
)

// Clip is a fully decoded integer PCM stream held in memory.
//
// Samples are interleaved and kept at their source bit depth so that a clip
// can be written back in exactly the format it was read in.
type Clip struct {
	// SampleRate of the PCM stream in Hz.
	SampleRate int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
	// BitDepth of each sample (8, 16, 24 or 32).
	BitDepth int
	// Samples holds interleaved integer samples.
	Samples []int
}

// Frames returns the number of whole frames in the clip.
func (c *Clip) Frames() int {
	if c.Channels <= 0 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

// SamplesPerSecond is the interleaved sample rate: SampleRate samples for
// every channel, so a stereo clip advances twice as fast as its frame rate.
func (c *Clip) SamplesPerSecond() int {
	return tempo.SamplesPerSecond(c.SampleRate, c.Channels)
}

// Clone returns a deep copy of c.
func (c *Clip) Clone() *Clip {
	out := *c
	out.Samples = make([]int, len(c.Samples))
	copy(out.Samples, c.Samples)

	return &out
}

// Decoder reads a whole container into a Clip.
type Decoder interface {
	Decode(r io.ReadSeeker) (*Clip, error)
}

// Encoder writes a Clip using the clip's own format.
type Encoder interface {
	Encode(w io.WriteSeeker, c *Clip) error
}

// Codec reads and writes one container format.
type Codec interface {
	Decoder
	Encoder
}

// Registry for codecs by format key (e.g., "wav").
type Registry struct {
	codecs map[string]Codec

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, c Codec) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = c
}

func (r *Registry) Get(format string) (Codec, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	c, ok := r.codecs[format]
	return c, ok
}

// Formats lists the registered format keys in no particular order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		out = append(out, k)
	}
	return out
}
