// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory representation of decoded audio.
//
// # Clip
//
// A Clip holds a whole stream of interleaved integer PCM samples together
// with the format needed to write it back out unchanged:
//
//	type Clip struct {
//	    SampleRate int
//	    Channels   int
//	    BitDepth   int
//	    Samples    []int
//	}
//
// Samples stay at their source bit depth. Nothing in this package rescales
// or normalizes them, so a decode followed by an encode is lossless.
//
// # Codecs
//
// Container formats implement Codec (a Decoder plus an Encoder). The
// registry maps a format key to its codec:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Codec{})
//	codec, ok := registry.Get("wav")
//
// # Interleaving
//
// Multi-channel clips interleave their samples frame by frame
// (L R L R ... for stereo). SamplesPerSecond reports the rate at which the
// interleaved index advances, which is what beat arithmetic over the raw
// sample slice needs.
package audio
