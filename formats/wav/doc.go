// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package reads and writes integer PCM WAV files through
// github.com/go-audio/wav. Samples are kept at their source bit depth, so a
// file can be decoded, edited in place and written back in exactly the same
// format.
//
// # Supported Formats
//
// Currently supported:
//   - Integer PCM (format tag 1)
//   - 8, 16, 24 and 32 bits per sample
//   - Mono and stereo
//   - Any sample rate
//
// # Decoding WAV Files
//
// Decode requires an io.ReadSeeker because go-audio walks the RIFF chunks:
//
//	file, _ := os.Open("audio.wav")
//	clip, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// clip.Samples holds interleaved integer samples
//
// # Writing WAV Files
//
// Encode writes the clip with its own rate, channel count and bit depth:
//
//	file, _ := os.Create("output.wav")
//	err := wav.Encode(file, clip)
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: the input is not a valid WAV file (or has no samples)
//   - ErrOnlyIntegerPCM: the fmt chunk is not integer PCM
//   - ErrUnsupportedChannels: more than two channels
//   - ErrUnsupportedBitDepth: a bit depth go-audio cannot round-trip
//
// Example:
//
//	clip, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
