// SPDX-License-Identifier: EPL-2.0

// Package beatglitch applies a tempo-synced stutter effect to WAV files.
//
// At every candidate beat of a track the effect may replace a short span
// with a recursively subdivided, repeated copy of the audio that starts on
// that beat. The result is the rhythmic retrigger sound of a beat repeat
// pedal, locked to the tempo you give it.
//
// # Quick Start
//
// The simplest way to glitch a file is GlitchFile:
//
//	report, err := beatglitch.GlitchFile("loop.wav", "loop-glitched.wav", beatglitch.Options{
//	    BPM:                120,
//	    Every:              8,    // a candidate beat on every eighth note
//	    RecurseProbability: 0.5,  // how eagerly segments split
//	    GlitchProbability:  0.25, // how many beats glitch
//	})
//
// The output has the same sample rate, channel count, bit depth and length
// as the input.
//
// # Parameters
//
// Every picks the note value between candidate beats: 1 is a whole note, 4 a
// quarter, 16 a sixteenth, down to 1024. Each glitch lasts a half, quarter,
// eighth or sixteenth note, chosen at random. RecurseProbability controls
// how often a glitch splits into two half-length segments played twice as
// often, and GlitchProbability how many beats glitch at all.
//
// # Calibration
//
// Setting Mode to glitch.ModeCalibrate writes a short noise burst on every
// candidate beat instead. Listening to the result is a quick way to check
// that BPM matches the track.
//
// # Reproducibility
//
// Pass a seeded generator to get the same glitches every time:
//
//	opts.Rand = glitch.NewRand(42)
//
// # Packages
//
//   - glitch: pattern generation, pattern application and the beat sweep
//   - tempo: note lengths, beat grids and glitch durations in samples
//   - audio: the in-memory Clip and codec registry
//   - formats/wav: integer PCM WAV decoding and encoding
//
// # Errors
//
// Errors are tagged with a kind; IsConfigError and IsIOError read it back.
// Configuration errors (unknown note value, bad tempo, probabilities outside
// [0, 1]) are reported before any audio is read. I/O errors cover files that
// cannot be opened, decoded, encoded or written.
package beatglitch
