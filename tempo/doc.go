// SPDX-License-Identifier: EPL-2.0

// Package tempo converts musical time into sample counts.
//
// A tempo in beats per minute fixes the length of a quarter note; every
// other note value is a power-of-two multiple of it. Subdivisions are given
// the way musicians write them, so 4 is a quarter note and 16 a sixteenth.
//
// Lengths in samples are measured on the interleaved sample index: a stereo
// file at 44100 Hz advances 88200 indices per second. SamplesPerSecond does
// that doubling.
//
//	grid, err := tempo.NewGrid(120, 8, tempo.SamplesPerSecond(44100, 2), len(samples))
//	// grid.SamplesPerBeat == 22050, one position per eighth note
//
// Unknown subdivisions and non-positive tempos are configuration errors.
package tempo
