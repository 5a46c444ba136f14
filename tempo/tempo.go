// SPDX-License-Identifier: EPL-2.0

package tempo

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/ik5/beatglitch/internal/errkind"
)

// Note values, indexed by log2 of the subdivision of a whole note.
const (
	Whole = iota
	Half
	Quarter
	Eighth
	Sixteenth
	ThirtySecond
	SixtyFourth
	OneTwentyEighth
	TwoFiftySixth
	FiveTwelfth
	TenTwentyFourth

	noteCount
)

// MaxSubdivision is the finest note the table knows about.
const MaxSubdivision = 1 << (noteCount - 1)

// Notes returns the length in seconds of every note value at bpm, from a
// whole note down to a 1024th. A beat is a quarter note.
func Notes(bpm float64) [noteCount]float64 {
	var out [noteCount]float64

	whole := 4 * 60 / bpm
	for i := range out {
		out[i] = whole / float64(uint(1)<<i)
	}

	return out
}

func checkBPM(bpm float64) error {
	if math.IsNaN(bpm) || math.IsInf(bpm, 0) || bpm <= 0 {
		return errkind.Config(ErrInvalidTempo, fmt.Sprintf("bpm %v", bpm))
	}
	return nil
}

// NoteIndex maps a subdivision (1 = whole, 4 = quarter, 16 = sixteenth) to
// its slot in the note table. Subdivisions that are not powers of two round
// down to the next coarser note.
func NoteIndex(subdivision int) (int, error) {
	if subdivision < 1 || subdivision > MaxSubdivision {
		return 0, errkind.Config(ErrNoteOutOfRange, fmt.Sprintf("note 1/%d", subdivision))
	}

	return bits.Len(uint(subdivision)) - 1, nil
}

// NoteSeconds returns the length of a 1/subdivision note at bpm.
func NoteSeconds(bpm float64, subdivision int) (float64, error) {
	if err := checkBPM(bpm); err != nil {
		return 0, err
	}

	idx, err := NoteIndex(subdivision)
	if err != nil {
		return 0, err
	}

	return Notes(bpm)[idx], nil
}

// SamplesPerSecond is the rate at which an interleaved sample index
// advances: the frame rate times the channel count.
func SamplesPerSecond(sampleRate, channels int) int {
	return sampleRate * max(channels, 1)
}

// Grid is the set of candidate glitch positions in a buffer.
type Grid struct {
	// SamplesPerBeat is the spacing between positions in interleaved samples.
	SamplesPerBeat float64
	// Beats is how many positions fit in the buffer.
	Beats int
}

// NewGrid places a position on every 1/subdivision note of a buffer holding
// totalSamples interleaved samples.
func NewGrid(bpm float64, subdivision, samplesPerSecond, totalSamples int) (Grid, error) {
	seconds, err := NoteSeconds(bpm, subdivision)
	if err != nil {
		return Grid{}, err
	}

	if samplesPerSecond <= 0 {
		return Grid{}, errkind.Config(ErrInvalidSampleRate, fmt.Sprintf("%d samples per second", samplesPerSecond))
	}

	spacing := seconds * float64(samplesPerSecond)

	return Grid{
		SamplesPerBeat: spacing,
		Beats:          int(float64(totalSamples) / spacing),
	}, nil
}

// Catalog returns the candidate glitch lengths in samples: a half, quarter,
// eighth and sixteenth note at bpm.
func Catalog(bpm float64, samplesPerSecond int) ([]int, error) {
	if err := checkBPM(bpm); err != nil {
		return nil, err
	}

	notes := Notes(bpm)
	rate := float64(samplesPerSecond)

	return []int{
		int(notes[Half] * rate),
		int(notes[Quarter] * rate),
		int(notes[Eighth] * rate),
		int(notes[Sixteenth] * rate),
	}, nil
}
