// SPDX-License-Identifier: EPL-2.0

package tempo

import (
	"math"
	"testing"

	"github.com/ik5/beatglitch/internal/errkind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotes_At120BPM(t *testing.T) {
	t.Parallel()

	notes := Notes(120)

	assert.InDelta(t, 2.0, notes[Whole], 1e-12)
	assert.InDelta(t, 1.0, notes[Half], 1e-12)
	assert.InDelta(t, 0.5, notes[Quarter], 1e-12)
	assert.InDelta(t, 0.25, notes[Eighth], 1e-12)
	assert.InDelta(t, 0.125, notes[Sixteenth], 1e-12)
	assert.InDelta(t, 2.0/1024, notes[TenTwentyFourth], 1e-12)

	for i := 1; i < len(notes); i++ {
		assert.InDelta(t, notes[i-1]/2, notes[i], 1e-12, "note %d", i)
	}
}

func TestNoteIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		subdivision int
		want        int
	}{
		{1, Whole},
		{2, Half},
		{4, Quarter},
		{8, Eighth},
		{16, Sixteenth},
		{32, ThirtySecond},
		{64, SixtyFourth},
		{1024, TenTwentyFourth},
		{3, Half},
		{12, Eighth},
	}

	for _, tt := range tests {
		got, err := NoteIndex(tt.subdivision)
		require.NoError(t, err, "subdivision %d", tt.subdivision)
		assert.Equal(t, tt.want, got, "subdivision %d", tt.subdivision)
	}
}

func TestNoteIndex_OutOfRange(t *testing.T) {
	t.Parallel()

	for _, sub := range []int{0, -4, MaxSubdivision + 1, 2048, MaxSubdivision * 2} {
		_, err := NoteIndex(sub)
		assert.ErrorIs(t, err, ErrNoteOutOfRange, "subdivision %d", sub)
		assert.True(t, errkind.Is(err, errkind.Configuration), "subdivision %d", sub)
	}
}

func TestNoteIndex_ErrorMessage(t *testing.T) {
	t.Parallel()

	_, err := NoteIndex(4096)

	assert.EqualError(t, err, "note 1/4096: note subdivision outside the supported note table")
}

func TestNoteSeconds(t *testing.T) {
	t.Parallel()

	got, err := NoteSeconds(60, 4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	got, err = NoteSeconds(150, 16)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, got, 1e-12)
}

func TestNoteSeconds_InvalidTempo(t *testing.T) {
	t.Parallel()

	for _, bpm := range []float64{0, -120, math.NaN(), math.Inf(1)} {
		_, err := NoteSeconds(bpm, 4)
		assert.ErrorIs(t, err, ErrInvalidTempo, "bpm %v", bpm)
		assert.True(t, errkind.Is(err, errkind.Configuration))
	}
}

func TestSamplesPerSecond(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 44100, SamplesPerSecond(44100, 1))
	assert.Equal(t, 88200, SamplesPerSecond(44100, 2))
	assert.Equal(t, 8000, SamplesPerSecond(8000, 0))
}

func TestNewGrid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		bpm         float64
		subdivision int
		rate        int
		total       int
		wantSpacing float64
		wantBeats   int
	}{
		{"quarter mono", 120, 4, 44100, 44100 * 10, 22050, 20},
		{"eighth stereo", 120, 8, 88200, 88200 * 10, 22050, 40},
		{"partial beat dropped", 120, 4, 44100, 22050*3 + 100, 22050, 3},
		{"shorter than a beat", 60, 1, 8000, 100, 32000, 0},
		{"fractional spacing", 100, 16, 44100, 44100, 6615, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			grid, err := NewGrid(tt.bpm, tt.subdivision, tt.rate, tt.total)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantSpacing, grid.SamplesPerBeat, 1e-6)
			assert.Equal(t, tt.wantBeats, grid.Beats)
		})
	}
}

func TestNewGrid_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewGrid(120, 4096, 44100, 1000)
	assert.ErrorIs(t, err, ErrNoteOutOfRange)

	_, err = NewGrid(0, 4, 44100, 1000)
	assert.ErrorIs(t, err, ErrInvalidTempo)

	_, err = NewGrid(120, 4, 0, 1000)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)
	assert.True(t, errkind.Is(err, errkind.Configuration))
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	got, err := Catalog(120, 88200)
	require.NoError(t, err)

	assert.Equal(t, []int{88200, 44100, 22050, 11025}, got)
}

func TestCatalog_Truncates(t *testing.T) {
	t.Parallel()

	got, err := Catalog(7, 1)
	require.NoError(t, err)

	// half note at 7 BPM is 17.14s
	assert.Equal(t, []int{17, 8, 4, 2}, got)
}

func TestCatalog_InvalidTempo(t *testing.T) {
	t.Parallel()

	_, err := Catalog(-1, 44100)
	assert.ErrorIs(t, err, ErrInvalidTempo)
}
