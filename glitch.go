// SPDX-License-Identifier: EPL-2.0

package beatglitch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ik5/beatglitch/audio"
	"github.com/ik5/beatglitch/formats/wav"
	"github.com/ik5/beatglitch/glitch"
	"github.com/ik5/beatglitch/internal/errkind"
	"github.com/ik5/beatglitch/tempo"
	"github.com/ik5/beatglitch/utils"
)

// Options are the musical parameters of a run.
type Options struct {
	// BPM is the tempo of the track in quarter notes per minute.
	BPM float64
	// Every is the note value between candidate beats (4 = quarter, 8 = eighth).
	Every int

	RecurseProbability float64
	GlitchProbability  float64

	// DepthFloor defaults to glitch.DefaultDepthFloor when zero.
	DepthFloor int
	// NoiseCeiling defaults to glitch.DefaultNoiseCeiling when zero and is
	// always limited to what the file's bit depth can hold.
	NoiseCeiling int
	Mode         glitch.Mode

	// Rand defaults to a generator seeded from the clock.
	Rand glitch.Rand
	// Logger defaults to discarding everything.
	Logger *slog.Logger
}

// Codecs returns the registry of containers the tool can read and write,
// keyed by file extension without the dot.
func Codecs() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Codec{})
	reg.Register("wave", wav.Codec{})
	return reg
}

// GlitchWAV reads a WAV file from r, glitches it and writes the result to w
// in the same format.
func GlitchWAV(r io.ReadSeeker, w io.WriteSeeker, opts Options) (glitch.Report, error) {
	return Glitch(wav.Codec{}, r, w, opts)
}

// Glitch decodes r with codec, runs a sweep over a copy of the samples and
// encodes the copy to w.
//
// Configuration problems are reported before anything is read. Errors carry
// an errkind tag: errkind.Configuration for parameters, errkind.IO for the
// container.
func Glitch(codec audio.Codec, r io.ReadSeeker, w io.WriteSeeker, opts Options) (glitch.Report, error) {
	logger := opts.logger()

	if err := opts.validate(); err != nil {
		return glitch.Report{}, err
	}

	clip, err := codec.Decode(r)
	if err != nil {
		return glitch.Report{}, errkind.IOf(err, "decoding input")
	}

	out, report, err := glitchClip(clip, opts, logger)
	if err != nil {
		return glitch.Report{}, err
	}

	if err := codec.Encode(w, out); err != nil {
		return glitch.Report{}, errkind.IOf(err, "encoding output")
	}

	return report, nil
}

func glitchClip(clip *audio.Clip, opts Options, logger *slog.Logger) (*audio.Clip, glitch.Report, error) {
	sps := clip.SamplesPerSecond()

	grid, err := tempo.NewGrid(opts.BPM, opts.Every, sps, len(clip.Samples))
	if err != nil {
		return nil, glitch.Report{}, err
	}

	catalog, err := tempo.Catalog(opts.BPM, sps)
	if err != nil {
		return nil, glitch.Report{}, err
	}

	ceiling := opts.NoiseCeiling
	if ceiling == 0 {
		ceiling = glitch.DefaultNoiseCeiling
	}

	rng := opts.Rand
	if rng == nil {
		rng = glitch.NewRand(uint64(time.Now().UnixNano()))
	}

	sweeper, err := glitch.NewSweeper(glitch.Config{
		SamplesPerBeat:     grid.SamplesPerBeat,
		Beats:              grid.Beats,
		Catalog:            catalog,
		RecurseProbability: opts.RecurseProbability,
		GlitchProbability:  opts.GlitchProbability,
		DepthFloor:         opts.DepthFloor,
		Mode:               opts.Mode,
		NoiseCeiling:       max(utils.Ceiling(ceiling, clip.BitDepth), 1),
	}, rng, glitch.WithLogger(logger))
	if err != nil {
		return nil, glitch.Report{}, err
	}

	logger.Info("sweeping",
		"mode", opts.Mode,
		"sample_rate", clip.SampleRate,
		"channels", clip.Channels,
		"bit_depth", clip.BitDepth,
		"frames", clip.Frames(),
		"samples", len(clip.Samples),
		"samples_per_beat", grid.SamplesPerBeat,
		"beats", grid.Beats,
		"catalog", catalog,
	)

	out := clip.Clone()
	report := sweeper.Run(clip.Samples, out.Samples)

	logger.Info("sweep done",
		"events", report.Events,
		"skipped", report.Skipped,
		"samples_written", report.SamplesWritten,
	)

	return out, report, nil
}

// GlitchFile glitches the file at inPath into outPath, choosing the codec
// from the input's extension.
//
// The result is written to a temporary file next to outPath and renamed into
// place only on success, so a failed run leaves an existing outPath as it
// was. outPath may not name the input file.
func GlitchFile(inPath, outPath string, opts Options) (glitch.Report, error) {
	if err := opts.validate(); err != nil {
		return glitch.Report{}, err
	}

	codecs := Codecs()
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(inPath), "."))

	codec, ok := codecs.Get(ext)
	if !ok {
		supported := codecs.Formats()
		slices.Sort(supported)
		return glitch.Report{}, errkind.Config(audio.ErrUnsupportedFormat,
			fmt.Sprintf("input extension %q, supported: %s", ext, strings.Join(supported, ", ")))
	}

	in, err := os.Open(inPath)
	if err != nil {
		return glitch.Report{}, errkind.IOf(err, "opening input")
	}
	defer in.Close()

	if err := checkDistinct(in, outPath); err != nil {
		return glitch.Report{}, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), "."+filepath.Base(outPath)+".*.tmp")
	if err != nil {
		return glitch.Report{}, errkind.IOf(err, "creating output")
	}

	report, err := Glitch(codec, in, tmp, opts)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = errkind.IOf(closeErr, "closing output")
	}
	if err == nil {
		if chmodErr := os.Chmod(tmp.Name(), 0o644); chmodErr != nil {
			err = errkind.IOf(chmodErr, "setting output permissions")
		}
	}
	if err == nil {
		if renameErr := os.Rename(tmp.Name(), outPath); renameErr != nil {
			err = errkind.IOf(renameErr, "renaming output")
		}
	}

	if err != nil {
		if rmErr := os.Remove(tmp.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			opts.logger().Warn("could not remove partial output", "path", tmp.Name(), "err", rmErr)
		}
		return glitch.Report{}, err
	}

	return report, nil
}

// checkDistinct rejects an outPath that resolves to the already opened input.
func checkDistinct(in *os.File, outPath string) error {
	outInfo, err := os.Stat(outPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errkind.IOf(err, "checking output")
	}

	inInfo, err := in.Stat()
	if err != nil {
		return errkind.IOf(err, "checking input")
	}

	if os.SameFile(inInfo, outInfo) {
		return errkind.Config(ErrSameFile, outPath)
	}

	return nil
}

// validate checks everything that does not depend on the decoded audio.
func (o Options) validate() error {
	if _, err := tempo.NoteSeconds(o.BPM, o.Every); err != nil {
		return err
	}

	// the grid and catalog are placeholders until the clip is known
	return glitch.Config{
		SamplesPerBeat:     1,
		Catalog:            []int{1},
		RecurseProbability: o.RecurseProbability,
		GlitchProbability:  o.GlitchProbability,
		DepthFloor:         o.DepthFloor,
		Mode:               o.Mode,
		NoiseCeiling:       o.NoiseCeiling,
	}.Validate()
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// IsConfigError reports whether err comes from parameters that can never
// produce a run.
func IsConfigError(err error) bool {
	return errkind.Is(err, errkind.Configuration)
}

// IsIOError reports whether err comes from reading or writing audio.
func IsIOError(err error) bool {
	return errkind.Is(err, errkind.IO)
}
