// SPDX-License-Identifier: EPL-2.0

package glitch

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/ik5/beatglitch/internal/errkind"
)

const (
	// DefaultNoiseSpan is the length of a calibration burst in samples.
	DefaultNoiseSpan = 512
	// DefaultNoiseCeiling bounds the magnitude of calibration noise.
	DefaultNoiseCeiling = 8192
	// MaxNoiseCeiling keeps the width of the noise range within an int.
	MaxNoiseCeiling = (math.MaxInt - 1) / 2
)

// Mode selects what happens on each beat for a whole run.
type Mode int

const (
	// ModeStutter flips a coin per beat and stutters the beats that win.
	ModeStutter Mode = iota
	// ModeCalibrate marks every beat with a noise burst so the grid can be
	// checked by ear against the track's tempo.
	ModeCalibrate
)

func (m Mode) String() string {
	switch m {
	case ModeStutter:
		return "stutter"
	case ModeCalibrate:
		return "calibrate"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Config holds the scalar parameters of a sweep, already resolved from tempo
// and file format.
type Config struct {
	// SamplesPerBeat is the spacing of the beat grid in interleaved samples.
	SamplesPerBeat float64
	// Beats is how many grid positions are visited, starting at zero.
	Beats int
	// Catalog lists the candidate event budgets in samples.
	Catalog []int

	RecurseProbability float64
	GlitchProbability  float64

	// DepthFloor defaults to DefaultDepthFloor when zero.
	DepthFloor int

	Mode Mode

	// NoiseSpan and NoiseCeiling default to DefaultNoiseSpan and
	// DefaultNoiseCeiling when zero.
	NoiseSpan    int
	NoiseCeiling int
}

func (c Config) withDefaults() Config {
	if c.DepthFloor == 0 {
		c.DepthFloor = DefaultDepthFloor
	}
	if c.NoiseSpan == 0 {
		c.NoiseSpan = DefaultNoiseSpan
	}
	if c.NoiseCeiling == 0 {
		c.NoiseCeiling = DefaultNoiseCeiling
	}
	return c
}

func validProbability(p float64) bool {
	return p >= 0 && p <= 1
}

// Validate reports the first parameter that can never produce a run, after
// zero values have been replaced by their defaults. Errors are tagged as
// configuration errors.
func (c Config) Validate() error {
	c = c.withDefaults()

	switch {
	case math.IsNaN(c.SamplesPerBeat) || math.IsInf(c.SamplesPerBeat, 0) || c.SamplesPerBeat <= 0:
		return errkind.Config(ErrInvalidBeatSpacing, fmt.Sprintf("samples per beat %v", c.SamplesPerBeat))
	case c.Beats < 0:
		return errkind.Config(ErrInvalidBeatCount, fmt.Sprintf("beats %d", c.Beats))
	case !validProbability(c.RecurseProbability):
		return errkind.Config(ErrInvalidProbability, fmt.Sprintf("recurse probability %v", c.RecurseProbability))
	case !validProbability(c.GlitchProbability):
		return errkind.Config(ErrInvalidProbability, fmt.Sprintf("glitch probability %v", c.GlitchProbability))
	case c.DepthFloor < 1:
		return errkind.Config(ErrInvalidDepthFloor, fmt.Sprintf("depth floor %d", c.DepthFloor))
	case c.NoiseSpan < 0 || c.NoiseCeiling < 0 || c.NoiseCeiling > MaxNoiseCeiling:
		return errkind.Config(ErrInvalidNoise, fmt.Sprintf("noise span %d, ceiling %d", c.NoiseSpan, c.NoiseCeiling))
	case c.Mode != ModeStutter && c.Mode != ModeCalibrate:
		return errkind.Config(ErrInvalidMode, c.Mode.String())
	case c.Mode == ModeStutter && len(c.Catalog) == 0:
		return errkind.Config(ErrEmptyCatalog, "stutter mode")
	}

	if c.Mode == ModeStutter {
		for _, d := range c.Catalog {
			if d < 1 {
				return errkind.Config(ErrInvalidDuration, fmt.Sprintf("duration %d", d))
			}
		}
	}

	return nil
}

// Event is a single glitch: Budget samples from Start replaced according to
// Pattern. Written is filled in once the event has been applied.
type Event struct {
	Beat    int
	Start   int
	Budget  int
	Pattern Pattern
	Written int
}

// Report summarizes a sweep.
type Report struct {
	Mode           Mode
	Beats          int
	Events         int
	Skipped        int
	SamplesWritten int
}

// Option configures a Sweeper.
type Option func(*Sweeper)

// WithLogger sets the logger used for per-event diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sweeper) {
		if l != nil {
			s.log = l
		}
	}
}

// WithObserver registers fn to be called after every applied event or burst.
func WithObserver(fn func(Event)) Option {
	return func(s *Sweeper) {
		s.observe = fn
	}
}

// Sweeper walks a beat grid and glitches the beats it picks.
type Sweeper struct {
	cfg     Config
	rng     Rand
	log     *slog.Logger
	observe func(Event)
}

// NewSweeper validates cfg (after filling defaults) and returns a Sweeper
// drawing from rng.
func NewSweeper(cfg Config, rng Rand, opts ...Option) (*Sweeper, error) {
	if rng == nil {
		return nil, errkind.Config(ErrNilRand, "creating sweeper")
	}

	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Sweeper{
		cfg: cfg,
		rng: rng,
		log: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Config returns the effective configuration, defaults included.
func (s *Sweeper) Config() Config { return s.cfg }

// Start is the sample index of beat on the grid.
func (s *Sweeper) Start(beat int) int {
	return int(math.Floor(float64(beat) * s.cfg.SamplesPerBeat))
}

// Run applies the sweep to output, reading fragments from source. Beats are
// processed strictly in order, each fully applied before the next is drawn.
// source is never modified; output is expected to start as a copy of it.
func (s *Sweeper) Run(source, output []int) Report {
	report := Report{Mode: s.cfg.Mode, Beats: s.cfg.Beats}

	for beat := range s.cfg.Beats {
		start := s.Start(beat)

		var ev Event
		if s.cfg.Mode == ModeCalibrate {
			ev = Event{Beat: beat, Start: start, Budget: s.cfg.NoiseSpan}
			ev.Written = NoiseBurst(s.rng, output, start, s.cfg.NoiseSpan, s.cfg.NoiseCeiling)
		} else {
			if s.rng.Float64() >= s.cfg.GlitchProbability {
				report.Skipped++
				continue
			}

			budget := s.cfg.Catalog[s.rng.IntN(len(s.cfg.Catalog))]
			ev = Event{
				Beat:    beat,
				Start:   start,
				Budget:  budget,
				Pattern: Generate(s.rng, s.cfg.RecurseProbability, budget, 1, s.cfg.DepthFloor),
			}
			ev.Written = Apply(source, output, start, ev.Pattern, budget)
		}

		report.Events++
		report.SamplesWritten += ev.Written

		s.log.Debug("glitch event",
			"mode", s.cfg.Mode,
			"beat", ev.Beat,
			"start", ev.Start,
			"budget", ev.Budget,
			"segments", len(ev.Pattern),
			"pattern", ev.Pattern,
			"written", ev.Written,
		)

		if s.observe != nil {
			s.observe(ev)
		}
	}

	return report
}
