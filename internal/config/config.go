package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ik5/beatglitch/glitch"
	"github.com/ik5/beatglitch/internal/errkind"
	"github.com/ik5/beatglitch/tempo"
	"github.com/mitchellh/go-homedir"
)

var (
	ErrUsage           = errors.New("expected: input.wav bpm every recurse_probability glitch_probability")
	ErrInvalidArgument = errors.New("invalid argument")
)

// DefaultOutput matches the file name the tool has always written.
const DefaultOutput = "outf.wav"

// Config holds everything a run needs, from flags, positional arguments and
// environment variables.
type Config struct {
	Input  string
	Output string

	BPM                float64
	Every              int // note subdivision between candidate beats (4 = quarter)
	RecurseProbability float64
	GlitchProbability  float64

	DepthFloor   int
	NoiseCeiling int
	Calibrate    bool
	Seed         uint64 // 0 picks a seed from the clock
	LogLevel     slog.Level
}

// Load parses args (without the program name). Environment variables supply
// flag defaults; flags override them.
func Load(args []string) (Config, error) {
	cfg := Config{
		Output:       envStr("BEATGLITCH_OUTPUT", DefaultOutput),
		DepthFloor:   envInt("BEATGLITCH_DEPTH_FLOOR", glitch.DefaultDepthFloor),
		NoiseCeiling: envInt("BEATGLITCH_NOISE_CEILING", glitch.DefaultNoiseCeiling),
		Calibrate:    envBool("BEATGLITCH_CALIBRATE", false),
		Seed:         envUint("BEATGLITCH_SEED", 0),
	}
	logLevel := envStr("BEATGLITCH_LOG_LEVEL", "info")

	fs := flag.NewFlagSet("beatglitch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Output, "o", cfg.Output, "output WAV path")
	fs.IntVar(&cfg.DepthFloor, "depth-floor", cfg.DepthFloor, "segment length in samples below which patterns stop subdividing")
	fs.IntVar(&cfg.NoiseCeiling, "noise-ceiling", cfg.NoiseCeiling, "calibration noise magnitude")
	fs.BoolVar(&cfg.Calibrate, "calibrate", cfg.Calibrate, "mark every beat with noise instead of glitching")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for a time based seed")
	fs.StringVar(&logLevel, "log-level", logLevel, "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return Config{}, errkind.Config(err, "parsing flags")
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, errkind.Config(ErrInvalidArgument, fmt.Sprintf("log level %q", logLevel))
	}

	if err := cfg.positional(fs.Args()); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) positional(args []string) error {
	if len(args) != 5 {
		return errkind.Config(ErrUsage, fmt.Sprintf("got %d arguments", len(args)))
	}

	var err error

	c.Input = strings.TrimSpace(args[0])

	if c.BPM, err = strconv.ParseFloat(strings.TrimSpace(args[1]), 64); err != nil {
		return errkind.Config(ErrInvalidArgument, fmt.Sprintf("bpm %q", args[1]))
	}
	if c.Every, err = strconv.Atoi(strings.TrimSpace(args[2])); err != nil {
		return errkind.Config(ErrInvalidArgument, fmt.Sprintf("every %q", args[2]))
	}
	if c.RecurseProbability, err = strconv.ParseFloat(strings.TrimSpace(args[3]), 64); err != nil {
		return errkind.Config(ErrInvalidArgument, fmt.Sprintf("recurse probability %q", args[3]))
	}
	if c.GlitchProbability, err = strconv.ParseFloat(strings.TrimSpace(args[4]), 64); err != nil {
		return errkind.Config(ErrInvalidArgument, fmt.Sprintf("glitch probability %q", args[4]))
	}

	return nil
}

// Validate checks ranges and expands ~ in paths.
func (c *Config) Validate() error {
	var detail string

	switch {
	case c.Input == "":
		detail = "empty input path"
	case c.Output == "":
		detail = "empty output path"
	case !(c.BPM > 0):
		detail = fmt.Sprintf("bpm %v must be positive", c.BPM)
	case c.Every < 1 || c.Every > tempo.MaxSubdivision:
		detail = fmt.Sprintf("every %d outside 1..%d", c.Every, tempo.MaxSubdivision)
	case !(c.RecurseProbability >= 0 && c.RecurseProbability <= 1):
		detail = fmt.Sprintf("recurse probability %v outside [0, 1]", c.RecurseProbability)
	case !(c.GlitchProbability >= 0 && c.GlitchProbability <= 1):
		detail = fmt.Sprintf("glitch probability %v outside [0, 1]", c.GlitchProbability)
	case c.DepthFloor < 1:
		detail = fmt.Sprintf("depth floor %d must be positive", c.DepthFloor)
	case c.NoiseCeiling < 0 || c.NoiseCeiling > glitch.MaxNoiseCeiling:
		detail = fmt.Sprintf("noise ceiling %d out of range", c.NoiseCeiling)
	}
	if detail != "" {
		return errkind.Config(ErrInvalidArgument, detail)
	}

	var err error
	if c.Input, err = homedir.Expand(c.Input); err != nil {
		return errkind.Config(err, "expanding input path")
	}
	if c.Output, err = homedir.Expand(c.Output); err != nil {
		return errkind.Config(err, "expanding output path")
	}

	return nil
}

// Mode is the sweep mode the configuration selects.
func (c Config) Mode() glitch.Mode {
	if c.Calibrate {
		return glitch.ModeCalibrate
	}
	return glitch.ModeStutter
}

// Usage describes the command line.
func Usage() string {
	return fmt.Sprintf(usage, tempo.MaxSubdivision)
}

const usage = `usage: beatglitch [flags] input.wav bpm every recurse_probability glitch_probability

  every                note between candidate beats (1 whole, 4 quarter, 8 eighth ... %d)
  recurse_probability  chance that a glitch segment splits again, 0..1
  glitch_probability   chance that a candidate beat glitches, 0..1

flags:
  -o path              output WAV (default outf.wav, $BEATGLITCH_OUTPUT)
  -seed n              random seed, 0 for time based ($BEATGLITCH_SEED)
  -depth-floor n       stop splitting at n samples (default 128, $BEATGLITCH_DEPTH_FLOOR)
  -calibrate           noise burst on every beat to check the tempo ($BEATGLITCH_CALIBRATE)
  -noise-ceiling n     calibration noise magnitude (default 8192, $BEATGLITCH_NOISE_CEILING)
  -log-level level     debug, info, warn or error ($BEATGLITCH_LOG_LEVEL)
`

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envUint(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
