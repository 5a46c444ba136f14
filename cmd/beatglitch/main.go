// beatglitch cuts beat aligned stutters into a WAV file.
//
//	beatglitch [flags] input.wav bpm every recurse_probability glitch_probability
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ik5/beatglitch"
	"github.com/ik5/beatglitch/glitch"
	"github.com/ik5/beatglitch/internal/config"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(stdout, config.Usage())
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprint(stderr, config.Usage())
		return exitUsage
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	logger.Info("starting",
		"input", cfg.Input,
		"output", cfg.Output,
		"bpm", cfg.BPM,
		"every", cfg.Every,
		"recurse_probability", cfg.RecurseProbability,
		"glitch_probability", cfg.GlitchProbability,
		"seed", seed,
	)

	report, err := beatglitch.GlitchFile(cfg.Input, cfg.Output, beatglitch.Options{
		BPM:                cfg.BPM,
		Every:              cfg.Every,
		RecurseProbability: cfg.RecurseProbability,
		GlitchProbability:  cfg.GlitchProbability,
		DepthFloor:         cfg.DepthFloor,
		NoiseCeiling:       cfg.NoiseCeiling,
		Mode:               cfg.Mode(),
		Rand:               glitch.NewRand(seed),
		Logger:             logger,
	})
	if err != nil {
		logger.Error("glitch failed", "err", err)
		if beatglitch.IsConfigError(err) {
			return exitUsage
		}
		return exitFailure
	}

	logger.Info("done",
		"output", cfg.Output,
		"mode", report.Mode,
		"beats", report.Beats,
		"events", report.Events,
		"skipped", report.Skipped,
		"samples_written", report.SamplesWritten,
	)

	return exitOK
}
