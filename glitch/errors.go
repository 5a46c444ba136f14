// SPDX-License-Identifier: EPL-2.0

package glitch

import "errors"

var (
	ErrInvalidProbability = errors.New("probability must be within [0, 1]")
	ErrInvalidBeatSpacing = errors.New("samples per beat must be positive")
	ErrInvalidBeatCount   = errors.New("beat count must not be negative")
	ErrEmptyCatalog       = errors.New("glitch duration catalog is empty")
	ErrInvalidDuration    = errors.New("glitch durations must be at least one sample")
	ErrInvalidDepthFloor  = errors.New("depth floor must be positive")
	ErrInvalidNoise       = errors.New("noise span must not be negative and noise ceiling must be within [0, MaxNoiseCeiling]")
	ErrInvalidMode        = errors.New("unknown sweep mode")
	ErrNilRand            = errors.New("random source is nil")
)
