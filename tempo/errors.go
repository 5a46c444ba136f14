// SPDX-License-Identifier: EPL-2.0

package tempo

import "errors"

var (
	ErrInvalidTempo      = errors.New("tempo must be a positive number of beats per minute")
	ErrNoteOutOfRange    = errors.New("note subdivision outside the supported note table")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
