// SPDX-License-Identifier: EPL-2.0

// Package errkind tags errors with the kind of failure that caused them so
// the command line can tell a bad invocation apart from a broken file.
package errkind

import (
	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

const (
	// Configuration marks parameters that can never produce a run:
	// unknown note subdivisions, non-positive tempo, probabilities outside [0,1].
	Configuration ftag.Kind = "configuration"

	// IO marks unreadable or unwritable audio containers.
	IO ftag.Kind = "io"
)

// Config wraps err as a configuration error with msg as context.
func Config(err error, msg string) error {
	return fault.Wrap(err, fmsg.With(msg), ftag.With(Configuration))
}

// IOf wraps err as an I/O error with msg as context.
func IOf(err error, msg string) error {
	return fault.Wrap(err, fmsg.With(msg), ftag.With(IO))
}

// Of returns the outermost kind err was tagged with, or ftag.None when the
// chain carries no tag at all.
func Of(err error) ftag.Kind {
	kinds := ftag.GetAll(err)
	if len(kinds) == 0 {
		return ftag.None
	}
	return kinds[0]
}

// Is reports whether err carries kind k.
func Is(err error, k ftag.Kind) bool {
	return Of(err) == k
}
