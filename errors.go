// SPDX-License-Identifier: EPL-2.0

package beatglitch

import "errors"

// ErrSameFile is returned when the output path names the input file.
var ErrSameFile = errors.New("output path is the input file")
