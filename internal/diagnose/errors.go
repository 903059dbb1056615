// SPDX-License-Identifier: EPL-2.0

package diagnose

import "errors"

var (
	// ErrNotRiff indicates the file is not a RIFF/WAVE container at all.
	ErrNotRiff = errors.New("not a RIFF/WAVE file")
)
