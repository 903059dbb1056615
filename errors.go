// SPDX-License-Identifier: EPL-2.0

package pcm8wav

import "errors"

var (
	// ErrTooManySamples indicates the header declares more samples than the
	// caller allowed.
	ErrTooManySamples = errors.New("declared sample count exceeds limit")
)
