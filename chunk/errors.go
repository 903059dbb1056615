// SPDX-License-Identifier: EPL-2.0

package chunk

import "errors"

var (
	// ErrSourceExhausted indicates the byte source ended before the
	// requested number of bytes was delivered.
	ErrSourceExhausted = errors.New("byte source exhausted")

	// ErrShortDestination indicates the destination buffer cannot hold the
	// requested number of bytes.
	ErrShortDestination = errors.New("destination shorter than read length")
)
