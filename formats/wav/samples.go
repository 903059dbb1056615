// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/pcm8wav/chunk"
)

// ReadSamples reads exactly count sample bytes from src into out, removing
// the unsigned bias: [0..255] becomes [-128..127].
//
// src must be positioned at the first sample, as left by ParseHeader.
// Reading stops with ErrTruncatedData as soon as src runs dry; the content
// of out is then unspecified.
func ReadSamples(src io.ByteReader, count uint32, out []int8) error {
	if uint64(len(out)) < uint64(count) {
		return fmt.Errorf("%w: need %d, have %d", ErrShortBuffer, count, len(out))
	}

	if err := chunk.ReadBytes(src, count, math.MinInt8, out); err != nil {
		return fmt.Errorf("%w: %w", ErrTruncatedData, err)
	}

	return nil
}
