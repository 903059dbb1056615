// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrMalformedRiff indicates the RIFF/WAVE prologue is missing or wrong.
	ErrMalformedRiff = errors.New("malformed RIFF/WAVE header")

	// ErrMissingFmtChunk indicates the "fmt " chunk is not where expected.
	ErrMissingFmtChunk = errors.New("missing fmt chunk")

	// ErrFmtChunkTooShort indicates the "fmt " payload is shorter than the
	// format descriptor.
	ErrFmtChunkTooShort = errors.New("fmt chunk too short")

	// ErrUnsupportedFormat indicates the stream is not mono 8-bit linear PCM
	// at the configured sample rate.
	ErrUnsupportedFormat = errors.New("unsupported format: need mono 8-bit PCM at the configured rate")

	// ErrMissingDataChunk indicates the "data" chunk is not where expected.
	ErrMissingDataChunk = errors.New("missing data chunk")

	// ErrTruncatedData indicates the source ended before all samples were read.
	ErrTruncatedData = errors.New("truncated sample data")

	// ErrInvalidSampleRate indicates a decoder configured without a usable
	// sample rate.
	ErrInvalidSampleRate = errors.New("sample rate out of range")

	// ErrShortBuffer indicates the output buffer cannot hold the sample count.
	ErrShortBuffer = errors.New("sample buffer too short")
)
