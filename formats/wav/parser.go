// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/pcm8wav/chunk"
)

// Parser validates the RIFF/WAVE header of an 8-bit mono PCM stream.
//
// By default the chunks must appear strictly as RIFF, "fmt ", "data" with
// nothing in between. Setting SkipUnknownChunks lets the parser pass over
// other chunks (LIST, fact, ...) before "fmt " and before "data".
type Parser struct {
	// SampleRate is the only rate accepted, in Hz.
	SampleRate uint32

	SkipUnknownChunks bool

	// Logger receives a debug record per chunk. nil disables logging.
	Logger *slog.Logger
}

// ParseHeader validates the header in src and returns the number of
// samples in the "data" chunk. src is left positioned at the first sample.
func ParseHeader(src io.ByteReader, sampleRate uint32) (uint32, error) {
	return Parser{SampleRate: sampleRate}.ParseHeader(src)
}

// ParseHeader is like ReadHeader but only returns the sample count.
func (p Parser) ParseHeader(src io.ByteReader) (uint32, error) {
	h, err := p.ReadHeader(src)
	if err != nil {
		return 0, err
	}
	return h.Samples, nil
}

// ReadHeader consumes the RIFF prologue, the "fmt " chunk and the "data"
// chunk header from src. Every step fails fast with its own error; the
// sample bytes are left unread.
func (p Parser) ReadHeader(src io.ByteReader) (Header, error) {
	var h Header

	riff, err := chunk.ReadHeader(src)
	if err != nil {
		return Header{}, fmt.Errorf("%w: %w", ErrMalformedRiff, err)
	}
	if riff.ID != chunk.RIFF {
		return Header{}, ErrMalformedRiff
	}
	form, err := chunk.ReadID(src)
	if err != nil {
		return Header{}, fmt.Errorf("%w: %w", ErrMalformedRiff, err)
	}
	if form != chunk.WAVE {
		return Header{}, ErrMalformedRiff
	}
	h.RiffLength = riff.Length
	p.debug("riff", "length", h.RiffLength)

	fh, err := p.next(src, chunk.Fmt, &h)
	if err != nil {
		return Header{}, fmt.Errorf("%w: %w", ErrMissingFmtChunk, err)
	}
	if fh.ID != chunk.Fmt {
		return Header{}, fmt.Errorf("%w: found %q", ErrMissingFmtChunk, fh.ID)
	}
	if fh.Length < FormatSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrFmtChunkTooShort, fh.Length)
	}

	var raw [FormatSize]byte
	if err := chunk.ReadBytes(src, FormatSize, 0, raw[:]); err != nil {
		return Header{}, fmt.Errorf("%w: %w", ErrFmtChunkTooShort, err)
	}
	h.Format = decodeFormat(&raw)
	h.FmtExtra = fh.Length - FormatSize
	if err := chunk.Skip(src, h.FmtExtra); err != nil {
		return Header{}, fmt.Errorf("%w: %w", ErrFmtChunkTooShort, err)
	}
	p.debug("fmt",
		"format", h.Format.AudioFormat,
		"channels", h.Format.Channels,
		"rate", h.Format.SampleRate,
		"bits", h.Format.BitsPerSample,
		"extra", h.FmtExtra)

	if !h.Format.Supported(p.SampleRate) {
		return Header{}, ErrUnsupportedFormat
	}

	dh, err := p.next(src, chunk.Data, &h)
	if err != nil {
		return Header{}, fmt.Errorf("%w: %w", ErrMissingDataChunk, err)
	}
	if dh.ID != chunk.Data {
		return Header{}, fmt.Errorf("%w: found %q", ErrMissingDataChunk, dh.ID)
	}
	h.Samples = dh.Length
	p.debug("data", "samples", h.Samples)

	return h, nil
}

// next reads the next chunk header. A lenient parser skips chunks that are
// neither want nor one of the core chunks.
func (p Parser) next(src io.ByteReader, want chunk.ID, h *Header) (chunk.Header, error) {
	for {
		ch, err := chunk.ReadHeader(src)
		if err != nil {
			return chunk.Header{}, err
		}
		if ch.ID == want || !p.SkipUnknownChunks || ch.ID == chunk.Fmt || ch.ID == chunk.Data {
			return ch, nil
		}

		p.debug("skip", "id", ch.ID.String(), "length", ch.Length)
		if err := chunk.SkipPayload(src, ch); err != nil {
			return chunk.Header{}, fmt.Errorf("skipping %q: %w", ch.ID, err)
		}
		h.Skipped = append(h.Skipped, ch.ID)
	}
}

func (p Parser) debug(msg string, args ...any) {
	if p.Logger != nil {
		p.Logger.Debug("wav: "+msg, args...)
	}
}
