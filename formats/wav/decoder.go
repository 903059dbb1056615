// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/ik5/pcm8wav/audio"
	"github.com/ik5/pcm8wav/utils"
)

const defaultBufSize = 4096

type source struct {
	r         io.ByteReader
	header    Header
	remaining uint32
	buf       []int8
}

func (s *source) SampleRate() int { return int(s.header.Format.SampleRate) }
func (s *source) Channels() int   { return 1 }
func (s *source) BufSize() int    { return cap(s.buf) }
func (s *source) Close() error    { return nil }

// Header returns the parsed container header.
func (s *source) Header() Header { return s.header }

// ReadSamples converts the next samples to float32 in [-1, 1).
// It returns io.EOF together with the last samples of the data chunk.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.remaining == 0 {
		return 0, io.EOF
	}

	n := s.remaining
	if uint64(len(dst)) < uint64(n) {
		n = uint32(len(dst))
	}

	if uint32(cap(s.buf)) < n {
		s.buf = make([]int8, n)
	}
	buf := s.buf[:n]

	if err := ReadSamples(s.r, n, buf); err != nil {
		s.remaining = 0
		return 0, err
	}
	s.remaining -= n

	for i, v := range buf {
		dst[i] = utils.Int8ToFloat32(v)
	}

	if s.remaining == 0 {
		return int(n), io.EOF
	}
	return int(n), nil
}

// Decoder builds an audio.Source from a mono 8-bit PCM WAV stream.
// SampleRate must be set; streams at any other rate are rejected.
type Decoder struct {
	SampleRate        int
	SkipUnknownChunks bool
	Logger            *slog.Logger
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	if d.SampleRate <= 0 || int64(d.SampleRate) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, d.SampleRate)
	}

	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	p := Parser{
		SampleRate:        uint32(d.SampleRate),
		SkipUnknownChunks: d.SkipUnknownChunks,
		Logger:            d.Logger,
	}
	h, err := p.ReadHeader(br)
	if err != nil {
		return nil, err
	}

	return &source{
		r:         br,
		header:    h,
		remaining: h.Samples,
		buf:       make([]int8, min(int(h.Samples), defaultBufSize)),
	}, nil
}
