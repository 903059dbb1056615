// SPDX-License-Identifier: EPL-2.0

package pcm8wav

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/pcm8wav/formats/wav"
)

// ReadMono8 runs a complete parse-then-stream session over r and returns
// the bias corrected samples.
//
// The sample buffer is allocated only after the header has been validated
// and only when the declared count does not exceed maxSamples. A maxSamples
// of 0 accepts any count the header declares.
//
// Example:
//
//	f, _ := os.Open("note.wav")
//	samples, err := pcm8wav.ReadMono8(f, 9615, 1<<20)
func ReadMono8(r io.Reader, sampleRate, maxSamples uint32) ([]int8, error) {
	return Session{SampleRate: sampleRate, MaxSamples: maxSamples}.Read(r)
}

// Session holds the settings for a parse-then-stream run.
type Session struct {
	SampleRate uint32
	// MaxSamples caps the buffer allocated from the header; 0 means no cap.
	MaxSamples        uint32
	SkipUnknownChunks bool
	Logger            *slog.Logger
}

// ReadHeader parses the header from br using the session settings.
func (s Session) ReadHeader(br io.ByteReader) (wav.Header, error) {
	p := wav.Parser{
		SampleRate:        s.SampleRate,
		SkipUnknownChunks: s.SkipUnknownChunks,
		Logger:            s.Logger,
	}

	h, err := p.ReadHeader(br)
	if err != nil {
		return wav.Header{}, err
	}

	if s.MaxSamples > 0 && h.Samples > s.MaxSamples {
		return wav.Header{}, fmt.Errorf("%w: %d > %d", ErrTooManySamples, h.Samples, s.MaxSamples)
	}

	return h, nil
}

// Read parses r and streams every declared sample.
func (s Session) Read(r io.Reader) ([]int8, error) {
	_, samples, err := s.ReadAll(r)
	return samples, err
}

// ReadAll is like Read and also returns the parsed header.
func (s Session) ReadAll(r io.Reader) (wav.Header, []int8, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	h, err := s.ReadHeader(br)
	if err != nil {
		return wav.Header{}, nil, err
	}

	samples := make([]int8, h.Samples)
	if err := wav.ReadSamples(br, h.Samples, samples); err != nil {
		return h, nil, err
	}

	return h, samples, nil
}
