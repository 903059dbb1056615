// SPDX-License-Identifier: EPL-2.0

// Package diagnose explains why a file was rejected by the strict parser.
//
// The strict parser stops at the first fault. Describe reads the file a
// second time with the general purpose go-audio readers, which accept any
// chunk layout, and lists what is actually there.
package diagnose

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-audio/riff"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/pcm8wav/chunk"
)

// ChunkInfo is one top level chunk found in the file.
type ChunkInfo struct {
	ID   chunk.ID
	Size uint32
}

// Report describes the layout and format of a RIFF/WAVE file.
type Report struct {
	Chunks []ChunkInfo

	AudioFormat uint16
	Channels    uint16
	SampleRate  uint32
	BitDepth    uint16

	// DataBytes is the declared "data" chunk size, -1 when there is none.
	DataBytes int64

	// FormatErr is set when the format chunk could not be decoded.
	FormatErr error
}

// Describe lists the chunks of r and decodes its format chunk.
// r is rewound before returning.
func Describe(r io.ReadSeeker) (*Report, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind: %w", err)
	}

	p := riff.New(r)
	if err := p.ParseHeaders(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotRiff, err)
	}
	if chunk.ID(p.Format) != chunk.WAVE {
		return nil, fmt.Errorf("%w: form type %q", ErrNotRiff, chunk.ID(p.Format))
	}

	rep := &Report{DataBytes: -1}
	for {
		// IDnSize keeps the declared length; NextChunk would round it up.
		id, size, err := p.IDnSize()
		if err != nil {
			break
		}

		rep.Chunks = append(rep.Chunks, ChunkInfo{ID: chunk.ID(id), Size: size})
		if chunk.ID(id) == chunk.Data && rep.DataBytes < 0 {
			rep.DataBytes = int64(size)
		}

		// Seek rather than drain so a lying data size costs nothing.
		h := chunk.Header{ID: chunk.ID(id), Length: size}
		if _, err := r.Seek(int64(h.Padded()), io.SeekCurrent); err != nil {
			break
		}
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind: %w", err)
	}

	dec := gowav.NewDecoder(r)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		rep.FormatErr = err
	} else {
		rep.AudioFormat = dec.WavAudioFormat
		rep.Channels = dec.NumChans
		rep.SampleRate = dec.SampleRate
		rep.BitDepth = dec.BitDepth
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind: %w", err)
	}

	return rep, nil
}

// Duration is the playing time of the data chunk.
func (r *Report) Duration() time.Duration {
	frame := int64(r.Channels) * int64((r.BitDepth+7)/8)
	if r.DataBytes <= 0 || r.SampleRate == 0 || frame == 0 {
		return 0
	}
	frames := r.DataBytes / frame
	return time.Duration(frames) * time.Second / time.Duration(r.SampleRate)
}

// Problems lists every reason the file does not match mono 8-bit PCM at
// sampleRate with strictly adjacent "fmt " and "data" chunks.
func (r *Report) Problems(sampleRate uint32) []string {
	var out []string

	switch {
	case !r.has(chunk.Fmt):
		out = append(out, "no fmt chunk")
	case r.FormatErr != nil:
		out = append(out, fmt.Sprintf("format chunk unreadable: %v", r.FormatErr))
	default:
		if r.AudioFormat != 1 {
			out = append(out, fmt.Sprintf("audio format %d is not linear PCM (1)", r.AudioFormat))
		}
		if r.Channels != 1 {
			out = append(out, fmt.Sprintf("%d channels, need mono", r.Channels))
		}
		if r.BitDepth != 8 {
			out = append(out, fmt.Sprintf("%d bits per sample, need 8", r.BitDepth))
		}
		if r.SampleRate != sampleRate {
			out = append(out, fmt.Sprintf("sample rate %d Hz, need %d Hz", r.SampleRate, sampleRate))
		}
	}

	if r.DataBytes < 0 {
		out = append(out, "no data chunk")
	}

	for i, c := range r.Chunks {
		if !c.ID.Valid() {
			out = append(out, fmt.Sprintf("chunk %d has a binary id % x", i, c.ID[:]))
		}
	}

	if !r.strictOrder() {
		out = append(out, fmt.Sprintf("chunk order %s; strict parsing needs \"fmt \" then \"data\" first", r.order()))
	}

	return out
}

// Unknown returns the chunks a lenient parser would skip before "data".
func (r *Report) Unknown() []chunk.ID {
	var ids []chunk.ID
	for _, c := range r.Chunks {
		if c.ID == chunk.Data {
			break
		}
		if c.ID != chunk.Fmt {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func (r *Report) has(id chunk.ID) bool {
	for _, c := range r.Chunks {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (r *Report) strictOrder() bool {
	return len(r.Chunks) >= 2 && r.Chunks[0].ID == chunk.Fmt && r.Chunks[1].ID == chunk.Data
}

func (r *Report) order() string {
	ids := make([]string, len(r.Chunks))
	for i, c := range r.Chunks {
		ids[i] = fmt.Sprintf("%q", c.ID.String())
	}
	return "[" + strings.Join(ids, " ") + "]"
}
