// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds RIFF/WAVE fixtures and byte sources for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
)

// DefaultSampleRate matches the default configured capture rate.
const DefaultSampleRate = 9615

// Chunk is an arbitrary chunk inserted into a fixture.
type Chunk struct {
	ID      [4]byte
	Payload []byte
}

// WAV8 describes an 8-bit PCM WAV file. Every header field can be
// overridden to produce malformed input.
//
// Lengths set to -1 are computed from the rest of the fixture.
type WAV8 struct {
	RiffID [4]byte
	WaveID [4]byte
	FmtID  [4]byte
	DataID [4]byte

	RiffLength int64
	FmtLength  int64
	DataLength int64

	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16

	// FmtExtra is appended to the 16 byte format descriptor.
	FmtExtra []byte

	// Before holds chunks written between "WAVE" and "fmt ".
	Before []Chunk
	// Between holds chunks written between "fmt " and "data".
	Between []Chunk

	Samples []byte
}

// NewWAV8 returns a valid mono 8-bit PCM fixture.
func NewWAV8(sampleRate uint32, samples []byte) *WAV8 {
	return &WAV8{
		RiffID:        [4]byte{'R', 'I', 'F', 'F'},
		WaveID:        [4]byte{'W', 'A', 'V', 'E'},
		FmtID:         [4]byte{'f', 'm', 't', ' '},
		DataID:        [4]byte{'d', 'a', 't', 'a'},
		RiffLength:    -1,
		FmtLength:     -1,
		DataLength:    -1,
		AudioFormat:   1,
		Channels:      1,
		SampleRate:    sampleRate,
		ByteRate:      sampleRate,
		BlockAlign:    1,
		BitsPerSample: 8,
		Samples:       samples,
	}
}

// Bytes encodes the fixture.
func (w *WAV8) Bytes() []byte {
	body := new(bytes.Buffer)
	body.Write(w.WaveID[:])

	for _, c := range w.Before {
		writeChunk(body, c)
	}

	fmtLen := uint32(16 + len(w.FmtExtra))
	if w.FmtLength >= 0 {
		fmtLen = uint32(w.FmtLength)
	}
	body.Write(w.FmtID[:])
	binary.Write(body, binary.LittleEndian, fmtLen)
	binary.Write(body, binary.LittleEndian, w.AudioFormat)
	binary.Write(body, binary.LittleEndian, w.Channels)
	binary.Write(body, binary.LittleEndian, w.SampleRate)
	binary.Write(body, binary.LittleEndian, w.ByteRate)
	binary.Write(body, binary.LittleEndian, w.BlockAlign)
	binary.Write(body, binary.LittleEndian, w.BitsPerSample)
	body.Write(w.FmtExtra)

	for _, c := range w.Between {
		writeChunk(body, c)
	}

	dataLen := uint32(len(w.Samples))
	if w.DataLength >= 0 {
		dataLen = uint32(w.DataLength)
	}
	body.Write(w.DataID[:])
	binary.Write(body, binary.LittleEndian, dataLen)
	body.Write(w.Samples)

	riffLen := uint32(body.Len())
	if w.RiffLength >= 0 {
		riffLen = uint32(w.RiffLength)
	}

	out := new(bytes.Buffer)
	out.Write(w.RiffID[:])
	binary.Write(out, binary.LittleEndian, riffLen)
	out.Write(body.Bytes())

	return out.Bytes()
}

// Offsets of the chunk boundaries in a fixture without extra chunks and
// without format extension bytes.
const (
	OffsetFmtHeader  = 12
	OffsetFmtPayload = 20
	OffsetDataHeader = 36
	OffsetSamples    = 44
)

func writeChunk(buf *bytes.Buffer, c Chunk) {
	buf.Write(c.ID[:])
	binary.Write(buf, binary.LittleEndian, uint32(len(c.Payload)))
	buf.Write(c.Payload)
	if len(c.Payload)%2 == 1 {
		buf.WriteByte(0)
	}
}
