// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"time"

	"github.com/ik5/pcm8wav/chunk"
)

// FormatSize is the encoded size of the mandatory "fmt " fields.
const FormatSize = 16

// Accepted profile.
const (
	FormatPCM        = 1
	SupportedChannel = 1
	SupportedBits    = 8
)

// Format is the "fmt " chunk descriptor.
type Format struct {
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

func decodeFormat(b *[FormatSize]byte) Format {
	le := binary.LittleEndian
	return Format{
		AudioFormat:   le.Uint16(b[0:2]),
		Channels:      le.Uint16(b[2:4]),
		SampleRate:    le.Uint32(b[4:8]),
		ByteRate:      le.Uint32(b[8:12]),
		BlockAlign:    le.Uint16(b[12:14]),
		BitsPerSample: le.Uint16(b[14:16]),
	}
}

// Supported reports whether f is linear PCM, mono, 8 bits per sample and
// sampled at sampleRate. ByteRate and BlockAlign are not checked.
func (f Format) Supported(sampleRate uint32) bool {
	return f.AudioFormat == FormatPCM &&
		f.Channels == SupportedChannel &&
		f.BitsPerSample == SupportedBits &&
		f.SampleRate == sampleRate
}

// Header is everything learned while parsing the container up to the
// first sample byte.
type Header struct {
	// RiffLength is the declared outer length. It is never validated.
	RiffLength uint32
	Format     Format
	// FmtExtra is the number of format extension bytes that were skipped.
	FmtExtra uint32
	// Skipped lists unknown chunks passed over by a lenient Parser.
	Skipped []chunk.ID
	// Samples is the "data" chunk length, one byte per sample.
	Samples uint32
}

// Duration returns the playing time of the declared samples.
func (h Header) Duration() time.Duration {
	if h.Format.SampleRate == 0 {
		return 0
	}
	return time.Duration(h.Samples) * time.Second / time.Duration(h.Format.SampleRate)
}
