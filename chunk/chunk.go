// SPDX-License-Identifier: EPL-2.0

package chunk

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// HeaderSize is the size of an encoded chunk header (id + length).
const HeaderSize = 8

// ID is a four byte chunk identifier.
type ID [4]byte

var (
	RIFF = ID{'R', 'I', 'F', 'F'}
	WAVE = ID{'W', 'A', 'V', 'E'}
	Fmt  = ID{'f', 'm', 't', ' '}
	Data = ID{'d', 'a', 't', 'a'}
)

func (id ID) String() string { return string(id[:]) }

// Valid reports whether every byte of id is printable ASCII.
func (id ID) Valid() bool {
	for _, c := range id {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}

// Header is a chunk identifier and its declared payload length.
type Header struct {
	ID     ID
	Length uint32
}

// Padded returns the number of payload bytes including the RIFF pad byte
// that follows odd sized chunks. The result does not fit uint32 for a
// length of 0xFFFFFFFF.
func (h Header) Padded() uint64 {
	return uint64(h.Length) + uint64(h.Length&1)
}

// Octet is the set of 8-bit element types ReadBytes can fill.
type Octet interface {
	~uint8 | ~int8
}

// ReadBytes reads exactly n bytes from src, one byte at a time.
//
// When dst is non-nil every byte is stored as byte+offset, wrapping around
// at 8 bits, into successive elements of dst. When dst is nil the bytes are
// discarded. Passing math.MinInt8 as offset with an []int8 destination
// turns unsigned 8-bit PCM into signed, zero centred samples.
//
// ReadBytes fails with ErrSourceExhausted as soon as a single read fails.
// Errors other than io.EOF are wrapped alongside it.
func ReadBytes[T Octet](src io.ByteReader, n uint32, offset int8, dst []T) error {
	if dst != nil && uint64(len(dst)) < uint64(n) {
		return fmt.Errorf("%w: need %d, have %d", ErrShortDestination, n, len(dst))
	}

	shift := byte(offset)
	for i := range n {
		b, err := src.ReadByte()
		if err != nil {
			return exhausted(err)
		}
		if dst != nil {
			dst[i] = T(b + shift)
		}
	}

	return nil
}

// Skip discards exactly n bytes from src.
func Skip(src io.ByteReader, n uint32) error {
	return ReadBytes[byte](src, n, 0, nil)
}

// SkipPayload discards the payload of the chunk described by h and its pad
// byte, if any.
func SkipPayload(src io.ByteReader, h Header) error {
	if err := Skip(src, h.Length); err != nil {
		return err
	}
	if h.Length&1 == 1 {
		return Skip(src, 1)
	}
	return nil
}

// ReadID reads a four byte chunk identifier.
func ReadID(src io.ByteReader) (ID, error) {
	var id ID
	if err := ReadBytes(src, uint32(len(id)), 0, id[:]); err != nil {
		return ID{}, err
	}
	return id, nil
}

// ReadHeader reads a chunk identifier followed by its little-endian length.
func ReadHeader(src io.ByteReader) (Header, error) {
	var buf [HeaderSize]byte
	if err := ReadBytes(src, HeaderSize, 0, buf[:]); err != nil {
		return Header{}, err
	}

	return Header{
		ID:     ID(buf[:4]),
		Length: binary.LittleEndian.Uint32(buf[4:]),
	}, nil
}

func exhausted(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrSourceExhausted
	}
	return fmt.Errorf("%w: %w", ErrSourceExhausted, err)
}
