// SPDX-License-Identifier: EPL-2.0

package audiotest

import "io"

// ByteSource is an io.ByteReader over a fixed slice that records how many
// bytes were consumed. Once the data runs out it returns Err, or io.EOF
// when Err is nil.
type ByteSource struct {
	data []byte
	pos  int
	Err  error
}

func NewByteSource(data []byte) *ByteSource {
	return &ByteSource{data: data}
}

// NewFailingSource returns a source that delivers data and then fails with err.
func NewFailingSource(data []byte, err error) *ByteSource {
	return &ByteSource{data: data, Err: err}
}

func (s *ByteSource) ReadByte() (byte, error) {
	if s.pos >= len(s.data) {
		if s.Err != nil {
			return 0, s.Err
		}
		return 0, io.EOF
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

// Consumed returns the number of bytes delivered so far.
func (s *ByteSource) Consumed() int { return s.pos }

// Remaining returns the number of bytes not yet delivered.
func (s *ByteSource) Remaining() int { return len(s.data) - s.pos }
