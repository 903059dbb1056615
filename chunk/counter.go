// SPDX-License-Identifier: EPL-2.0

package chunk

import "io"

// Counter wraps an io.ByteReader and counts the bytes it delivered.
type Counter struct {
	src io.ByteReader
	n   int64
}

func NewCounter(src io.ByteReader) *Counter {
	return &Counter{src: src}
}

func (c *Counter) ReadByte() (byte, error) {
	b, err := c.src.ReadByte()
	if err == nil {
		c.n++
	}
	return b, err
}

// Offset returns the number of bytes read so far.
func (c *Counter) Offset() int64 { return c.n }
