// SPDX-License-Identifier: EPL-2.0

// Package chunk provides the byte level primitives shared by the RIFF
// parsers in this module.
//
// Every read goes through a single primitive, ReadBytes, which consumes an
// exact number of bytes from an io.ByteReader one at a time. It either
// copies them into a destination (optionally shifting each byte by a fixed
// offset) or, when the destination is nil, throws them away:
//
//	var hdr [8]byte
//	err := chunk.ReadBytes(src, 8, 0, hdr[:])   // copy
//	err = chunk.Skip(src, 2)                     // discard padding
//
// A source that ends before the requested count is delivered yields
// ErrSourceExhausted. There is no partial success.
//
// # Chunk Headers
//
// A RIFF chunk starts with a four byte identifier followed by a
// little-endian uint32 payload length:
//
//	h, err := chunk.ReadHeader(src)
//	if h.ID == chunk.Fmt {
//	    // h.Length bytes of payload follow
//	}
//
// Identifiers are compared byte for byte. "fmt " keeps its trailing space
// and "FMT " is not the same chunk.
package chunk
