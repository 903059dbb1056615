// SPDX-License-Identifier: EPL-2.0

// Package audio defines the streaming interfaces shared by the decoders in
// this module.
//
//   - Source interface for decoded audio
//   - Decoder interface turning an io.Reader into a Source
//   - Registry mapping format names to decoders
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are float32 in the range [-1.0, 1.0]. A decoder for 8-bit PCM
// maps -128 to -1.0 and 127 to just under 1.0.
//
// # Format Registry
//
// The registry picks a decoder from a format key, usually a file
// extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{SampleRate: 9615})
//	src, err := registry.Decode("wav", file)
//
// Keys are matched case insensitively. Looking up a key that was never
// registered yields ErrUnknownFormat.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // Process n samples from buf first
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
