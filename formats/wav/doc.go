// SPDX-License-Identifier: EPL-2.0

// Package wav reads 8-bit mono PCM WAV streams without loading them into
// memory.
//
// Only one profile is accepted: linear PCM, one channel, 8 bits per sample,
// at a sample rate chosen by the caller. Everything else is rejected.
//
// # Parsing And Streaming
//
// Reading a file is a two step session over the same io.ByteReader:
//
//	br := bufio.NewReader(file)
//	count, err := wav.ParseHeader(br, 9615)
//	if err != nil {
//	    // Handle error
//	}
//
//	samples := make([]int8, count)
//	err = wav.ReadSamples(br, count, samples)
//
// ParseHeader stops at the first sample byte. The caller decides how large
// a buffer it is willing to allocate for the count found in the header.
// ReadSamples removes the unsigned bias, so 0x80 (silence) becomes 0.
//
// # Chunk Layout
//
// The parser expects exactly:
//   - "RIFF", outer length (not checked), "WAVE"
//   - "fmt " chunk of at least 16 bytes; extension bytes are skipped
//   - "data" chunk whose length is the sample count
//
// A Parser with SkipUnknownChunks set passes over other chunks (LIST,
// fact, JUNK, ...) in front of "fmt " and "data" instead of failing.
//
// # Decoder
//
// Decoder adapts the parser to audio.Source for code that wants float32
// samples in [-1, 1):
//
//	decoder := wav.Decoder{SampleRate: 9615}
//	source, err := decoder.Decode(file)
//
// IntBuffer hands decoded samples to github.com/go-audio based tooling.
//
// # Error Handling
//
// Every failure aborts the session with one of:
//   - ErrMalformedRiff: the RIFF/WAVE prologue is missing
//   - ErrMissingFmtChunk, ErrFmtChunkTooShort: bad or short "fmt " chunk
//   - ErrUnsupportedFormat: not mono 8-bit PCM at the configured rate
//   - ErrMissingDataChunk: no "data" chunk where expected
//   - ErrTruncatedData: fewer sample bytes than declared
//
// Decoder.Decode additionally returns ErrInvalidSampleRate when its
// SampleRate is not a positive value that fits in 32 bits.
//
// Errors caused by the byte source running dry also match
// chunk.ErrSourceExhausted with errors.Is.
package wav
