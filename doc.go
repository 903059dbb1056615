// SPDX-License-Identifier: EPL-2.0

// Package pcm8wav reads 8-bit mono PCM WAV files as a stream of signed,
// zero centred samples.
//
// The format is deliberately narrow: one channel, 8 bits per sample, linear
// PCM, at a single sample rate fixed by the application (a pitch detector
// sampling at 9615 Hz, for example). Files that do not match are rejected
// rather than converted.
//
// # Quick Start
//
// ReadMono8 runs a complete session:
//
//	file, _ := os.Open("note.wav")
//	samples, err := pcm8wav.ReadMono8(file, 9615, 1<<20)
//
//	// samples is []int8 in [-128, 127]
//
// The last argument caps the number of samples the header may declare, so
// a hostile file cannot make the reader allocate an arbitrary buffer.
//
// # Step By Step
//
// For more control use the formats/wav package directly. The header parse
// and the sample stream are separate calls over the same io.ByteReader:
//
//	br := bufio.NewReader(file)
//	count, err := wav.ParseHeader(br, 9615)
//	samples := make([]int8, count)
//	err = wav.ReadSamples(br, count, samples)
//
// # Packages
//
//   - chunk: exact length byte reads and chunk headers
//   - formats/wav: header parser, sample streamer, audio.Source decoder
//   - audio: Source and Decoder interfaces, format registry
//   - utils: sample scaling and statistics
//
// The pcm8wav command in cmd/pcm8wav inspects and decodes files from the
// shell.
package pcm8wav
