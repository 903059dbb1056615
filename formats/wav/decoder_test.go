// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/pcm8wav/internal/audiotest"
)

// plainReader hides the io.ByteReader of the wrapped reader.
type plainReader struct {
	r io.Reader
}

func (p plainReader) Read(b []byte) (int, error) { return p.r.Read(b) }

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	wavData := audiotest.NewWAV8(testRate, []byte{0, 64, 128, 192, 255}).Bytes()

	decoder := Decoder{SampleRate: testRate}
	src, err := decoder.Decode(bytes.NewReader(wavData))

	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src == nil {
		t.Fatal("Decode() returned nil source")
	}

	if src.SampleRate() != testRate {
		t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), testRate)
	}

	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	if src.BufSize() != 5 {
		t.Errorf("BufSize() = %d, want 5", src.BufSize())
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestDecoder_PlainReader(t *testing.T) {
	t.Parallel()

	wavData := audiotest.NewWAV8(testRate, []byte{1, 2, 3}).Bytes()

	src, err := Decoder{SampleRate: testRate}.Decode(plainReader{bytes.NewReader(wavData)})
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 3 {
		t.Errorf("ReadSamples() n = %d, want 3", n)
	}
}

func TestDecoder_Header(t *testing.T) {
	t.Parallel()

	w := audiotest.NewWAV8(testRate, []byte{1, 2, 3})
	w.FmtExtra = []byte{0, 0}

	src, err := Decoder{SampleRate: testRate}.Decode(bytes.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	hs, ok := src.(interface{ Header() Header })
	if !ok {
		t.Fatal("source does not expose Header()")
	}

	h := hs.Header()
	if h.Samples != 3 || h.FmtExtra != 2 {
		t.Errorf("Header() = %+v, want Samples 3, FmtExtra 2", h)
	}
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   []byte
		rate   int
		wantIs error
	}{
		{"not a WAV file", []byte("NOT A WAV FILE DATA"), testRate, ErrMalformedRiff},
		{"truncated header", []byte("RIFF\x00"), testRate, ErrMalformedRiff},
		{"wrong rate", audiotest.NewWAV8(8000, []byte{1}).Bytes(), testRate, ErrUnsupportedFormat},
		{"zero rate config", audiotest.NewWAV8(testRate, []byte{1}).Bytes(), 0, ErrInvalidSampleRate},
		{"negative rate config", audiotest.NewWAV8(testRate, []byte{1}).Bytes(), -testRate, ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := Decoder{SampleRate: tt.rate}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.wantIs) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantIs)
			}
			if src != nil {
				t.Error("Decode() returned a source on error")
			}
		})
	}
}

func TestDecoder_WithUnknownChunks(t *testing.T) {
	t.Parallel()

	w := audiotest.NewWAV8(testRate, []byte{100, 200})
	w.Before = []audiotest.Chunk{{ID: [4]byte{'I', 'N', 'F', 'O'}, Payload: []byte{0, 0, 0}}}

	_, err := Decoder{SampleRate: testRate}.Decode(bytes.NewReader(w.Bytes()))
	if !errors.Is(err, ErrMissingFmtChunk) {
		t.Errorf("strict Decode() error = %v, want ErrMissingFmtChunk", err)
	}

	src, err := Decoder{SampleRate: testRate, SkipUnknownChunks: true}.Decode(bytes.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("lenient Decode() error = %v, want nil", err)
	}
	if src == nil {
		t.Fatal("Decode() returned nil source")
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	wavData := audiotest.NewWAV8(testRate, []byte{0, 64, 128, 192, 255}).Bytes()

	src, err := Decoder{SampleRate: testRate}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 5 {
		t.Errorf("ReadSamples() n = %d, want 5", n)
	}

	expected := []float32{-1.0, -0.5, 0.0, 0.5, 127.0 / 128.0}
	for i := range n {
		if math.Abs(float64(dst[i]-expected[i])) > 1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], expected[i])
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	wavData := audiotest.NewWAV8(testRate, []byte{1, 2, 3}).Bytes()

	src, err := Decoder{SampleRate: testRate}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	n, err := src.ReadSamples(make([]float32, 0))

	if err != nil {
		t.Errorf("ReadSamples() with empty buffer error = %v, want nil", err)
	}

	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
}

func TestSource_ReadSamples_PartialRead(t *testing.T) {
	t.Parallel()

	wavData := audiotest.NewWAV8(testRate, []byte{1, 2, 3, 4, 5}).Bytes()

	src, err := Decoder{SampleRate: testRate}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := make([]float32, 2)

	n1, err1 := src.ReadSamples(dst)
	if err1 != nil || n1 != 2 {
		t.Errorf("First ReadSamples() = (%d, %v), want (2, nil)", n1, err1)
	}

	n2, err2 := src.ReadSamples(dst)
	if err2 != nil || n2 != 2 {
		t.Errorf("Second ReadSamples() = (%d, %v), want (2, nil)", n2, err2)
	}

	n3, err3 := src.ReadSamples(dst)
	if err3 != io.EOF || n3 != 1 {
		t.Errorf("Third ReadSamples() = (%d, %v), want (1, io.EOF)", n3, err3)
	}

	n4, err4 := src.ReadSamples(dst)
	if err4 != io.EOF || n4 != 0 {
		t.Errorf("Final ReadSamples() = (%d, %v), want (0, io.EOF)", n4, err4)
	}
}

func TestSource_ReadSamples_StopsAtDeclaredCount(t *testing.T) {
	t.Parallel()

	w := audiotest.NewWAV8(testRate, []byte{1, 2, 3, 4, 5, 6})
	w.DataLength = 4

	src, err := Decoder{SampleRate: testRate}.Decode(bytes.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	n, err := src.ReadSamples(make([]float32, 16))
	if err != io.EOF || n != 4 {
		t.Errorf("ReadSamples() = (%d, %v), want (4, io.EOF)", n, err)
	}
}

func TestSource_ReadSamples_Truncated(t *testing.T) {
	t.Parallel()

	w := audiotest.NewWAV8(testRate, []byte{1, 2, 3})
	w.DataLength = 10

	src, err := Decoder{SampleRate: testRate}.Decode(bytes.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	_, err = src.ReadSamples(make([]float32, 16))
	if !errors.Is(err, ErrTruncatedData) {
		t.Errorf("ReadSamples() error = %v, want ErrTruncatedData", err)
	}

	n, err := src.ReadSamples(make([]float32, 16))
	if err != io.EOF || n != 0 {
		t.Errorf("ReadSamples() after failure = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_ReadSamples_GrowsBuffer(t *testing.T) {
	t.Parallel()

	samples := make([]byte, defaultBufSize*2)
	wavData := audiotest.NewWAV8(testRate, samples).Bytes()

	src, err := Decoder{SampleRate: testRate}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.BufSize() != defaultBufSize {
		t.Errorf("BufSize() = %d, want %d", src.BufSize(), defaultBufSize)
	}

	n, err := src.ReadSamples(make([]float32, len(samples)))
	if err != io.EOF || n != len(samples) {
		t.Errorf("ReadSamples() = (%d, %v), want (%d, io.EOF)", n, err, len(samples))
	}
	if src.BufSize() != len(samples) {
		t.Errorf("BufSize() = %d, want %d", src.BufSize(), len(samples))
	}
}
