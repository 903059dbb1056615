// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// mockSource is a test helper producing a constant mono signal.
type mockSource struct {
	sampleRate   int
	totalSamples int
	generated    int
	value        float32
}

func newConstantSource(sampleRate, totalSamples int, value float32) *mockSource {
	return &mockSource{
		sampleRate:   sampleRate,
		totalSamples: totalSamples,
		value:        value,
	}
}

func newSilentSource(sampleRate, totalSamples int) *mockSource {
	return newConstantSource(sampleRate, totalSamples, 0)
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return 1 }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	n := min(len(dst), m.totalSamples-m.generated)
	for i := range n {
		dst[i] = m.value
	}
	m.generated += n

	if m.generated >= m.totalSamples {
		return n, io.EOF
	}
	return n, nil
}
