// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/pcm8wav/audio"
	"github.com/ik5/pcm8wav/formats/wav"
	"github.com/ik5/pcm8wav/internal/audiotest"
)

// Example_registry demonstrates choosing a decoder by file extension.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("wav", wav.Decoder{SampleRate: 9615})
	registry.Register("wave", wav.Decoder{SampleRate: 9615})

	fmt.Println("Formats:", registry.Formats())

	decoder, ok := registry.Get("WAV")
	if !ok {
		fmt.Println("Decoder not found")
		return
	}
	fmt.Printf("Retrieved decoder: %T\n", decoder)

	_, err := registry.Decode("mp3", bytes.NewReader(nil))
	fmt.Println("Error:", err)
	// Output:
	// Formats: [wav wave]
	// Retrieved decoder: wav.Decoder
	// Error: no decoder registered for format: "mp3"
}

// Example_errorHandling shows the read loop every Source supports.
func Example_errorHandling() {
	samples := make([]byte, 1000)
	data := audiotest.NewWAV8(9615, samples).Bytes()

	registry := audio.NewRegistry()
	registry.Register("wav", wav.Decoder{SampleRate: 9615})

	source, err := registry.Decode("wav", bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}
	defer source.Close()

	buf := make([]float32, 256)
	totalSamples := 0

	for {
		n, err := source.ReadSamples(buf)

		// Always process available samples first
		if n > 0 {
			totalSamples += n
		}

		if err == io.EOF {
			fmt.Println("Reached end of audio stream")
			break
		}
		if err != nil {
			fmt.Printf("Error reading samples: %v\n", err)
			break
		}
	}

	fmt.Printf("Successfully processed %d samples\n", totalSamples)
	// Output:
	// Reached end of audio stream
	// Successfully processed 1000 samples
}
