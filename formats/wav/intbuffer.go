// SPDX-License-Identifier: EPL-2.0

package wav

import goaudio "github.com/go-audio/audio"

// IntBuffer wraps decoded samples in a go-audio buffer so they can be fed
// to tooling built on github.com/go-audio.
func IntBuffer(samples []int8, sampleRate int) *goaudio.IntBuffer {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: SupportedBits,
	}
}
