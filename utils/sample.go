// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Int8ToFloat32 scales a signed 8-bit sample to [-1, 1).
func Int8ToFloat32(s int8) float32 {
	return float32(s) / 128.0
}

// Float32ToInt8 is the inverse of Int8ToFloat32. Values outside [-1, 1)
// are clamped.
func Float32ToInt8(x float32) int8 {
	v := math.Round(float64(x) * 128.0)
	if v > math.MaxInt8 {
		return math.MaxInt8
	} else if v < math.MinInt8 {
		return math.MinInt8
	}

	return int8(v)
}

// Stats summarises a block of signed 8-bit samples.
type Stats struct {
	Min int8
	Max int8
	// Peak is the largest absolute amplitude, up to 128.
	Peak int
	// Mean is the DC offset left after bias removal.
	Mean float64
}

// SampleStats computes Stats over samples. It returns the zero value for
// an empty slice.
func SampleStats(samples []int8) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	st := Stats{Min: samples[0], Max: samples[0]}
	sum := 0
	for _, s := range samples {
		if s < st.Min {
			st.Min = s
		}
		if s > st.Max {
			st.Max = s
		}
		sum += int(s)
	}

	st.Peak = max(-int(st.Min), int(st.Max))
	st.Mean = float64(sum) / float64(len(samples))

	return st
}
