// Package testutil provides deterministic test signals and tolerance
// assertions for the analysis kernels.
package testutil

import "math"

// Partial is one sinusoidal component of a synthetic test signal.
type Partial struct {
	FreqHz    float64
	Amplitude float64
}

// DeterministicSine generates amplitude*sin(2*pi*freqHz*i/sampleRate).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freqHz*(float64(i)/sampleRate))
	}
	return out
}

// SineSum generates the sum of the given partials, accumulated in the
// order they are listed.
func SineSum(sampleRate float64, length int, partials ...Partial) []float64 {
	out := make([]float64, length)
	for _, p := range partials {
		for i := range out {
			out[i] += p.Amplitude * math.Sin(2*math.Pi*p.FreqHz*(float64(i)/sampleRate))
		}
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
