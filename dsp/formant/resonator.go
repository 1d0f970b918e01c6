package formant

import (
	"fmt"

	"github.com/cwbudde/algo-voice/dsp/core"
)

// Resonator filters a signal through one second-order all-pole section
// 1/(1 + c1*z^-1 + c2*z^-2) built from Resonance. The input is scaled by
// 1 + c1 + c2 so the section has unity gain at DC.
//
// A Resonator keeps two samples of state and must not be shared between
// goroutines.
type Resonator struct {
	gain   float64
	c1, c2 float64
	y1, y2 float64
}

// NewResonator creates a resonator for the given centre frequency and
// bandwidth. freqHz must lie in [0, sampleRate/2] and bandwidthHz must be > 0.
func NewResonator(freqHz, bandwidthHz, sampleRate float64) (*Resonator, error) {
	if !core.PositiveFinite(sampleRate) {
		return nil, fmt.Errorf("formant: sample rate must be > 0: %v: %w", sampleRate, core.ErrInvalidArgument)
	}
	if !core.IsFinite(freqHz) || freqHz < 0 || freqHz > sampleRate/2 {
		return nil, fmt.Errorf("formant: resonator frequency must be in [0, %v]: %v: %w", sampleRate/2, freqHz, core.ErrInvalidArgument)
	}
	if !core.PositiveFinite(bandwidthHz) {
		return nil, fmt.Errorf("formant: resonator bandwidth must be > 0: %v: %w", bandwidthHz, core.ErrInvalidArgument)
	}

	c := Resonance(freqHz, bandwidthHz, sampleRate)
	return &Resonator{
		gain: 1 + c[1] + c[2],
		c1:   c[1],
		c2:   c[2],
	}, nil
}

// Process filters one sample.
func (r *Resonator) Process(x float64) float64 {
	y := r.gain*x - r.c1*r.y1 - r.c2*r.y2
	r.y2 = r.y1
	r.y1 = core.FlushDenormals(y)
	return y
}

// ProcessBlock filters src into dst. dst and src may alias; dst must be at
// least as long as src.
func (r *Resonator) ProcessBlock(dst, src []float64) {
	for i, x := range src {
		dst[i] = r.Process(x)
	}
}

// Reset clears the filter state.
func (r *Resonator) Reset() {
	r.y1, r.y2 = 0, 0
}
