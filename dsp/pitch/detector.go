package pitch

import (
	"fmt"

	"github.com/cwbudde/algo-voice/dsp/core"
)

// Detector holds a validated YIN configuration for repeated use. It keeps no
// per-frame state, so one Detector may be shared by goroutines.
type Detector struct {
	sampleRate float64
	fmin, fmax float64
	threshold  float64
	useFFT     bool
}

// Option configures a Detector.
type Option func(*Detector)

// WithRange sets the search range in Hz.
func WithRange(fmin, fmax float64) Option {
	return func(d *Detector) {
		d.fmin = fmin
		d.fmax = fmax
	}
}

// WithThreshold sets the absolute CMND threshold.
func WithThreshold(threshold float64) Option {
	return func(d *Detector) {
		d.threshold = threshold
	}
}

// WithFFTDifference selects DifferenceFFT for the difference function.
func WithFFTDifference(enabled bool) Option {
	return func(d *Detector) {
		d.useFFT = enabled
	}
}

// NewDetector validates the configuration and returns a Detector.
func NewDetector(sampleRate float64, opts ...Option) (*Detector, error) {
	d := &Detector{
		sampleRate: sampleRate,
		fmin:       DefaultMinHz,
		fmax:       DefaultMaxHz,
		threshold:  DefaultThreshold,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}

	if err := validate(d.sampleRate, d.fmin, d.fmax, d.threshold); err != nil {
		return nil, err
	}
	return d, nil
}

// SampleRate returns the configured sample rate.
func (d *Detector) SampleRate() float64 { return d.sampleRate }

// Range returns the configured search range in Hz.
func (d *Detector) Range() (fmin, fmax float64) { return d.fmin, d.fmax }

// Threshold returns the CMND threshold.
func (d *Detector) Threshold() float64 { return d.threshold }

// MinFrameLength is the shortest frame that covers two periods of fmin.
func (d *Detector) MinFrameLength() int {
	return 2*int(d.sampleRate/d.fmin) + 1
}

// Estimate runs YIN on frame.
func (d *Detector) Estimate(frame []float64) (Estimate, error) {
	if len(frame) == 0 {
		return Unvoiced, fmt.Errorf("pitch: frame must not be empty: %w", core.ErrInvalidArgument)
	}

	tauMin, tauMax := lagRange(len(frame), d.sampleRate, d.fmin, d.fmax)

	var diff []float64
	if d.useFFT {
		var err error
		diff, err = DifferenceFFT(frame, tauMax)
		if err != nil {
			return Unvoiced, err
		}
	} else {
		diff = Difference(frame, tauMax)
	}

	return pick(CMND(diff), tauMin, tauMax, d.sampleRate, d.threshold), nil
}
