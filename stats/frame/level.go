// Package frame computes the level and zero-crossing statistics reported
// alongside each analysed frame.
package frame

import "math"

// Level holds time-domain statistics of one frame.
type Level struct {
	RMS         float64 `yaml:"rms"`
	RMSdB       float64 `yaml:"rms_db"`
	Peak        float64 `yaml:"peak"`
	CrestFactor float64 `yaml:"crest_factor"` // peak / RMS
	// ZeroCrossings counts sign changes between consecutive samples; exact
	// zeros do not count.
	ZeroCrossings int `yaml:"zero_crossings"`
	// ZeroCrossingRate is ZeroCrossings per sample interval, in [0, 1].
	ZeroCrossingRate float64 `yaml:"zero_crossing_rate"`
}

// Measure computes Level in a single pass. An empty or silent frame has
// RMSdB of -Inf and zero crest factor.
func Measure(x []float64) Level {
	if len(x) == 0 {
		return Level{RMSdB: math.Inf(-1)}
	}

	var sumSq, peak float64
	var crossings int
	for i, v := range x {
		sumSq += v * v
		if a := math.Abs(v); a > peak {
			peak = a
		}
		if i > 0 && x[i-1]*v < 0 {
			crossings++
		}
	}

	l := Level{
		RMS:           math.Sqrt(sumSq / float64(len(x))),
		Peak:          peak,
		ZeroCrossings: crossings,
	}
	l.RMSdB = ampTodB(l.RMS)
	if l.RMS > 0 {
		l.CrestFactor = peak / l.RMS
	}
	if len(x) > 1 {
		l.ZeroCrossingRate = float64(crossings) / float64(len(x)-1)
	}
	return l
}

// ampTodB converts an amplitude to decibels, -Inf for zero.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(a)
}
