package pitch

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-voice/dsp/core"
)

// Defaults used by NewDetector.
const (
	DefaultMinHz     = 50.0
	DefaultMaxHz     = 500.0
	DefaultThreshold = 0.15
)

// YIN estimates the fundamental frequency of frame. The lag search covers
// floor(sampleRate/fmax) (at least 1) to floor(sampleRate/fmin) (at most
// len(frame)-1). threshold is the absolute CMND threshold in (0, 1).
func YIN(frame []float64, sampleRate, fmin, fmax, threshold float64) (Estimate, error) {
	if err := validate(sampleRate, fmin, fmax, threshold); err != nil {
		return Unvoiced, err
	}
	if len(frame) == 0 {
		return Unvoiced, fmt.Errorf("pitch: frame must not be empty: %w", core.ErrInvalidArgument)
	}

	tauMin, tauMax := lagRange(len(frame), sampleRate, fmin, fmax)
	d := Difference(frame, tauMax)
	return pick(CMND(d), tauMin, tauMax, sampleRate, threshold), nil
}

func validate(sampleRate, fmin, fmax, threshold float64) error {
	if !core.PositiveFinite(sampleRate) {
		return fmt.Errorf("pitch: sample rate must be > 0: %v: %w", sampleRate, core.ErrInvalidArgument)
	}
	if !core.PositiveFinite(fmin) || !core.PositiveFinite(fmax) || fmax <= fmin {
		return fmt.Errorf("pitch: need 0 < fmin < fmax: [%v, %v]: %w", fmin, fmax, core.ErrInvalidArgument)
	}
	if !(threshold > 0 && threshold < 1) {
		return fmt.Errorf("pitch: threshold must be in (0, 1): %v: %w", threshold, core.ErrInvalidArgument)
	}
	return nil
}

func lagRange(n int, sampleRate, fmin, fmax float64) (tauMin, tauMax int) {
	tauMin = int(math.Floor(sampleRate / fmax))
	tauMax = int(math.Floor(sampleRate / fmin))
	if tauMax >= n {
		tauMax = n - 1
	}
	if tauMin < 1 {
		tauMin = 1
	}
	return tauMin, tauMax
}

// Difference returns d[0..tauMax] with d[0] = 0 and
// d[tau] = sum_{i=0}^{n-tau-1} (frame[i] - frame[i+tau])^2.
// tauMax is clamped to len(frame)-1.
func Difference(frame []float64, tauMax int) []float64 {
	n := len(frame)
	if tauMax > n-1 {
		tauMax = n - 1
	}
	if tauMax < 0 {
		return nil
	}

	d := make([]float64, tauMax+1)
	for tau := 1; tau <= tauMax; tau++ {
		var sum float64
		for i := 0; i < n-tau; i++ {
			diff := frame[i] - frame[i+tau]
			sum += diff * diff
		}
		d[tau] = sum
	}
	return d
}

// CMND returns the cumulative mean normalised difference of d:
// cmnd[0] = 1 and cmnd[tau] = d[tau]*tau / sum(d[1..tau]), or 1 while that
// running sum is still zero.
func CMND(d []float64) []float64 {
	if len(d) == 0 {
		return nil
	}

	cmnd := make([]float64, len(d))
	cmnd[0] = 1

	var running float64
	for tau := 1; tau < len(d); tau++ {
		running += d[tau]
		if running > 0 {
			cmnd[tau] = d[tau] * float64(tau) / running
		} else {
			cmnd[tau] = 1
		}
	}
	return cmnd
}

// pick runs the absolute-threshold search and parabolic refinement.
func pick(cmnd []float64, tauMin, tauMax int, sampleRate, threshold float64) Estimate {
	tau := -1
	for t := tauMin; t <= tauMax; t++ {
		if cmnd[t] < threshold {
			for t+1 <= tauMax && cmnd[t+1] < cmnd[t] {
				t++
			}
			tau = t
			break
		}
	}

	if tau < 0 {
		return Unvoiced
	}

	period := float64(tau)
	if tau > 1 && tau < tauMax {
		s0, s1, s2 := cmnd[tau-1], cmnd[tau], cmnd[tau+1]
		denom := 2 * (2*s1 - s2 - s0)
		if denom != 0 {
			period += (s2 - s0) / denom
		}
	}

	return Estimate{Frequency: sampleRate / period, Voiced: true}
}
