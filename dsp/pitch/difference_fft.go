package pitch

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// DifferenceFFT computes the same values as Difference through the
// autocorrelation r(tau), using
//
//	d[tau] = sum_{i<n-tau} x[i]^2 + sum_{i>=tau} x[i]^2 - 2*r(tau).
//
// The cost is O(n log n) instead of O(n*tauMax). Results agree with
// Difference to rounding; tiny negative values from cancellation are
// clamped to zero.
func DifferenceFFT(frame []float64, tauMax int) ([]float64, error) {
	n := len(frame)
	if tauMax > n-1 {
		tauMax = n - 1
	}
	if tauMax < 0 {
		return nil, nil
	}
	if tauMax == 0 {
		return []float64{0}, nil
	}

	size := nextPowerOf2(n + tauMax)
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("pitch: failed to create FFT plan: %w", err)
	}

	buf := make([]complex128, size)
	for i, v := range frame {
		buf[i] = complex(v, 0)
	}

	if err := plan.Forward(buf, buf); err != nil {
		return nil, fmt.Errorf("pitch: forward FFT failed: %w", err)
	}
	for i, c := range buf {
		buf[i] = complex(real(c)*real(c)+imag(c)*imag(c), 0)
	}
	if err := plan.Inverse(buf, buf); err != nil {
		return nil, fmt.Errorf("pitch: inverse FFT failed: %w", err)
	}

	// prefix[k] = sum of x[i]^2 for i < k
	prefix := make([]float64, n+1)
	for i, v := range frame {
		prefix[i+1] = prefix[i] + v*v
	}

	d := make([]float64, tauMax+1)
	for tau := 1; tau <= tauMax; tau++ {
		head := prefix[n-tau]
		tail := prefix[n] - prefix[tau]
		v := head + tail - 2*real(buf[tau])
		if v < 0 {
			v = 0
		}
		d[tau] = v
	}
	return d, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
