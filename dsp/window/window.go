// Package window provides the tapering windows applied to analysis frames
// before LPC estimation.
package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-voice/dsp/core"
)

// Type identifies a window function.
type Type int

const (
	// TypeRectangular leaves the frame untouched.
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

var names = map[Type]string{
	TypeRectangular: "rectangular",
	TypeHann:        "hann",
	TypeHamming:     "hamming",
	TypeBlackman:    "blackman",
}

// String returns the lower-case window name.
func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("window(%d)", int(t))
}

// ParseType resolves a window name as returned by String. The empty string
// and "none" select TypeRectangular.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "none" {
		return TypeRectangular, nil
	}
	for t, n := range names {
		if n == name {
			return t, nil
		}
	}
	return TypeRectangular, fmt.Errorf("window: unknown type %q: %w", name, core.ErrInvalidArgument)
}

// Option configures Generate.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic selects the periodic (DFT-even) form instead of the
// symmetric one.
func WithPeriodic() Option {
	return func(c *config) { c.periodic = true }
}

// cosine-sum coefficients a0 - a1*cos(2πx) + a2*cos(4πx)
var cosineTerms = map[Type][]float64{
	TypeHann:     {0.5, 0.5},
	TypeHamming:  {0.54, 0.46},
	TypeBlackman: {0.42, 0.5, 0.08},
}

// Generate returns length coefficients of window t.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	terms, ok := cosineTerms[t]
	if !ok {
		for i := range out {
			out[i] = 1
		}
		return out
	}

	for i := range out {
		phase := 2 * math.Pi * samplePosition(i, length, cfg.periodic)
		var sum, sign float64 = 0, 1
		for k, a := range terms {
			sum += sign * a * math.Cos(float64(k)*phase)
			sign = -sign
		}
		out[i] = sum
	}
	return out
}

// Apply writes src multiplied by coeffs into dst. All three slices must
// have the same length; dst may alias src.
func Apply(dst, src, coeffs []float64) error {
	if len(dst) != len(src) || len(src) != len(coeffs) {
		return fmt.Errorf("window: length mismatch dst=%d src=%d coeffs=%d: %w",
			len(dst), len(src), len(coeffs), core.ErrInvalidArgument)
	}
	vecmath.MulBlock(dst, src, coeffs)
	return nil
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}
	return float64(n) / den
}
