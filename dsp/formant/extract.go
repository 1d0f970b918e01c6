package formant

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/cwbudde/algo-voice/dsp/core"
	"github.com/cwbudde/algo-voice/internal/polyroot"
)

// Formant is one resonance: centre frequency and -3 dB bandwidth in Hz.
type Formant struct {
	Frequency float64
	Bandwidth float64
}

// FromPole converts a z-plane pole to a resonance at sampleRate.
func FromPole(pole complex128, sampleRate float64) Formant {
	return Formant{
		Frequency: math.Atan2(imag(pole), real(pole)) * sampleRate / (2 * math.Pi),
		Bandwidth: -sampleRate / math.Pi * math.Log(cmplx.Abs(pole)),
	}
}

// RootSolver returns every complex root of a real polynomial given in
// descending power order.
type RootSolver func(coeffs []float64) ([]complex128, error)

var (
	// CompanionSolver computes roots as companion-matrix eigenvalues.
	CompanionSolver RootSolver = polyroot.Companion
	// DurandKernerSolver computes roots by Durand-Kerner iteration.
	DurandKernerSolver RootSolver = polyroot.RealDurandKerner
)

// Limits are the pole gates applied by Extract.
type Limits struct {
	// MinImag rejects real roots and the lower conjugate of each pair.
	MinImag float64
	// MinMagnitude and MaxMagnitude bound |pole| exclusively.
	MinMagnitude float64
	MaxMagnitude float64
	// MaxBandwidth is the widest accepted bandwidth in Hz.
	MaxBandwidth float64
	// NyquistFraction caps maxHz at this fraction of sampleRate/2.
	NyquistFraction float64
}

// DefaultLimits returns the standard gates.
func DefaultLimits() Limits {
	return Limits{
		MinImag:         0.001,
		MinMagnitude:    0.80,
		MaxMagnitude:    0.9995,
		MaxBandwidth:    3500,
		NyquistFraction: 0.9,
	}
}

type config struct {
	solver RootSolver
	limits Limits
}

// Option configures Extract.
type Option func(*config)

// WithRootSolver selects the polynomial root solver.
func WithRootSolver(s RootSolver) Option {
	return func(c *config) {
		if s != nil {
			c.solver = s
		}
	}
}

// WithLimits overrides the pole gates.
func WithLimits(l Limits) Option {
	return func(c *config) {
		c.limits = l
	}
}

// Extract returns the formants encoded in an LPC polynomial, ascending by
// frequency. minHz is floored at 0 and maxHz capped at 90% of Nyquist. A
// polynomial without qualifying poles yields an empty, non-nil slice.
func Extract(coeffs []float64, sampleRate, minHz, maxHz float64, opts ...Option) ([]Formant, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmptyPolynomial
	}
	if !core.PositiveFinite(sampleRate) {
		return nil, fmt.Errorf("formant: sample rate must be > 0: %v: %w", sampleRate, core.ErrInvalidArgument)
	}
	if math.IsNaN(minHz) || math.IsNaN(maxHz) {
		return nil, fmt.Errorf("formant: frequency range must not be NaN: [%v, %v]: %w", minHz, maxHz, core.ErrInvalidArgument)
	}

	cfg := config{solver: CompanionSolver, limits: DefaultLimits()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	lim := cfg.limits

	roots, err := cfg.solver(coeffs)
	if err != nil {
		return nil, fmt.Errorf("formant: root solver: %w", err)
	}

	minHz = math.Max(0, minHz)
	maxHz = math.Min(maxHz, sampleRate*0.5*lim.NyquistFraction)

	out := make([]Formant, 0, len(roots)/2)
	for _, r := range roots {
		if imag(r) <= lim.MinImag {
			continue
		}

		mag := cmplx.Abs(r)
		if mag <= lim.MinMagnitude || mag >= lim.MaxMagnitude {
			continue
		}

		f := FromPole(r, sampleRate)
		if f.Frequency < minHz || f.Frequency > maxHz {
			continue
		}
		if f.Bandwidth <= 0 || f.Bandwidth > lim.MaxBandwidth {
			continue
		}

		out = append(out, f)
	}

	slices.SortStableFunc(out, func(a, b Formant) int {
		switch {
		case a.Frequency < b.Frequency:
			return -1
		case a.Frequency > b.Frequency:
			return 1
		}
		return 0
	})

	return out, nil
}
