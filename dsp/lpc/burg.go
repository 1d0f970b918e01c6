package lpc

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-voice/dsp/core"
)

// MinErrorEnergy is the stage error energy at or below which Burg's
// recursion terminates early.
const MinErrorEnergy = 1e-12

// scratch holds pooled working memory for one Burg run.
type scratch struct {
	ef, eb []float64
	df, db []float64
	prev   []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratch{} },
}

func getScratch(n, order int) *scratch {
	s := scratchPool.Get().(*scratch)
	s.ef = core.EnsureLen(s.ef, n)
	s.eb = core.EnsureLen(s.eb, n)
	s.df = core.EnsureLen(s.df, n)
	s.db = core.EnsureLen(s.db, n)
	s.prev = core.EnsureLen(s.prev, order+1)
	return s
}

// Burg returns order+1 prediction coefficients for samples using Burg's
// method. See the package documentation for the early-termination rule.
func Burg(samples []float64, order int) ([]float64, error) {
	if err := validate(samples, order); err != nil {
		return nil, err
	}

	out := make([]float64, order+1)
	burg(out, nil, samples, order)
	return out, nil
}

// BurgReflection is like Burg but also returns the per-stage reflection
// coefficients k1..kp. Stages skipped by early termination report 0.
func BurgReflection(samples []float64, order int) (coeffs, reflection []float64, err error) {
	if err := validate(samples, order); err != nil {
		return nil, nil, err
	}

	coeffs = make([]float64, order+1)
	reflection = make([]float64, order)
	burg(coeffs, reflection, samples, order)
	return coeffs, reflection, nil
}

// BurgTo writes the coefficients into dst, which must have length order+1.
// Apart from pooled scratch reuse it is identical to Burg.
func BurgTo(dst, samples []float64, order int) error {
	if err := validate(samples, order); err != nil {
		return err
	}
	if len(dst) != order+1 {
		return fmt.Errorf("lpc: destination length %d, want %d: %w", len(dst), order+1, core.ErrInvalidArgument)
	}

	burg(dst, nil, samples, order)
	return nil
}

func validate(samples []float64, order int) error {
	if len(samples) == 0 {
		return fmt.Errorf("lpc: samples must not be empty: %w", core.ErrInvalidArgument)
	}
	if order < 1 {
		return fmt.Errorf("lpc: order must be >= 1: %d: %w", order, core.ErrInvalidArgument)
	}
	if order >= len(samples) {
		return fmt.Errorf("lpc: order %d must be below signal length %d: %w", order, len(samples), core.ErrInvalidArgument)
	}
	return nil
}

// burg runs the recursion. a has length order+1; refl is optional.
func burg(a, refl, samples []float64, order int) {
	n := len(samples)
	s := getScratch(n, order)
	defer scratchPool.Put(s)

	ef, eb := s.ef, s.eb
	copy(ef, samples)
	copy(eb, samples)

	core.Zero(a)
	a[0] = 1
	if refl != nil {
		core.Zero(refl)
	}

	for m := 1; m <= order; m++ {
		fwd := ef[m:n]
		bwd := eb[m-1 : n-1]

		var num, den float64
		for i, f := range fwd {
			num += f * bwd[i]
		}
		for i, f := range fwd {
			b := bwd[i]
			den += f*f + b*b
		}

		if den <= MinErrorEnergy {
			return
		}

		k := -2 * num / den
		if refl != nil {
			refl[m-1] = k
		}

		prev := s.prev[:m]
		copy(prev, a[:m])
		a[m] = k
		for i := 1; i < m; i++ {
			a[i] = prev[i] + k*prev[m-i]
		}

		// Both deltas come from the pre-update errors.
		df := s.df[:len(fwd)]
		db := s.db[:len(fwd)]
		vecmath.ScaleBlock(df, bwd, k)
		vecmath.ScaleBlock(db, fwd, k)
		vecmath.AddBlockInPlace(fwd, df)
		vecmath.AddBlockInPlace(bwd, db)
	}
}
