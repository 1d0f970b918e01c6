// Package noise provides a reproducible Gaussian noise source.
//
// The generator is a 32-bit linear congruential generator feeding the
// Box-Muller transform. Its entire state is one uint32 that is either passed
// and returned explicitly (NextUniform) or owned by an LCG value; nothing is
// global, so identical seeds give bit-identical output on every platform.
package noise

import (
	"iter"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	twoPow32      = 4294967296.0
)

// NextUniform advances state once and returns the new state together with a
// uniform value in (0, 1]. The value is (state+1)/2^32, which is never zero,
// so it is always a valid argument for log.
func NextUniform(state uint32) (uint32, float64) {
	state = state*lcgMultiplier + lcgIncrement
	return state, (float64(state) + 1) / twoPow32
}

// NextGaussian consumes two uniforms from state and returns the advanced
// state and one standard normal sample sqrt(-2 ln u1) * sin(2 pi u2).
func NextGaussian(state uint32) (uint32, float64) {
	state, u1 := NextUniform(state)
	state, u2 := NextUniform(state)
	return state, math.Sqrt(-2*math.Log(u1)) * math.Sin(2*math.Pi*u2)
}

// LCG owns a single generator state. The zero value is seeded with 0.
// An LCG must not be shared between goroutines.
type LCG struct {
	state uint32
}

// NewLCG returns a generator starting at seed.
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// State returns the current generator state.
func (g *LCG) State() uint32 { return g.state }

// Uniform returns the next uniform value in (0, 1].
func (g *LCG) Uniform() float64 {
	var u float64
	g.state, u = NextUniform(g.state)
	return u
}

// Gaussian returns the next standard normal sample.
func (g *LCG) Gaussian() float64 {
	var z float64
	g.state, z = NextGaussian(g.state)
	return z
}

// Gaussian returns a lazy sequence of n standard normal samples. Every range
// over the returned sequence restarts from seed and yields the same values.
func Gaussian(seed uint32, n int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		state := seed
		for range n {
			var z float64
			state, z = NextGaussian(state)
			if !yield(z) {
				return
			}
		}
	}
}

// GaussianSlice materialises Gaussian(seed, n). It returns nil for n <= 0.
func GaussianSlice(seed uint32, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, 0, n)
	for z := range Gaussian(seed, n) {
		out = append(out, z)
	}
	return out
}

// AddScaled adds scale times len(dst) Gaussian samples from seed to dst in
// place, which is how noisy test signals are built: x + scale*noise.
func AddScaled(dst []float64, seed uint32, scale float64) {
	if len(dst) == 0 {
		return
	}
	n := GaussianSlice(seed, len(dst))
	vecmath.ScaleBlock(n, n, scale)
	vecmath.AddBlockInPlace(dst, n)
}
