package formant

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-voice/dsp/core"
)

// ErrEmptyPolynomial is returned when a polynomial has no coefficients.
var ErrEmptyPolynomial = errors.New("formant: empty polynomial")

// Resonance returns [1, -2r*cos(theta), r^2] with theta = 2*pi*freqHz/sampleRate
// and r = exp(-pi*bandwidthHz/sampleRate): the denominator of a single
// complex-conjugate pole pair.
func Resonance(freqHz, bandwidthHz, sampleRate float64) [3]float64 {
	theta := 2 * math.Pi * freqHz / sampleRate
	r := math.Exp(-math.Pi * bandwidthHz / sampleRate)
	return [3]float64{1, -2 * r * math.Cos(theta), r * r}
}

// Synthesize multiplies the resonance sections of all formants into one
// prediction polynomial. It is the inverse of Extract for well-separated
// formants inside the accepted range.
func Synthesize(formants []Formant, sampleRate float64) ([]float64, error) {
	if !core.PositiveFinite(sampleRate) {
		return nil, fmt.Errorf("formant: sample rate must be > 0: %v: %w", sampleRate, core.ErrInvalidArgument)
	}

	poly := []float64{1}
	for _, f := range formants {
		sec := Resonance(f.Frequency, f.Bandwidth, sampleRate)
		next, err := Convolve(poly, sec[:])
		if err != nil {
			return nil, err
		}
		poly = next
	}
	return poly, nil
}

// Convolve multiplies two polynomials given as coefficient slices. The result
// has length len(p)+len(q)-1.
func Convolve(p, q []float64) ([]float64, error) {
	if len(p) == 0 || len(q) == 0 {
		return nil, ErrEmptyPolynomial
	}

	out := make([]float64, len(p)+len(q)-1)
	convolveTo(out, p, q)
	return out, nil
}

// ConvolveAll multiplies any number of polynomials left to right.
func ConvolveAll(polys ...[]float64) ([]float64, error) {
	if len(polys) == 0 {
		return nil, ErrEmptyPolynomial
	}

	acc := polys[0]
	if len(acc) == 0 {
		return nil, ErrEmptyPolynomial
	}
	acc = append([]float64(nil), acc...)

	for _, p := range polys[1:] {
		next, err := Convolve(acc, p)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

func convolveTo(dst, p, q []float64) {
	core.Zero(dst)

	m := len(q)
	if m < 4 {
		for i, a := range p {
			for j, b := range q {
				dst[i+j] += a * b
			}
		}
		return
	}

	temp := make([]float64, m)
	for i, a := range p {
		vecmath.ScaleBlock(temp, q, a)
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}
