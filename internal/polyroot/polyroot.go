// Package polyroot finds the complete complex root set of real polynomials.
//
// Coefficients are given in descending power order, so c[0]*z^n + c[1]*z^(n-1)
// + ... + c[n]. An LPC vector [1, a1, ..., ap] is therefore the polynomial
// z^p + a1*z^(p-1) + ... + ap whose roots are the poles of 1/A(z).
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (all zero, non-finite, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// Companion returns all roots of coeff as the eigenvalues of its companion
// matrix. Leading zeros are dropped and trailing zeros contribute roots at
// the origin. A constant polynomial has no roots.
func Companion(coeff []float64) ([]complex128, error) {
	trimmed, zeros, err := trim(coeff)
	if err != nil {
		return nil, err
	}

	n := len(trimmed) - 1
	roots := make([]complex128, 0, n+zeros)
	if n > 0 {
		comp := mat.NewDense(n, n, nil)
		for j := 0; j < n; j++ {
			comp.Set(0, j, -trimmed[j+1]/trimmed[0])
		}
		for i := 1; i < n; i++ {
			comp.Set(i, i-1, 1)
		}

		var eig mat.Eigen
		if ok := eig.Factorize(comp, mat.EigenNone); !ok {
			return nil, ErrDegeneratePolynomial
		}
		roots = append(roots, eig.Values(nil)...)
	}

	for range zeros {
		roots = append(roots, 0)
	}

	return roots, nil
}

// RealDurandKerner is Companion's counterpart backed by DurandKerner. It
// applies the same zero trimming.
func RealDurandKerner(coeff []float64) ([]complex128, error) {
	trimmed, zeros, err := trim(coeff)
	if err != nil {
		return nil, err
	}

	roots := make([]complex128, 0, len(trimmed)-1+zeros)
	if len(trimmed) > 1 {
		c := make([]complex128, len(trimmed))
		for i, v := range trimmed {
			c[i] = complex(v, 0)
		}

		found, err := DurandKerner(c)
		if err != nil {
			return nil, err
		}
		roots = append(roots, found...)
	}

	for range zeros {
		roots = append(roots, 0)
	}

	return roots, nil
}

// trim strips leading zeros and counts trailing zeros (roots at the origin).
func trim(coeff []float64) ([]float64, int, error) {
	first, last := -1, -1
	for i, v := range coeff {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, 0, ErrDegeneratePolynomial
		}
		if v != 0 {
			if first < 0 {
				first = i
			}
			last = i
		}
	}

	if first < 0 {
		return nil, 0, ErrDegeneratePolynomial
	}

	return coeff[first : last+1], len(coeff) - 1 - last, nil
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			delta := PolyEval(norm, roots[i]) / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0

	for _, r := range roots {
		res := cmplx.Abs(PolyEval(norm, r))
		if res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}
