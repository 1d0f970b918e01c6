// Package core holds numeric helpers, argument errors, and configuration
// shared by the analysis kernels.
package core

import (
	"errors"
	"math"
)

const defaultEpsilon = 1e-12

// ErrInvalidArgument is wrapped by every kernel that rejects a malformed
// parameter. Use errors.Is to detect it.
var ErrInvalidArgument = errors.New("invalid argument")

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// PositiveFinite reports whether x is a finite value strictly above zero.
func PositiveFinite(x float64) bool {
	return IsFinite(x) && x > 0
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// This can reduce denormal-related CPU slowdowns in hot DSP loops.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}
