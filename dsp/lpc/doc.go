// Package lpc estimates autoregressive (linear prediction) coefficients.
//
// The estimator is Burg's recursion: forward and backward prediction errors
// are refined stage by stage and each stage contributes one reflection
// coefficient. The returned polynomial is
//
//	A(z) = 1 + a1*z^-1 + ... + ap*z^-p
//
// stored as [1, a1, ..., ap]. Element 0 is always exactly 1.
//
// When the combined error energy of a stage drops to 1e-12 or below the
// recursion stops and every remaining coefficient stays 0. This is not
// reported as an error; callers analysing silence or a constant signal get a
// truncated predictor such as [1, -1, 0, 0].
package lpc
