// Package formant converts between resonances and prediction polynomials.
//
// Resonance builds the second-order all-pole section of one resonance and
// Convolve multiplies sections into a higher-order polynomial. Extract goes
// the other way: it finds every root of an LPC polynomial, keeps the
// upper-half-plane poles that look like vocal-tract resonances and reports
// them as (frequency, bandwidth) pairs sorted by frequency.
//
// Root finding is delegated to a RootSolver. The default, CompanionSolver,
// takes the eigenvalues of the companion matrix; DurandKernerSolver iterates
// all roots simultaneously and needs no linear algebra.
package formant
