package lpc

// PreEmphasis returns y[i] = x[i] - coeff*x[i-1] with y[0] = x[0]. Typical
// coefficients are 0.9 to 0.97; coeff 0 returns a copy.
func PreEmphasis(samples []float64, coeff float64) []float64 {
	if len(samples) == 0 {
		return nil
	}

	out := make([]float64, len(samples))
	out[0] = samples[0]
	for i := 1; i < len(samples); i++ {
		out[i] = samples[i] - coeff*samples[i-1]
	}
	return out
}
