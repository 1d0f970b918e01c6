package pitch

import "strconv"

// Estimate is the result of pitch detection. Frequency is meaningful only
// when Voiced is true.
type Estimate struct {
	Frequency float64
	Voiced    bool
}

// Unvoiced is returned for frames without a usable periodicity.
var Unvoiced = Estimate{}

// Hz returns the frequency and whether the frame was voiced.
func (e Estimate) Hz() (float64, bool) {
	return e.Frequency, e.Voiced
}

// String formats the estimate as "123.456 Hz" or "unvoiced".
func (e Estimate) String() string {
	if !e.Voiced {
		return "unvoiced"
	}
	return strconv.FormatFloat(e.Frequency, 'f', 3, 64) + " Hz"
}
