package voice

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-voice/dsp/formant"
)

// Summary aggregates a batch of frame results.
type Summary struct {
	Frames       int     `yaml:"frames"`
	VoicedFrames int     `yaml:"voiced_frames"`
	MeanPitch    float64 `yaml:"mean_pitch"`
	MedianPitch  float64 `yaml:"median_pitch"`
	PitchStdDev  float64 `yaml:"pitch_stddev"`
	// MeanFormants[k] averages the k-th lowest formant over the frames that
	// report at least k+1 formants.
	MeanFormants []formant.Formant `yaml:"mean_formants"`
}

// Summarize computes pitch statistics over voiced frames and per-rank
// formant means.
func Summarize(results []FrameResult) Summary {
	s := Summary{Frames: len(results)}

	var pitches []float64
	var freqs, bws [][]float64
	for _, r := range results {
		if hz, ok := r.Pitch.Hz(); ok {
			pitches = append(pitches, hz)
		}
		for k, f := range r.Formants {
			if k == len(freqs) {
				freqs = append(freqs, nil)
				bws = append(bws, nil)
			}
			freqs[k] = append(freqs[k], f.Frequency)
			bws[k] = append(bws[k], f.Bandwidth)
		}
	}

	s.VoicedFrames = len(pitches)
	if len(pitches) > 0 {
		s.MeanPitch, s.PitchStdDev = stat.MeanStdDev(pitches, nil)
		if len(pitches) < 2 {
			s.PitchStdDev = 0
		}
		slices.Sort(pitches)
		s.MedianPitch = stat.Quantile(0.5, stat.Empirical, pitches, nil)
	}

	s.MeanFormants = make([]formant.Formant, len(freqs))
	for k := range freqs {
		s.MeanFormants[k] = formant.Formant{
			Frequency: stat.Mean(freqs[k], nil),
			Bandwidth: stat.Mean(bws[k], nil),
		}
	}
	return s
}
