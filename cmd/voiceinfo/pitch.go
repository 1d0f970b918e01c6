package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-voice/dsp/pitch"
)

func newPitchCmd(a *app) *cobra.Command {
	var (
		fmin, fmax float64
		threshold  float64
		useFFT     bool
	)

	cmd := &cobra.Command{
		Use:   "pitch",
		Short: "YIN pitch estimate of the signal",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			sig, err := a.signal.build()
			if err != nil {
				return err
			}

			det, err := pitch.NewDetector(a.signal.sampleRate,
				pitch.WithRange(fmin, fmax),
				pitch.WithThreshold(threshold),
				pitch.WithFFTDifference(useFFT),
			)
			if err != nil {
				return err
			}

			est, err := det.Estimate(sig)
			if err != nil {
				return err
			}

			return a.render(est, func(w io.Writer) error {
				return writeLine(w, est.String())
			})
		},
	}

	fs := cmd.Flags()
	fs.Float64Var(&fmin, "fmin", pitch.DefaultMinHz, "lowest detectable frequency")
	fs.Float64Var(&fmax, "fmax", pitch.DefaultMaxHz, "highest detectable frequency")
	fs.Float64Var(&threshold, "threshold", pitch.DefaultThreshold, "CMND threshold in (0, 1)")
	fs.BoolVar(&useFFT, "fft", false, "compute the difference function via FFT autocorrelation")
	return cmd
}
