package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-voice/dsp/core"
	"github.com/cwbudde/algo-voice/dsp/formant"
	"github.com/cwbudde/algo-voice/dsp/lpc"
)

var solvers = map[string]formant.RootSolver{
	"companion":     formant.CompanionSolver,
	"durand-kerner": formant.DurandKernerSolver,
}

type formantReport struct {
	Coefficients []float64         `yaml:"coefficients"`
	Formants     []formant.Formant `yaml:"formants"`
}

func newFormantsCmd(a *app) *cobra.Command {
	var (
		order       int
		preEmphasis float64
		minHz       float64
		maxHz       float64
		solverName  string
		resonances  []string
	)

	cmd := &cobra.Command{
		Use:   "formants",
		Short: "Formants of the signal or of a synthesized resonance polynomial",
		Long: `Without --resonances the signal is analysed with Burg LPC and the
formants are read from the roots of the coefficient polynomial. With
--resonances freq:bandwidth pairs the polynomial is built by convolving the
second-order resonance sections instead.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			solver, ok := solvers[solverName]
			if !ok {
				return fmt.Errorf("unknown root solver %q (want companion or durand-kerner)", solverName)
			}

			coeffs, err := a.formantPolynomial(resonances, order, preEmphasis)
			if err != nil {
				return err
			}

			formants, err := formant.Extract(coeffs, a.signal.sampleRate, minHz, maxHz, formant.WithRootSolver(solver))
			if err != nil {
				return err
			}
			a.logger.Debug("formants extracted",
				zap.String("solver", solverName),
				zap.Int("degree", len(coeffs)-1),
				zap.Int("formants", len(formants)),
			)

			report := formantReport{Coefficients: coeffs, Formants: formants}
			return a.render(report, func(w io.Writer) error {
				return writeLine(w, formatFormants(formants))
			})
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&order, "order", 12, "LPC order")
	fs.Float64Var(&preEmphasis, "pre-emphasis", 0, "pre-emphasis coefficient, 0 disables")
	fs.Float64Var(&minHz, "min-hz", 90, "lowest accepted formant frequency")
	fs.Float64Var(&maxHz, "max-hz", 5500, "highest accepted formant frequency")
	fs.StringVar(&solverName, "solver", "companion", "root solver (companion, durand-kerner)")
	fs.StringSliceVar(&resonances, "resonances", nil, "synthesize from freq:bandwidth pairs instead of the signal")
	return cmd
}

func (a *app) formantPolynomial(resonances []string, order int, preEmphasis float64) ([]float64, error) {
	if len(resonances) == 0 {
		sig, err := a.signal.build()
		if err != nil {
			return nil, err
		}
		if preEmphasis != 0 {
			sig = lpc.PreEmphasis(sig, preEmphasis)
		}
		return lpc.Burg(sig, order)
	}

	formants := make([]formant.Formant, len(resonances))
	for i, r := range resonances {
		freq, bw, err := parsePair(r)
		if err != nil {
			return nil, fmt.Errorf("resonance %q: %w", r, err)
		}
		formants[i] = formant.Formant{Frequency: freq, Bandwidth: bw}
	}
	return formant.Synthesize(formants, a.signal.sampleRate)
}

func formatFormants(formants []formant.Formant) string {
	pairs := make([][2]float64, len(formants))
	for i, f := range formants {
		pairs[i] = [2]float64{f.Frequency, f.Bandwidth}
	}
	return core.FormatPairs(pairs)
}
