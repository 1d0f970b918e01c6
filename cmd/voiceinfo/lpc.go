package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-voice/dsp/core"
	"github.com/cwbudde/algo-voice/dsp/lpc"
)

type lpcReport struct {
	Order        int       `yaml:"order"`
	Coefficients []float64 `yaml:"coefficients"`
	Reflection   []float64 `yaml:"reflection"`
}

func newLPCCmd(a *app) *cobra.Command {
	var (
		order       int
		preEmphasis float64
	)

	cmd := &cobra.Command{
		Use:   "lpc",
		Short: "Burg LPC coefficients of the signal",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			sig, err := a.signal.build()
			if err != nil {
				return err
			}
			if preEmphasis != 0 {
				sig = lpc.PreEmphasis(sig, preEmphasis)
			}

			coeffs, refl, err := lpc.BurgReflection(sig, order)
			if err != nil {
				return err
			}
			a.logger.Debug("lpc estimated", zap.Int("order", order), zap.Int("samples", len(sig)))

			report := lpcReport{Order: order, Coefficients: coeffs, Reflection: refl}
			return a.render(report, func(w io.Writer) error {
				return writeLine(w, core.FormatVector(coeffs))
			})
		},
	}

	cmd.Flags().IntVar(&order, "order", 12, "LPC order")
	cmd.Flags().Float64Var(&preEmphasis, "pre-emphasis", 0, "pre-emphasis coefficient, 0 disables")
	return cmd
}
