package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-voice/dsp/core"
	"github.com/cwbudde/algo-voice/dsp/noise"
)

func newNoiseCmd(a *app) *cobra.Command {
	var (
		seed  uint32
		count int
	)

	cmd := &cobra.Command{
		Use:   "noise",
		Short: "Deterministic Gaussian noise samples",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if count < 0 {
				return fmt.Errorf("count must be >= 0, got %d", count)
			}

			samples := noise.GaussianSlice(seed, count)
			if samples == nil {
				samples = []float64{}
			}
			return a.render(samples, func(w io.Writer) error {
				return writeLine(w, core.FormatVector(samples))
			})
		},
	}

	cmd.Flags().Uint32Var(&seed, "seed", 1234, "generator seed")
	cmd.Flags().IntVar(&count, "count", 8, "number of samples")
	return cmd
}
