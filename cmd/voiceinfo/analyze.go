package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-voice/dsp/formant"
	"github.com/cwbudde/algo-voice/dsp/window"
	"github.com/cwbudde/algo-voice/measure/voice"
)

type analyzeReport struct {
	Frames  []voice.FrameResult `yaml:"frames"`
	Summary voice.Summary       `yaml:"summary"`
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		cfg        voice.Config
		windowName string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Frame-by-frame LPC, formant and pitch analysis of the signal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sig, err := a.signal.build()
			if err != nil {
				return err
			}

			wt, err := window.ParseType(windowName)
			if err != nil {
				return err
			}
			cfg.Window = wt
			cfg.SampleRate = a.signal.sampleRate
			analyzer, err := voice.NewAnalyzer(cfg, voice.WithLogger(a.logger))
			if err != nil {
				return err
			}

			results, err := analyzer.Analyze(cmd.Context(), sig)
			if err != nil {
				return err
			}

			report := analyzeReport{Frames: results, Summary: voice.Summarize(results)}
			return a.render(report, func(w io.Writer) error {
				return writeAnalysis(w, report)
			})
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&cfg.FrameSize, "frame-size", 512, "frame length in samples")
	fs.IntVar(&cfg.HopSize, "hop-size", 256, "hop between frame starts in samples")
	fs.IntVar(&cfg.Order, "order", 12, "LPC order")
	fs.Float64Var(&cfg.PreEmphasis, "pre-emphasis", 0, "pre-emphasis coefficient, 0 disables")
	fs.StringVar(&windowName, "window", "none", "LPC analysis window (none, hann, hamming, blackman)")
	fs.Float64Var(&cfg.MinFormantHz, "min-hz", 90, "lowest accepted formant frequency")
	fs.Float64Var(&cfg.MaxFormantHz, "max-hz", 5500, "highest accepted formant frequency")
	fs.Float64Var(&cfg.MinPitchHz, "fmin", 50, "lowest detectable pitch")
	fs.Float64Var(&cfg.MaxPitchHz, "fmax", 500, "highest detectable pitch")
	fs.Float64Var(&cfg.PitchThreshold, "threshold", 0.15, "CMND threshold in (0, 1)")
	fs.BoolVar(&cfg.FFTDifference, "fft", false, "compute the YIN difference function via FFT")
	fs.IntVar(&cfg.Workers, "workers", 0, "concurrent frames, 0 uses GOMAXPROCS")
	return cmd
}

func writeAnalysis(w io.Writer, r analyzeReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Frame\tTime [s]\tRMS [dB]\tZCR\tPitch\tFormants\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t--------\t--------\t---\t-----\t--------\n"); err != nil {
		return err
	}

	for _, f := range r.Frames {
		if _, err := fmt.Fprintf(tw, "%d\t%.4f\t%.2f\t%.3f\t%s\t%s\n",
			f.Index, f.Time, f.Level.RMSdB, f.Level.ZeroCrossingRate, f.Pitch, formantList(f.Formants)); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := r.Summary
	_, err := fmt.Fprintf(w, "\nvoiced %d/%d, pitch mean %.3f Hz, median %.3f Hz, stddev %.3f Hz\n",
		s.VoicedFrames, s.Frames, s.MeanPitch, s.MedianPitch, s.PitchStdDev)
	if err != nil {
		return err
	}
	return writeLine(w, "mean formants "+formatFormants(s.MeanFormants))
}

// formantList renders frequencies rounded to Hz, "-" when empty.
func formantList(formants []formant.Formant) string {
	if len(formants) == 0 {
		return "-"
	}
	parts := make([]string, len(formants))
	for i, f := range formants {
		parts[i] = strconv.FormatFloat(f.Frequency, 'f', 0, 64)
	}
	return strings.Join(parts, " ")
}
