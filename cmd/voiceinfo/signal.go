package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-voice/dsp/noise"
)

// signalFlags describe the synthetic input shared by all subcommands.
type signalFlags struct {
	sampleRate float64
	length     int
	tones      []string
	noiseSeed  uint32
	noiseScale float64
}

func (s *signalFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&s.sampleRate, "sample-rate", 12000, "sample rate in Hz")
	fs.IntVar(&s.length, "length", 512, "signal length in samples")
	fs.StringSliceVar(&s.tones, "tone", []string{"200:1"}, "sine tones as freq:amplitude, comma separated")
	fs.Uint32Var(&s.noiseSeed, "noise-seed", 1234, "seed of the additive Gaussian noise")
	fs.Float64Var(&s.noiseScale, "noise-scale", 0, "standard deviation of the additive noise")
}

// build renders the sum of all tones, accumulated in flag order, plus
// noiseScale times the Gaussian sequence from noiseSeed.
func (s *signalFlags) build() ([]float64, error) {
	if s.sampleRate <= 0 || math.IsNaN(s.sampleRate) || math.IsInf(s.sampleRate, 0) {
		return nil, fmt.Errorf("sample rate must be > 0, got %v", s.sampleRate)
	}
	if s.length <= 0 {
		return nil, fmt.Errorf("length must be > 0, got %d", s.length)
	}

	out := make([]float64, s.length)
	for _, tone := range s.tones {
		freq, amp, err := parsePair(tone)
		if err != nil {
			return nil, fmt.Errorf("tone %q: %w", tone, err)
		}
		for i := range out {
			out[i] += amp * math.Sin(2*math.Pi*freq*(float64(i)/s.sampleRate))
		}
	}

	if s.noiseScale != 0 {
		noise.AddScaled(out, s.noiseSeed, s.noiseScale)
	}
	return out, nil
}

// parsePair parses "a:b" into two floats.
func parsePair(s string) (float64, float64, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, fmt.Errorf("want a:b, got %q", s)
	}

	a, err := strconv.ParseFloat(left, 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseFloat(right, 64)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
