package voice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-voice/dsp/formant"
	"github.com/cwbudde/algo-voice/dsp/lpc"
	"github.com/cwbudde/algo-voice/dsp/pitch"
	"github.com/cwbudde/algo-voice/dsp/window"
	"github.com/cwbudde/algo-voice/stats/frame"
)

// ErrSignalTooShort is returned when a signal holds less than one frame.
var ErrSignalTooShort = errors.New("voice: signal shorter than one frame")

// FrameResult is the analysis of one frame.
type FrameResult struct {
	Index        int               `yaml:"index"`
	Start        int               `yaml:"start"`
	Time         float64           `yaml:"time"`
	Level        frame.Level       `yaml:"level"`
	Coefficients []float64         `yaml:"coefficients"`
	Formants     []formant.Formant `yaml:"formants"`
	Pitch        pitch.Estimate    `yaml:"pitch"`
}

// Analyzer runs the per-frame pipeline. It holds only immutable
// configuration and is safe for concurrent use.
type Analyzer struct {
	cfg      Config
	detector *pitch.Detector
	window   []float64
	logger   *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for batch progress. The default is a no-op
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAnalyzer fills defaults into cfg, validates it and builds an Analyzer.
func NewAnalyzer(cfg Config, opts ...Option) (*Analyzer, error) {
	cfg = normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	det, err := pitch.NewDetector(cfg.SampleRate,
		pitch.WithRange(cfg.MinPitchHz, cfg.MaxPitchHz),
		pitch.WithThreshold(cfg.PitchThreshold),
		pitch.WithFFTDifference(cfg.FFTDifference),
	)
	if err != nil {
		return nil, fmt.Errorf("voice: %w", err)
	}

	a := &Analyzer{
		cfg:      cfg,
		detector: det,
		window:   window.Generate(cfg.Window, cfg.FrameSize),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a, nil
}

// Config returns the effective configuration.
func (a *Analyzer) Config() Config { return a.cfg }

// AnalyzeFrame analyses a single frame. Pre-emphasis and the window only
// shape the LPC input; pitch and level use the raw samples.
func (a *Analyzer) AnalyzeFrame(samples []float64) (FrameResult, error) {
	if len(samples) <= a.cfg.Order {
		return FrameResult{}, fmt.Errorf("voice: frame of %d samples too short for order %d: %w", len(samples), a.cfg.Order, ErrSignalTooShort)
	}

	lpcInput, err := a.lpcInput(samples)
	if err != nil {
		return FrameResult{}, err
	}

	coeffs, err := lpc.Burg(lpcInput, a.cfg.Order)
	if err != nil {
		return FrameResult{}, err
	}

	formants, err := formant.Extract(coeffs, a.cfg.SampleRate, a.cfg.MinFormantHz, a.cfg.MaxFormantHz)
	if err != nil {
		return FrameResult{}, err
	}

	est, err := a.detector.Estimate(samples)
	if err != nil {
		return FrameResult{}, err
	}

	return FrameResult{
		Level:        frame.Measure(samples),
		Coefficients: coeffs,
		Formants:     formants,
		Pitch:        est,
	}, nil
}

// AnalyzeFrames analyses frames concurrently. The result slice is index
// aligned with frames. The first error cancels the remaining work.
func (a *Analyzer) AnalyzeFrames(ctx context.Context, frames [][]float64) ([]FrameResult, error) {
	results := make([]FrameResult, len(frames))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)

	for i, samples := range frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := a.AnalyzeFrame(samples)
			if err != nil {
				return fmt.Errorf("voice: frame %d: %w", i, err)
			}
			res.Index = i
			results[i] = res

			a.logger.Debug("frame analysed",
				zap.Int("frame", i),
				zap.Int("formants", len(res.Formants)),
				zap.Stringer("pitch", res.Pitch),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		a.logger.Warn("frame batch failed", zap.Error(err))
		return nil, err
	}

	a.logger.Info("frame batch analysed",
		zap.Int("frames", len(frames)),
		zap.Int("workers", a.cfg.Workers),
	)
	return results, nil
}

// Analyze cuts signal into frames of FrameSize every HopSize samples and
// analyses them. Start and Time of each result refer to the frame start.
func (a *Analyzer) Analyze(ctx context.Context, signal []float64) ([]FrameResult, error) {
	frames, err := Frames(signal, a.cfg.FrameSize, a.cfg.HopSize)
	if err != nil {
		return nil, err
	}

	results, err := a.AnalyzeFrames(ctx, frames)
	if err != nil {
		return nil, err
	}

	for i := range results {
		results[i].Start = i * a.cfg.HopSize
		results[i].Time = float64(results[i].Start) / a.cfg.SampleRate
	}
	return results, nil
}

// Frames returns the full frames of signal of length size starting every hop
// samples. Frames share memory with signal; a trailing partial frame is
// dropped.
func Frames(signal []float64, size, hop int) ([][]float64, error) {
	if size <= 0 || hop <= 0 {
		return nil, fmt.Errorf("voice: frame size %d and hop %d must be > 0", size, hop)
	}
	if len(signal) < size {
		return nil, ErrSignalTooShort
	}

	count := (len(signal)-size)/hop + 1
	frames := make([][]float64, count)
	for i := range frames {
		start := i * hop
		frames[i] = signal[start : start+size : start+size]
	}
	return frames, nil
}

// lpcInput returns the pre-emphasised and windowed copy of samples, or
// samples itself when both stages are disabled.
func (a *Analyzer) lpcInput(samples []float64) ([]float64, error) {
	out := samples
	if a.cfg.PreEmphasis > 0 {
		out = lpc.PreEmphasis(samples, a.cfg.PreEmphasis)
	}
	if a.cfg.Window == window.TypeRectangular {
		return out, nil
	}

	w := a.window
	if len(w) != len(samples) {
		w = window.Generate(a.cfg.Window, len(samples))
	}

	dst := make([]float64, len(samples))
	if err := window.Apply(dst, out, w); err != nil {
		return nil, err
	}
	return dst, nil
}
