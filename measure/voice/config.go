package voice

import (
	"fmt"
	"runtime"

	"github.com/cwbudde/algo-voice/dsp/core"
	"github.com/cwbudde/algo-voice/dsp/pitch"
	"github.com/cwbudde/algo-voice/dsp/window"
)

const (
	defaultOrder        = 12
	defaultMinFormantHz = 90.0
	defaultMaxFormantHz = 5500.0
)

// Config holds analysis parameters. Zero fields take defaults.
type Config struct {
	SampleRate float64
	FrameSize  int
	HopSize    int

	// Order is the LPC order.
	Order int
	// PreEmphasis is applied before LPC analysis only; 0 disables it.
	PreEmphasis float64
	// Window tapers the LPC input after pre-emphasis. The zero value
	// leaves frames untouched.
	Window window.Type

	MinFormantHz float64
	MaxFormantHz float64

	MinPitchHz     float64
	MaxPitchHz     float64
	PitchThreshold float64
	FFTDifference  bool

	// Workers bounds the number of frames analysed concurrently.
	Workers int
}

func normalizeConfig(cfg Config) Config {
	frames := core.ApplyFrameOptions(
		core.WithFrameSize(cfg.FrameSize),
		core.WithHopSize(cfg.HopSize),
	)
	if cfg.HopSize <= 0 {
		frames.HopSize = max(1, frames.FrameSize/2)
	}
	cfg.FrameSize, cfg.HopSize = frames.FrameSize, frames.HopSize

	// Non-finite rates are left for validateConfig to reject.
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = frames.SampleRate
	}

	if cfg.Order <= 0 {
		cfg.Order = defaultOrder
	}

	if cfg.MinFormantHz <= 0 {
		cfg.MinFormantHz = defaultMinFormantHz
	}

	if cfg.MaxFormantHz <= 0 {
		cfg.MaxFormantHz = defaultMaxFormantHz
	}

	if cfg.MinPitchHz <= 0 {
		cfg.MinPitchHz = pitch.DefaultMinHz
	}

	if cfg.MaxPitchHz <= 0 {
		cfg.MaxPitchHz = pitch.DefaultMaxHz
	}

	if cfg.PitchThreshold <= 0 {
		cfg.PitchThreshold = pitch.DefaultThreshold
	}

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	return cfg
}

func validateConfig(cfg Config) error {
	if !core.PositiveFinite(cfg.SampleRate) {
		return fmt.Errorf("voice: sample rate must be > 0: %v: %w", cfg.SampleRate, core.ErrInvalidArgument)
	}
	if cfg.Order >= cfg.FrameSize {
		return fmt.Errorf("voice: order %d must be below frame size %d: %w", cfg.Order, cfg.FrameSize, core.ErrInvalidArgument)
	}
	if cfg.PreEmphasis < 0 || cfg.PreEmphasis >= 1 {
		return fmt.Errorf("voice: pre-emphasis must be in [0, 1): %v: %w", cfg.PreEmphasis, core.ErrInvalidArgument)
	}
	if _, err := window.ParseType(cfg.Window.String()); err != nil {
		return fmt.Errorf("voice: %w", err)
	}
	return nil
}
