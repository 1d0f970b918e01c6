package core

// FrameConfig describes how an in-memory signal is cut into analysis frames.
type FrameConfig struct {
	SampleRate float64
	FrameSize  int
	HopSize    int
}

// FrameOption mutates a FrameConfig.
type FrameOption func(*FrameConfig)

// DefaultFrameConfig returns 12 kHz analysis with 512-sample frames and
// half-frame hop.
func DefaultFrameConfig() FrameConfig {
	return FrameConfig{
		SampleRate: 12000,
		FrameSize:  512,
		HopSize:    256,
	}
}

// WithSampleRate sets the analysis sample rate.
func WithSampleRate(sampleRate float64) FrameOption {
	return func(cfg *FrameConfig) {
		if PositiveFinite(sampleRate) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFrameSize sets the analysis frame length in samples.
func WithFrameSize(frameSize int) FrameOption {
	return func(cfg *FrameConfig) {
		if frameSize > 0 {
			cfg.FrameSize = frameSize
		}
	}
}

// WithHopSize sets the distance between consecutive frame starts.
func WithHopSize(hopSize int) FrameOption {
	return func(cfg *FrameConfig) {
		if hopSize > 0 {
			cfg.HopSize = hopSize
		}
	}
}

// ApplyFrameOptions applies zero or more options to the default config.
func ApplyFrameOptions(opts ...FrameOption) FrameConfig {
	cfg := DefaultFrameConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
