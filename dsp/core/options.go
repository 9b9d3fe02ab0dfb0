package core

// AnalysisConfig defines settings for offline analysis of a smoother.
type AnalysisConfig struct {
	// SampleRate is the sensor sample rate in Hz used to label frequency bins.
	SampleRate float64
	// FFTSize is the number of impulse-response samples captured and
	// transformed. It must be a power of two.
	FFTSize int
	// Preroll is the number of zero samples fed before the impulse so that
	// warm-up behavior does not leak into the measured response.
	Preroll int
}

// AnalysisOption mutates an AnalysisConfig.
type AnalysisOption func(*AnalysisConfig)

// DefaultAnalysisConfig returns defaults suited to low-rate sensor streams.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		SampleRate: 100,
		FFTSize:    512,
		Preroll:    MaxWindowSize,
	}
}

// WithSampleRate sets the analysis sample rate.
func WithSampleRate(sampleRate float64) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFFTSize sets the analysis length. Values that are not a positive
// power of two are ignored.
func WithFFTSize(n int) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		if n > 0 && n&(n-1) == 0 {
			cfg.FFTSize = n
		}
	}
}

// WithPreroll sets the number of zero samples fed before the impulse.
func WithPreroll(n int) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		if n >= 0 {
			cfg.Preroll = n
		}
	}
}

// ApplyAnalysisOptions applies zero or more options to the default config.
func ApplyAnalysisOptions(opts ...AnalysisOption) AnalysisConfig {
	cfg := DefaultAnalysisConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
