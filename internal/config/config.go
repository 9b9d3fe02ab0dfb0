// Package config holds the smoothing profile used by the demo command:
// filter parameters and the synthetic input it is run against.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

// Config is a smoothing profile. Zero-valued YAML fields keep their defaults.
type Config struct {
	Window     int     `yaml:"window"`
	Alpha      float64 `yaml:"alpha"`
	Sigma      float64 `yaml:"sigma"`
	Samples    int     `yaml:"samples"`
	Seed       int64   `yaml:"seed"`
	Base       float64 `yaml:"base"`
	SpikeMax   int     `yaml:"spike_max"`
	Period     int     `yaml:"period"`
	SampleRate float64 `yaml:"sample_rate"`
}

// Option mutates a Config.
type Option func(*Config)

// Default returns the reference profile: a 20-sample window, alpha 0.1,
// sigma 1, and 100 samples of baseline 10 with a spike of up to 20 on
// every 5th sample.
func Default() Config {
	return Config{
		Window:     20,
		Alpha:      0.1,
		Sigma:      1,
		Samples:    100,
		Seed:       1,
		Base:       10,
		SpikeMax:   20,
		Period:     5,
		SampleRate: 100,
	}
}

// WithWindow sets the window length of the windowed filters.
func WithWindow(n int) Option {
	return func(c *Config) { c.Window = n }
}

// WithAlpha sets the EMA smoothing coefficient.
func WithAlpha(alpha float64) Option {
	return func(c *Config) { c.Alpha = alpha }
}

// WithSigma sets the Gaussian spread.
func WithSigma(sigma float64) Option {
	return func(c *Config) { c.Sigma = sigma }
}

// WithSamples sets the synthetic input length.
func WithSamples(n int) Option {
	return func(c *Config) { c.Samples = n }
}

// WithSeed sets the noise seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// Apply applies opts to c in order.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
}

// Load reads a YAML profile from path on top of the defaults. opts are
// applied after decoding and before validation.
func Load(path string, opts ...Option) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw, opts...)
}

// Parse decodes a YAML profile on top of the defaults, applies opts and
// validates the result.
func Parse(raw []byte, opts ...Option) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Apply(opts...)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against the ranges the filters accept.
func (c Config) Validate() error {
	var errs []error
	if err := core.ValidateWindowSize(c.Window); err != nil {
		errs = append(errs, err)
	}
	if !(c.Alpha > 0 && c.Alpha <= 1) {
		errs = append(errs, fmt.Errorf("alpha must be in (0,1]: %v", c.Alpha))
	}
	if !(c.Sigma > 0) || !core.IsFinite(c.Sigma) {
		errs = append(errs, fmt.Errorf("sigma must be > 0: %v", c.Sigma))
	}
	if c.Samples <= 0 {
		errs = append(errs, fmt.Errorf("samples must be > 0: %d", c.Samples))
	}
	if c.SpikeMax <= 0 {
		errs = append(errs, fmt.Errorf("spike_max must be > 0: %d", c.SpikeMax))
	}
	if c.Period <= 0 {
		errs = append(errs, fmt.Errorf("period must be > 0: %d", c.Period))
	}
	if !(c.SampleRate > 0) {
		errs = append(errs, fmt.Errorf("sample_rate must be > 0: %v", c.SampleRate))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
