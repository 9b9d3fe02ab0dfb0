package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

// Generator creates deterministic test signals for smoother evaluation.
type Generator struct {
	cfg  core.AnalysisConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.AnalysisOption) *Generator {
	return &Generator{
		cfg:  core.ApplyAnalysisOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.AnalysisOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Config returns the generator configuration.
func (g *Generator) Config() core.AnalysisConfig {
	return g.cfg
}

// Sine generates a sine wave at the configured sample rate.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Spiky generates a constant baseline with impulsive sensor noise: every
// period-th sample (starting at index 0) adds an integer spike drawn
// uniformly from [0, spikeMax).
func (g *Generator) Spiky(base float64, spikeMax, period, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("spiky samples must be > 0: %d", samples)
	}
	if spikeMax <= 0 {
		return nil, fmt.Errorf("spiky spike max must be > 0: %d", spikeMax)
	}
	if period <= 0 {
		return nil, fmt.Errorf("spiky period must be > 0: %d", period)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = base
		if i%period == 0 {
			out[i] += float64(rng.Intn(spikeMax))
		}
	}
	return out, nil
}
