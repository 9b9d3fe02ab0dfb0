// Package response measures the frequency response of a streaming smoother
// from its impulse response.
//
// The measurement is exact for linear smoothers (boxcar, EMA, Gaussian).
// A median filter rejects a lone impulse entirely, so its measured response
// is zero; that is a property of the filter, not of the measurement.
package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

// Processor is a per-sample smoother.
type Processor interface {
	ProcessSample(x float64) float64
}

// Result holds the measured response of a smoother.
type Result struct {
	SampleRate float64
	// Impulse is the captured impulse response, FFTSize samples long.
	Impulse []float64
	// Magnitude holds |H(k)| for bins 0..FFTSize/2.
	Magnitude []float64
	// DCGain is |H(0)|.
	DCGain float64
	// CutoffHz is the first frequency where |H| drops below DCGain/sqrt(2),
	// linearly interpolated between bins. NaN if the response never drops
	// that far or DCGain is zero.
	CutoffHz float64
	// NoiseGain is sum(h^2): the output variance for unit-variance white
	// noise input.
	NoiseGain float64
}

var errNilProcessor = errors.New("response: nil processor")

// Impulse feeds preroll zeros into p, then a unit impulse followed by zeros,
// and returns the n outputs starting at the impulse.
func Impulse(p Processor, preroll, n int) []float64 {
	for range preroll {
		p.ProcessSample(0)
	}
	out := make([]float64, n)
	for i := range out {
		x := 0.0
		if i == 0 {
			x = 1
		}
		out[i] = p.ProcessSample(x)
	}
	return out
}

// Analyze measures the response of p. p is driven with the preroll and the
// impulse, so callers should pass a fresh instance.
func Analyze(p Processor, opts ...core.AnalysisOption) (Result, error) {
	if p == nil {
		return Result{}, errNilProcessor
	}
	cfg := core.ApplyAnalysisOptions(opts...)
	n := cfg.FFTSize

	h := Impulse(p, cfg.Preroll, n)

	in := make([]complex128, n)
	for i, v := range h {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("response: fft plan (n=%d): %w", n, err)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("response: fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	noise := 0.0
	for _, v := range h {
		noise += v * v
	}

	return Result{
		SampleRate: cfg.SampleRate,
		Impulse:    h,
		Magnitude:  mag,
		DCGain:     mag[0],
		CutoffHz:   cutoff(mag, cfg.SampleRate/float64(n)),
		NoiseGain:  noise,
	}, nil
}

// MagnitudeDB returns the magnitude response in dB relative to DC gain.
func (r Result) MagnitudeDB() []float64 {
	out := make([]float64, len(r.Magnitude))
	for i, m := range r.Magnitude {
		if r.DCGain == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = core.LinearToDB(m / r.DCGain)
	}
	return out
}

// NoiseReductionDB returns the white-noise power reduction in dB (positive
// means quieter output).
func (r Result) NoiseReductionDB() float64 {
	if r.NoiseGain <= 0 {
		return math.Inf(1)
	}
	return -10 * math.Log10(r.NoiseGain)
}

func cutoff(mag []float64, binHz float64) float64 {
	if len(mag) == 0 || mag[0] == 0 {
		return math.NaN()
	}
	threshold := mag[0] / math.Sqrt2
	for k := 1; k < len(mag); k++ {
		if mag[k] >= threshold {
			continue
		}
		prev := mag[k-1]
		t := core.Clamp((prev-threshold)/(prev-mag[k]), 0, 1)
		return (float64(k-1) + t) * binHz
	}
	return math.NaN()
}
