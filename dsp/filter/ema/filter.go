// Package ema provides a single-pole exponential moving average smoother.
package ema

import (
	"errors"
	"fmt"
)

// ErrInvalidAlpha is returned for smoothing coefficients outside (0, 1].
var ErrInvalidAlpha = errors.New("invalid ema alpha")

// Filter is an exponential moving average with O(1) state.
//
//	y[0] = x[0]
//	y[n] = alpha*x[n] + (1-alpha)*y[n-1]
//
// The first sample passes through unchanged so the output does not start
// biased toward zero.
type Filter struct {
	alpha float64
	prev  float64
	warm  bool
}

// New creates an EMA filter. alpha must be in (0, 1]; alpha = 1 disables
// smoothing.
func New(alpha float64) (*Filter, error) {
	if !(alpha > 0 && alpha <= 1) {
		return nil, fmt.Errorf("ema: %w: %v not in (0,1]", ErrInvalidAlpha, alpha)
	}
	return &Filter{alpha: alpha}, nil
}

// ProcessSample blends x into the running average and returns it.
func (f *Filter) ProcessSample(x float64) float64 {
	if !f.warm {
		f.prev = x
		f.warm = true
		return f.prev
	}
	f.prev = f.alpha*x + (1-f.alpha)*f.prev
	return f.prev
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. dst must be at least as long as src.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	dst = dst[:len(src)]
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset forgets the running average; the next sample passes through.
func (f *Filter) Reset() {
	f.prev = 0
	f.warm = false
}

// Release is a no-op. The filter owns no buffers.
func (f *Filter) Release() {}

// Alpha returns the smoothing coefficient.
func (f *Filter) Alpha() float64 {
	return f.alpha
}

// Warm reports whether at least one sample has been processed.
func (f *Filter) Warm() bool {
	return f.warm
}

// Value returns the last output, or 0 before the first sample.
func (f *Filter) Value() float64 {
	return f.prev
}
