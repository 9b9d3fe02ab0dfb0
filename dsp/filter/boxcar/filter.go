package boxcar

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

// Filter is a running-sum moving average over a fixed window.
type Filter struct {
	data  [core.MaxWindowSize]float64
	sum   float64
	size  uint8
	index uint8
}

// New creates a boxcar filter over the last size samples.
// size must be in [1, core.MaxWindowSize].
func New(size int) (*Filter, error) {
	if err := core.ValidateWindowSize(size); err != nil {
		return nil, fmt.Errorf("boxcar: %w", err)
	}
	return &Filter{size: uint8(size)}, nil
}

// ProcessSample replaces the oldest sample in the window with x and returns
// the mean of the window.
//
//	sum = sum - x[n-size] + x[n]
//	y[n] = sum / size
func (f *Filter) ProcessSample(x float64) float64 {
	if f.size == 0 {
		panic("boxcar: ProcessSample on released or uninitialized filter")
	}
	f.sum = f.sum - f.data[f.index] + x
	f.data[f.index] = x
	f.index++
	if f.index == f.size {
		f.index = 0
	}
	return f.sum / float64(f.size)
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

// Reset clears the window and the running sum.
func (f *Filter) Reset() {
	core.Zero(f.data[:f.size])
	f.sum = 0
	f.index = 0
}

// Release drops the filter state. Further calls to ProcessSample panic.
// Release is idempotent.
func (f *Filter) Release() {
	*f = Filter{}
}

// Size returns the window length.
func (f *Filter) Size() int {
	return int(f.size)
}

// Sum returns the running sum of the samples currently in the window.
func (f *Filter) Sum() float64 {
	return f.sum
}
