package gaussian

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/window"
)

// ErrInvalidSigma is returned for a non-positive or non-finite sigma.
var ErrInvalidSigma = window.ErrInvalidSigma

// Filter is a Gaussian-weighted moving average over a fixed window.
type Filter struct {
	kernel [core.MaxWindowSize]float64
	data   [core.MaxWindowSize]float64
	sigma  float64
	size   uint8
	index  uint8
	warm   bool
}

// New creates a Gaussian filter over the last size samples with spread sigma
// (in samples). size must be in [1, core.MaxWindowSize] and sigma > 0.
func New(size int, sigma float64) (*Filter, error) {
	if err := core.ValidateWindowSize(size); err != nil {
		return nil, fmt.Errorf("gaussian: %w", err)
	}
	f := &Filter{size: uint8(size), sigma: sigma}
	if err := window.GaussianKernelInto(f.kernel[:size], sigma); err != nil {
		return nil, fmt.Errorf("gaussian: %w", err)
	}
	return f, nil
}

// ProcessSample writes x into the window and returns the weighted sum.
func (f *Filter) ProcessSample(x float64) float64 {
	if f.size == 0 {
		panic("gaussian: ProcessSample on released or uninitialized filter")
	}
	n := int(f.size)
	w := int(f.index)

	f.data[w] = x
	if w == n-1 {
		f.warm = true
	}

	var y float64
	if f.warm {
		p := w
		for k := range n {
			y += f.kernel[k] * f.data[p]
			p++
			if p == n {
				p = 0
			}
		}
	} else {
		for k := 0; k <= w; k++ {
			y += f.kernel[k] * f.data[k]
		}
	}

	f.index++
	if f.index == f.size {
		f.index = 0
	}
	return y
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

// Reset clears the window and the warm-up latch. The kernel is kept.
func (f *Filter) Reset() {
	core.Zero(f.data[:f.size])
	f.index = 0
	f.warm = false
}

// Release drops the kernel and window. Further calls to ProcessSample panic.
// Release is idempotent.
func (f *Filter) Release() {
	*f = Filter{}
}

// Size returns the window length.
func (f *Filter) Size() int {
	return int(f.size)
}

// Sigma returns the kernel spread in samples.
func (f *Filter) Sigma() float64 {
	return f.sigma
}

// Warm reports whether the window has been filled at least once.
func (f *Filter) Warm() bool {
	return f.warm
}

// Kernel returns a copy of the normalized kernel.
func (f *Filter) Kernel() []float64 {
	k := make([]float64, f.size)
	copy(k, f.kernel[:f.size])
	return k
}
