// Package median provides a streaming median (order-statistic) smoother.
//
// Each sample is written into a fixed circular window, the window is copied
// into a scratch array and sorted, and one element is selected by rank. The
// sort makes every step O(N log N), which dominates for large windows.
package median

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

// Filter is a median smoother over a fixed window.
//
// Once the window has been filled, the output is sorted[size/2]. For even
// sizes this is the upper of the two middle values; the two are never
// averaged.
//
// During warm-up the output is sorted[w/2], where w is the slot just written
// and sorted still contains the zero-filled slots that have not been written
// yet. Zeros therefore leak into early outputs. This matches the legacy
// firmware output and is kept on purpose.
type Filter struct {
	data    [core.MaxWindowSize]float64
	scratch [core.MaxWindowSize]float64
	size    uint8
	index   uint8
	warm    bool
}

// New creates a median filter over the last size samples.
// size must be in [1, core.MaxWindowSize].
func New(size int) (*Filter, error) {
	if err := core.ValidateWindowSize(size); err != nil {
		return nil, fmt.Errorf("median: %w", err)
	}
	return &Filter{size: uint8(size)}, nil
}

// ProcessSample writes x into the window and returns the selected order
// statistic.
func (f *Filter) ProcessSample(x float64) float64 {
	if f.size == 0 {
		panic("median: ProcessSample on released or uninitialized filter")
	}
	n := int(f.size)
	w := int(f.index)

	f.data[w] = x
	if w == n-1 {
		f.warm = true
	}

	sorted := f.scratch[:n]
	copy(sorted, f.data[:n])
	slices.Sort(sorted)

	var y float64
	if f.warm {
		y = sorted[n/2]
	} else {
		y = sorted[w/2]
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

// Reset clears the window and the warm-up latch.
func (f *Filter) Reset() {
	core.Zero(f.data[:f.size])
	f.index = 0
	f.warm = false
}

// Release drops the window. Further calls to ProcessSample panic.
// Release is idempotent.
func (f *Filter) Release() {
	*f = Filter{}
}

// Size returns the window length.
func (f *Filter) Size() int {
	return int(f.size)
}

// Warm reports whether the window has been filled at least once.
func (f *Filter) Warm() bool {
	return f.warm
}
