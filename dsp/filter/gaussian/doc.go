// Package gaussian provides a streaming Gaussian-weighted moving average.
//
// The kernel is computed once by [window.GaussianKernelInto] and never
// changes. Once the circular buffer has been filled, every output is the
// full weighted sum
//
//	y = sum_{i=0}^{N-1} kernel[i] * data[(w+i) mod N]
//
// where w is the slot just written: kernel tap 0 weights the newest sample
// and taps 1..N-1 walk the remaining samples from oldest to newest.
//
// Before the buffer has been filled once, only the taps seen so far
// contribute and the partial sum is not renormalized, so warm-up outputs are
// systematically under-weighted. Both behaviors are kept for compatibility
// with existing sensor pipelines that depend on the exact numeric output.
package gaussian
