// Package window generates smoothing kernels.
//
// The Gaussian kernel used by the gaussian smoother is centered on index
// size/2 (integer division) and normalized to unit sum, so a constant input
// passes through a fully warmed filter unchanged. For even sizes the center
// falls on the upper of the two middle taps and the kernel is not symmetric.
package window
