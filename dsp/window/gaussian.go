package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// GaussianKernel returns a normalized Gaussian kernel of the given length:
//
//	w[i] = exp(-(i-h)^2 / (2*sigma^2)),  h = size/2
//
// scaled so that the weights sum to one.
func GaussianKernel(size int, sigma float64) ([]float64, error) {
	if err := validateGauss(size, sigma); err != nil {
		return nil, err
	}

	kernel := make([]float64, size)
	if err := GaussianKernelInto(kernel, sigma); err != nil {
		return nil, err
	}

	return kernel, nil
}

// GaussianKernelInto fills dst with a normalized Gaussian kernel of length
// len(dst). It does not allocate.
func GaussianKernelInto(dst []float64, sigma float64) error {
	if err := validateGauss(len(dst), sigma); err != nil {
		return err
	}

	half := len(dst) / 2
	den := 2 * sigma * sigma
	for i := range dst {
		x := float64(i - half)
		dst[i] = math.Exp(-(x * x) / den)
	}

	return Normalize(dst)
}

// Normalize scales coeffs in place so that they sum to one.
func Normalize(coeffs []float64) error {
	if len(coeffs) == 0 {
		return errEmptyCoeffs
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return errZeroSum
	}

	vecmath.ScaleBlockInPlace(coeffs, 1/sum)

	return nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a kernel. For a
// smoother it is the reciprocal of the white-noise variance reduction scaled
// by the kernel length.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroSum
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}
