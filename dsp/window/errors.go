package window

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSigma is returned for a non-positive or non-finite Gaussian spread.
	ErrInvalidSigma = errors.New("invalid gaussian sigma")

	errEmptyCoeffs = errors.New("kernel coefficients must not be empty")
	errZeroSum     = errors.New("kernel coefficients sum to zero")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("kernel size must be > 0: %d", size)
	}
	return nil
}

func validateGauss(size int, sigma float64) error {
	if err := validateLength(size); err != nil {
		return err
	}
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return fmt.Errorf("%w: %v must be > 0 and finite", ErrInvalidSigma, sigma)
	}
	return nil
}
