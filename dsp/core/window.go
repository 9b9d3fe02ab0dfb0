package core

import (
	"errors"
	"fmt"
)

// MaxWindowSize is the largest supported smoothing window. Window lengths are
// stored in a uint8, and every windowed filter keeps fixed-capacity buffers of
// this many samples.
const MaxWindowSize = 255

// ErrInvalidWindowSize is returned for window lengths outside [1, MaxWindowSize].
var ErrInvalidWindowSize = errors.New("invalid window size")

// ValidateWindowSize checks that size fits the supported window range.
func ValidateWindowSize(size int) error {
	if size < 1 || size > MaxWindowSize {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidWindowSize, size, MaxWindowSize)
	}
	return nil
}
