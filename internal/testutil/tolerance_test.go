package testutil

import (
	"math"
	"testing"
)

func TestRequireHelpersAccept(t *testing.T) {
	RequireSliceIdentical(t, []float64{1, -0.5, math.Inf(1)}, []float64{1, -0.5, math.Inf(1)})
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1 + 1e-13, 2}, 1e-12)
	RequireFinite(t, []float64{0, 1, -1})
}
