package median

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/internal/testutil"
)

func mustNew(t *testing.T, size int) *Filter {
	t.Helper()
	f, err := New(size)
	if err != nil {
		t.Fatalf("New(%d): %v", size, err)
	}
	return f
}

func TestNewRejectsInvalidSize(t *testing.T) {
	for _, size := range []int{-1, 0, core.MaxWindowSize + 1} {
		if _, err := New(size); !errors.Is(err, core.ErrInvalidWindowSize) {
			t.Errorf("New(%d): err=%v, want ErrInvalidWindowSize", size, err)
		}
	}
	if f := mustNew(t, 5); f.Size() != 5 || f.Warm() {
		t.Fatalf("fresh filter: size=%d warm=%v", f.Size(), f.Warm())
	}
}

func TestOddWindow(t *testing.T) {
	f := mustNew(t, 5)
	var y float64
	for _, x := range []float64{3, 1, 4, 1, 5} {
		y = f.ProcessSample(x)
	}
	if !f.Warm() {
		t.Fatal("not warm after 5 samples")
	}
	// sorted [1 1 3 4 5]
	if y != 3 {
		t.Fatalf("median of [3 1 4 1 5] = %v, want 3", y)
	}
}

func TestEvenWindowUpperMiddle(t *testing.T) {
	f := mustNew(t, 4)
	var y float64
	for _, x := range []float64{8, 2, 6, 4} {
		y = f.ProcessSample(x)
	}
	// sorted [2 4 6 8]: index 2, not (4+6)/2.
	if y != 6 {
		t.Fatalf("median of [8 2 6 4] = %v, want 6", y)
	}
	// window [1 2 6 4] sorted [1 2 4 6]
	if y = f.ProcessSample(1); y != 4 {
		t.Fatalf("median of [1 2 6 4] = %v, want 4", y)
	}
}

func TestWarmUpIncludesZeroSlots(t *testing.T) {
	f := mustNew(t, 5)
	got := testutil.Run(f.ProcessSample, []float64{3, 1, 4, 1, 5, 9, 2, 6})
	want := []float64{0, 0, 0, 1, 3, 4, 4, 5}
	testutil.RequireSliceIdentical(t, got, want)

	neg := mustNew(t, 5)
	got = testutil.Run(neg.ProcessSample, []float64{-1, -2, -3, -4, -5})
	testutil.RequireSliceIdentical(t, got, []float64{-1, -2, -2, -3, -3})
}

func TestSlidingWindow(t *testing.T) {
	f := mustNew(t, 3)
	input := []float64{5, 5, 5, 100, 5, 5, -50, -50, 7}
	got := testutil.Run(f.ProcessSample, input)
	// Single spikes are rejected once warm.
	want := []float64{0, 0, 5, 5, 5, 5, 5, -50, -50}
	testutil.RequireSliceIdentical(t, got, want)
}

func TestSizeOnePassesThrough(t *testing.T) {
	f := mustNew(t, 1)
	for _, x := range []float64{2, -7, 0.25} {
		if y := f.ProcessSample(x); y != x {
			t.Fatalf("ProcessSample(%v) = %v", x, y)
		}
	}
}

func TestFractionalOrdering(t *testing.T) {
	// Values closer than 1 must still be ordered by value.
	f := mustNew(t, 3)
	var y float64
	for _, x := range []float64{0.3, 0.1, 0.2} {
		y = f.ProcessSample(x)
	}
	if y != 0.2 {
		t.Fatalf("median of [0.3 0.1 0.2] = %v, want 0.2", y)
	}
}

func TestDeterministic(t *testing.T) {
	input := testutil.DeterministicNoise(11, 5, 300)
	a := testutil.Run(mustNew(t, 20).ProcessSample, input)
	b := testutil.Run(mustNew(t, 20).ProcessSample, input)
	testutil.RequireSliceIdentical(t, a, b)
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	input := testutil.DeterministicNoise(9, 1, 40)
	ref := testutil.Run(mustNew(t, 6).ProcessSample, input)

	block := append([]float64(nil), input...)
	mustNew(t, 6).ProcessBlock(block)
	testutil.RequireSliceIdentical(t, block, ref)

	dst := make([]float64, len(input))
	mustNew(t, 6).ProcessBlockTo(dst, input)
	testutil.RequireSliceIdentical(t, dst, ref)
}

func TestResetAndRelease(t *testing.T) {
	input := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	f := mustNew(t, 5)
	ref := testutil.Run(f.ProcessSample, input)
	f.Reset()
	if f.Warm() {
		t.Fatal("warm after Reset")
	}
	testutil.RequireSliceIdentical(t, testutil.Run(f.ProcessSample, input), ref)

	f.Release()
	f.Release()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on ProcessSample after Release")
		}
	}()
	f.ProcessSample(1)
}
