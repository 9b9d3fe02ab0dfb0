package gaussian

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/internal/testutil"
)

const eps = 1e-12

func mustNew(t *testing.T, size int, sigma float64) *Filter {
	t.Helper()
	f, err := New(size, sigma)
	if err != nil {
		t.Fatalf("New(%d, %v): %v", size, sigma, err)
	}
	return f
}

func TestNewValidation(t *testing.T) {
	for _, size := range []int{0, -1, core.MaxWindowSize + 1} {
		if _, err := New(size, 1); !errors.Is(err, core.ErrInvalidWindowSize) {
			t.Errorf("New(%d, 1): err=%v, want ErrInvalidWindowSize", size, err)
		}
	}
	for _, sigma := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		if _, err := New(5, sigma); !errors.Is(err, ErrInvalidSigma) {
			t.Errorf("New(5, %v): err=%v, want ErrInvalidSigma", sigma, err)
		}
	}
	f := mustNew(t, 20, 1)
	if f.Size() != 20 || f.Sigma() != 1 || f.Warm() {
		t.Fatalf("fresh filter: size=%d sigma=%v warm=%v", f.Size(), f.Sigma(), f.Warm())
	}
}

func TestKernelNormalized(t *testing.T) {
	for _, size := range []int{1, 2, 5, 20, 64, core.MaxWindowSize} {
		for _, sigma := range []float64{0.3, 1, 4, 50} {
			k := mustNew(t, size, sigma).Kernel()
			if len(k) != size {
				t.Fatalf("len(Kernel)=%d, want %d", len(k), size)
			}
			sum := 0.0
			for _, v := range k {
				sum += v
			}
			if math.Abs(sum-1) > 1e-5 {
				t.Errorf("size=%d sigma=%v: kernel sum %v", size, sigma, sum)
			}
		}
	}
}

func TestKernelSymmetricForOddSizes(t *testing.T) {
	for _, size := range []int{1, 3, 7, 21} {
		k := mustNew(t, size, 2).Kernel()
		for i := range size / 2 {
			if math.Abs(k[i]-k[size-1-i]) > 1e-15 {
				t.Errorf("size=%d: k[%d]=%v k[%d]=%v", size, i, k[i], size-1-i, k[size-1-i])
			}
		}
	}
}

func TestKernelIsCopy(t *testing.T) {
	f := mustNew(t, 5, 1)
	k := f.Kernel()
	k[0] = 999
	if f.kernel[0] == 999 {
		t.Fatal("Kernel did not return a copy")
	}
}

func TestProcessSample_Golden(t *testing.T) {
	// size 3, sigma 1: kernel = [a, b, a] with a = e^-0.5/(1+2e^-0.5), b = 1/(1+2e^-0.5).
	e := math.Exp(-0.5)
	a := e / (1 + 2*e)
	b := 1 / (1 + 2*e)

	f := mustNew(t, 3, 1)
	got := testutil.Run(f.ProcessSample, []float64{1, 2, 3, 4, 5})
	want := []float64{
		a * 1,           // warm-up: tap 0 only
		a*1 + b*2,       // warm-up: taps 0..1, not renormalized
		a*3 + b*1 + a*2, // warm: newest, then oldest to newest
		a*4 + b*2 + a*3,
		a*5 + b*3 + a*4,
	}
	testutil.RequireSliceNearlyEqual(t, got, want, eps)
}

func TestWarmLatchesOnLastSlot(t *testing.T) {
	const size = 6
	f := mustNew(t, size, 1.5)
	for i := range size - 1 {
		f.ProcessSample(float64(i))
		if f.Warm() {
			t.Fatalf("warm after %d samples", i+1)
		}
	}
	f.ProcessSample(1)
	if !f.Warm() {
		t.Fatal("not warm after filling the window")
	}
	for range 3 * size {
		f.ProcessSample(1)
		if !f.Warm() {
			t.Fatal("warm latch cleared")
		}
	}
}

func TestConstantAfterWarmUp(t *testing.T) {
	const v = 12.5
	for _, size := range []int{1, 4, 5, 20, core.MaxWindowSize} {
		f := mustNew(t, size, 1)
		var y float64
		for range size + 3 {
			y = f.ProcessSample(v)
		}
		if math.Abs(y-v) > 1e-9 {
			t.Errorf("size=%d: %v, want %v", size, y, v)
		}
	}
}

func TestWarmUpUnderWeighted(t *testing.T) {
	const v = 10.0
	f := mustNew(t, 9, 2)
	k := f.Kernel()
	partial := 0.0
	for i := range 8 {
		partial += k[i]
		y := f.ProcessSample(v)
		if math.Abs(y-v*partial) > eps {
			t.Fatalf("sample %d: %v, want %v", i, y, v*partial)
		}
		if y >= v {
			t.Fatalf("sample %d: warm-up output %v not below %v", i, y, v)
		}
	}
}

func TestDeterministic(t *testing.T) {
	input := testutil.DeterministicNoise(11, 5, 300)
	a := testutil.Run(mustNew(t, 20, 1).ProcessSample, input)
	b := testutil.Run(mustNew(t, 20, 1).ProcessSample, input)
	testutil.RequireSliceIdentical(t, a, b)
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	input := testutil.DeterministicNoise(2, 1, 40)
	ref := testutil.Run(mustNew(t, 7, 1.2).ProcessSample, input)

	block := append([]float64(nil), input...)
	mustNew(t, 7, 1.2).ProcessBlock(block)
	testutil.RequireSliceIdentical(t, block, ref)

	dst := make([]float64, len(input))
	mustNew(t, 7, 1.2).ProcessBlockTo(dst, input)
	testutil.RequireSliceIdentical(t, dst, ref)
}

func TestReset(t *testing.T) {
	input := testutil.DeterministicNoise(4, 2, 30)
	f := mustNew(t, 5, 1)
	ref := testutil.Run(f.ProcessSample, input)
	f.Reset()
	if f.Warm() {
		t.Fatal("warm after Reset")
	}
	again := testutil.Run(f.ProcessSample, input)
	testutil.RequireSliceIdentical(t, again, ref)
}

func TestRelease(t *testing.T) {
	f := mustNew(t, 5, 1)
	f.Release()
	f.Release()
	if f.Size() != 0 || len(f.Kernel()) != 0 {
		t.Fatalf("state survived Release: size=%d", f.Size())
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on ProcessSample after Release")
		}
	}()
	f.ProcessSample(1)
}
