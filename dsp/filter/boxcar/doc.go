// Package boxcar provides a streaming moving-average (boxcar) smoother.
//
// A [Filter] keeps a running sum over a fixed window of the most recent
// samples and returns sum/size for every input. The window starts
// zero-filled and the divisor is always the full window length, so the
// first size-1 outputs are biased toward zero:
//
//	f, _ := boxcar.New(3)
//	f.ProcessSample(10) // 3.33
//	f.ProcessSample(20) // 10
//	f.ProcessSample(30) // 20
//	f.ProcessSample(40) // 30
//
// Buffers are fixed-capacity arrays sized for [core.MaxWindowSize] samples;
// ProcessSample never allocates. A Filter must not be used concurrently
// without external locking.
package boxcar
