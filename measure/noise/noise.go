// Package noise summarizes how much a smoother reduced the spread of a
// signal.
package noise

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

var (
	errMismatchedLength = errors.New("noise: input and output must have same length")
	errNothingLeft      = errors.New("noise: no samples left after skipping warm-up")
)

// Summary holds descriptive statistics of one signal.
type Summary struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Report compares a filter input against its output.
type Report struct {
	Input  Summary
	Output Summary
	// ReductionDB is 20*log10(input stddev / output stddev). +Inf when the
	// output is constant and the input is not.
	ReductionDB float64
	// MeanBias is output mean minus input mean.
	MeanBias float64
}

// Summarize computes descriptive statistics of x.
func Summarize(x []float64) (Summary, error) {
	var (
		s   Summary
		err error
	)
	if s.Mean, err = stats.Mean(x); err != nil {
		return Summary{}, fmt.Errorf("noise: mean: %w", err)
	}
	if s.Median, err = stats.Median(x); err != nil {
		return Summary{}, fmt.Errorf("noise: median: %w", err)
	}
	if s.StdDev, err = stats.StandardDeviationPopulation(x); err != nil {
		return Summary{}, fmt.Errorf("noise: stddev: %w", err)
	}
	if s.Min, err = stats.Min(x); err != nil {
		return Summary{}, fmt.Errorf("noise: min: %w", err)
	}
	if s.Max, err = stats.Max(x); err != nil {
		return Summary{}, fmt.Errorf("noise: max: %w", err)
	}
	return s, nil
}

// Compare summarizes input and output after dropping the first skip samples
// of both, which lets callers exclude the warm-up period.
func Compare(input, output []float64, skip int) (Report, error) {
	if len(input) != len(output) {
		return Report{}, errMismatchedLength
	}
	skip = max(skip, 0)
	if skip >= len(input) {
		return Report{}, errNothingLeft
	}

	in, err := Summarize(input[skip:])
	if err != nil {
		return Report{}, err
	}
	out, err := Summarize(output[skip:])
	if err != nil {
		return Report{}, err
	}

	return Report{
		Input:       in,
		Output:      out,
		ReductionDB: reductionDB(in.StdDev, out.StdDev),
		MeanBias:    out.Mean - in.Mean,
	}, nil
}

func reductionDB(in, out float64) float64 {
	switch {
	case out == 0 && in == 0:
		return 0
	case out == 0:
		return math.Inf(1)
	}
	return core.LinearToDB(in / out)
}
