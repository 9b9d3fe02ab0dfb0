package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/filter/boxcar"
	"github.com/cwbudde/algo-smooth/dsp/filter/ema"
	"github.com/cwbudde/algo-smooth/dsp/filter/gaussian"
	"github.com/cwbudde/algo-smooth/dsp/filter/median"
	"github.com/cwbudde/algo-smooth/dsp/signal"
	"github.com/cwbudde/algo-smooth/dsp/window"
	"github.com/cwbudde/algo-smooth/internal/config"
	"github.com/cwbudde/algo-smooth/measure/noise"
	"github.com/cwbudde/algo-smooth/measure/response"
)

type smoother interface {
	ProcessSample(x float64) float64
	Release()
}

type stage struct {
	name   string
	filter smoother
	// fresh builds an unused instance with the same parameters for response
	// measurement.
	fresh func() (smoother, error)
}

type report struct {
	samples  bool
	response bool
}

func newStages(cfg config.Config) ([]stage, error) {
	newBoxcar := func() (smoother, error) { return boxcar.New(cfg.Window) }
	newEMA := func() (smoother, error) { return ema.New(cfg.Alpha) }
	newGaussian := func() (smoother, error) { return gaussian.New(cfg.Window, cfg.Sigma) }
	newMedian := func() (smoother, error) { return median.New(cfg.Window) }

	stages := []stage{
		{name: "boxcar", fresh: newBoxcar},
		{name: "ema", fresh: newEMA},
		{name: "gaussian", fresh: newGaussian},
		{name: "median", fresh: newMedian},
	}
	for i := range stages {
		f, err := stages[i].fresh()
		if err != nil {
			releaseAll(stages[:i])
			return nil, fmt.Errorf("%s: %w", stages[i].name, err)
		}
		stages[i].filter = f
	}
	return stages, nil
}

func releaseAll(stages []stage) {
	for _, s := range stages {
		if s.filter != nil {
			s.filter.Release()
		}
	}
}

func run(ctx context.Context, w io.Writer, cfg config.Config, rep report) error {
	gen := signal.NewGeneratorWithOptions(
		[]core.AnalysisOption{core.WithSampleRate(cfg.SampleRate)},
		signal.WithSeed(cfg.Seed),
	)
	input, err := gen.Spiky(cfg.Base, cfg.SpikeMax, cfg.Period, cfg.Samples)
	if err != nil {
		return err
	}

	stages, err := newStages(cfg)
	if err != nil {
		return err
	}
	defer releaseAll(stages)

	logrus.WithFields(logrus.Fields{
		"window":  cfg.Window,
		"alpha":   cfg.Alpha,
		"sigma":   cfg.Sigma,
		"samples": cfg.Samples,
	}).Debug("running smoothers")

	outputs, err := process(ctx, stages, input)
	if err != nil {
		return err
	}

	if rep.samples {
		if err := printSamples(w, stages, input, outputs); err != nil {
			return err
		}
	}
	// Warm-up outputs are excluded from the summary.
	skip := min(cfg.Window, len(input)-1)
	if err := printNoise(w, stages, input, outputs, skip); err != nil {
		return err
	}
	if rep.response {
		return printResponse(w, stages, cfg)
	}
	return nil
}

// process runs every stage over input concurrently. Each filter instance is
// owned by exactly one goroutine.
func process(ctx context.Context, stages []stage, input []float64) ([][]float64, error) {
	outputs := make([][]float64, len(stages))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range stages {
		out := make([]float64, len(input))
		outputs[i] = out
		g.Go(func() error {
			for n, x := range input {
				if n%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				out[n] = s.filter.ProcessSample(x)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func printSamples(w io.Writer, stages []stage, input []float64, outputs [][]float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprint(tw, "n\tinput\t"); err != nil {
		return err
	}
	for _, s := range stages {
		if _, err := fmt.Fprintf(tw, "%s\t", s.name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(tw); err != nil {
		return err
	}
	for n, x := range input {
		if _, err := fmt.Fprintf(tw, "%d\t%.2f\t", n, x); err != nil {
			return err
		}
		for i := range stages {
			if _, err := fmt.Fprintf(tw, "%.2f\t", outputs[i][n]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(tw); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func printNoise(w io.Writer, stages []stage, input []float64, outputs [][]float64, skip int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Filter\tMean\tMedian\tStdDev\tMin\tMax\tReduction [dB]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t------\t------\t---\t---\t--------------\n"); err != nil {
		return err
	}

	inputRow := false
	for i, s := range stages {
		r, err := noise.Compare(input, outputs[i], skip)
		if err != nil {
			logrus.WithError(err).WithField("filter", s.name).Warn("skipping noise summary")
			continue
		}
		if !inputRow {
			if err := writeSummary(tw, "input", r.Input, math.NaN()); err != nil {
				return err
			}
			inputRow = true
		}
		if err := writeSummary(tw, s.name, r.Output, r.ReductionDB); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeSummary(w io.Writer, name string, s noise.Summary, reduction float64) error {
	red := "-"
	if !math.IsNaN(reduction) {
		red = fmt.Sprintf("%.2f", reduction)
	}
	_, err := fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%s\n",
		name, s.Mean, s.Median, s.StdDev, s.Min, s.Max, red)
	return err
}

func printResponse(w io.Writer, stages []stage, cfg config.Config) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Filter\tDC Gain\tCutoff [Hz]\tNoise Reduction [dB]\tENBW [bins]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------\t-------\t-----------\t--------------------\t-----------\n"); err != nil {
		return err
	}

	for _, s := range stages {
		f, err := s.fresh()
		if err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		enbw := "-"
		if g, ok := f.(*gaussian.Filter); ok {
			if v, err := window.EquivalentNoiseBandwidth(g.Kernel()); err == nil {
				enbw = fmt.Sprintf("%.4f", v)
			}
		}
		res, err := response.Analyze(f, core.WithSampleRate(cfg.SampleRate))
		f.Release()
		if err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%.6f\t%s\t%s\t%s\n",
			s.name,
			res.DCGain,
			formatFinite(res.CutoffHz, "%.3f"),
			formatFinite(res.NoiseReductionDB(), "%.2f"),
			enbw,
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func formatFinite(v float64, format string) string {
	if !core.IsFinite(v) {
		return "-"
	}
	return fmt.Sprintf(format, v)
}
