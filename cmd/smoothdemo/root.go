package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-smooth/internal/config"
)

type options struct {
	configPath string
	window     int
	alpha      float64
	sigma      float64
	samples    int
	seed       int64
	response   bool
	quiet      bool
	verbose    bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "smoothdemo",
		Short: "Run the streaming smoothers over a synthetic noisy signal",
		Long: `Run the boxcar, EMA, Gaussian and median smoothers side by side over a
baseline signal with periodic random spikes, then summarize how much each
filter reduced the spread of the signal.

Flags override values loaded from --config.`,
		Example:       "  smoothdemo --window 9 --response",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), out, cfg, report{
				samples:  !opts.quiet,
				response: opts.response,
			})
		},
	}

	def := config.Default()
	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML profile to load before applying flags")
	flags.IntVarP(&opts.window, "window", "w", def.Window, "window length for boxcar, gaussian and median (1-255)")
	flags.Float64VarP(&opts.alpha, "alpha", "a", def.Alpha, "EMA smoothing coefficient in (0,1]")
	flags.Float64VarP(&opts.sigma, "sigma", "s", def.Sigma, "gaussian spread in samples")
	flags.IntVarP(&opts.samples, "samples", "n", def.Samples, "number of input samples")
	flags.Int64Var(&opts.seed, "seed", def.Seed, "noise seed")
	flags.BoolVarP(&opts.response, "response", "r", false, "print each filter's frequency response summary")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "skip the per-sample table")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// resolveConfig loads the profile, then applies only the flags the user set.
func resolveConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	var overrides []config.Option
	flags := cmd.Flags()
	if flags.Changed("window") {
		overrides = append(overrides, config.WithWindow(opts.window))
	}
	if flags.Changed("alpha") {
		overrides = append(overrides, config.WithAlpha(opts.alpha))
	}
	if flags.Changed("sigma") {
		overrides = append(overrides, config.WithSigma(opts.sigma))
	}
	if flags.Changed("samples") {
		overrides = append(overrides, config.WithSamples(opts.samples))
	}
	if flags.Changed("seed") {
		overrides = append(overrides, config.WithSeed(opts.seed))
	}

	if opts.configPath != "" {
		cfg, err := config.Load(opts.configPath, overrides...)
		if err != nil {
			return config.Config{}, err
		}
		logrus.WithField("path", opts.configPath).Debug("loaded profile")
		return cfg, nil
	}

	cfg := config.Default()
	cfg.Apply(overrides...)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
