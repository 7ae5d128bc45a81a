package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/sievebench/internal/bench"
	"github.com/roach88/sievebench/internal/config"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	ConfigPath string
	SieveSize  uint64
	TimeLimit  float64
	MaxShow    int
	Label      string

	// Clock allows overriding the benchmark clock (for testing).
	// If nil, defaults to bench.WallClock.
	Clock bench.Clock
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(&RunOptions{RootOptions: rootOpts})
}

// newRunCommand builds the run command from pre-populated options, so
// tests can inject a deterministic clock.
func newRunCommand(opts *RunOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the timed sieve benchmark",
		Long: `Run the sieve benchmark: repeat construct-and-sieve passes for the
configured wall-clock budget, validate the final pass against the known
prime-count table, and emit the machine-parsable result record
label;passes;seconds;threads;tag.

Example:
  sievebench run --size 1000000 --time 5
  sievebench run --config sievebench.yaml --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to YAML configuration file")
	cmd.Flags().Uint64Var(&opts.SieveSize, "size", config.DefaultSieveSize, "sieve limit (count primes below this value)")
	cmd.Flags().Float64Var(&opts.TimeLimit, "time", config.DefaultTimeLimitSeconds, "benchmark budget in seconds")
	cmd.Flags().IntVar(&opts.MaxShow, "show", config.DefaultMaxShowPrimes, "max primes listed in verbose output")
	cmd.Flags().StringVar(&opts.Label, "label", config.DefaultLabel, "label field of the result record")

	return cmd
}

// resolveConfig layers the config file over defaults and explicit flags
// over the file, then validates the result.
func resolveConfig(opts *RunOptions, cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.SieveSize = opts.SieveSize
	}
	if flags.Changed("time") {
		cfg.TimeLimitSeconds = opts.TimeLimit
	}
	if flags.Changed("show") {
		cfg.MaxShowPrimes = opts.MaxShow
	}
	if flags.Changed("label") {
		cfg.Label = opts.Label
	}
	cfg.Verbose = cfg.Verbose || opts.Verbose

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runBenchmark(opts *RunOptions, cmd *cobra.Command) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		if opts.Format == "json" {
			_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		}
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = bench.WallClock{}
	}
	runner := bench.NewRunner(bench.WithClock(clock))

	slog.Info("starting benchmark", "limit", cfg.SieveSize, "budget", cfg.TimeLimit())
	result, runErr := runner.Run(cfg.SieveSize, cfg.TimeLimit())
	slog.Debug("benchmark finished",
		"run_id", result.RunID,
		"passes", result.Passes,
		"duration", result.Duration,
	)

	if !result.Known {
		slog.Warn("no known prime count for limit; validation skipped", "limit", cfg.SieveSize)
	}

	if opts.Format == "json" {
		if err := formatter.Success(NewReportData(cfg.Label, result)); err != nil {
			return WrapExitError(ExitCommandError, "encode output", err)
		}
	} else {
		if err := formatter.Success(FormatRecord(cfg.Label, result)); err != nil {
			return WrapExitError(ExitCommandError, "write output", err)
		}
		if cfg.Verbose {
			WriteVerboseReport(formatter.GetErrWriter(), result, cfg.MaxShowPrimes)
		}
	}

	if runErr != nil {
		// Validation mismatch: the run completed and its record was
		// already emitted; surface the failure without discarding it.
		slog.Error("validation failed", "error", runErr)
		if opts.Format == "json" {
			_ = formatter.Error(ErrCodeMismatch, runErr.Error(), nil)
		}
		return WrapExitError(ExitFailure, "benchmark validation failed", runErr)
	}
	return nil
}
