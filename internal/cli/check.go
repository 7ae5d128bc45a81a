package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sievebench/internal/sieve"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Max uint64
}

// CheckResult records one conformance check.
type CheckResult struct {
	Limit  uint64 `json:"limit"`
	Got    uint64 `json:"got"`
	Want   uint64 `json:"want"`
	Passed bool   `json:"passed"`
}

// checkData is the JSON payload for the check command.
type checkData struct {
	Results []CheckResult `json:"results"`
	Failed  int           `json:"failed"`
}

// NewCheckCommand creates the check command, a conformance sweep across
// every tabled limit up to a ceiling.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify sieve counts against the known table",
		Long: `Run one sieve pass for every limit in the known prime-count table up to
the ceiling and compare results. The default ceiling keeps the sweep
fast; raise --max to cover the larger tabled limits.

Example:
  sievebench check
  sievebench check --max 100000000`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, cmd)
		},
	}

	cmd.Flags().Uint64Var(&opts.Max, "max", 1_000_000, "largest tabled limit to check")

	return cmd
}

func runCheck(opts *CheckOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var results []CheckResult
	failed := 0
	for _, limit := range sieve.KnownLimits() {
		if limit > opts.Max {
			break
		}
		want, _ := sieve.KnownCount(limit)

		e := sieve.New(limit)
		e.Run()
		got := 1 + e.CountPrimes()

		passed := got == want
		if !passed {
			failed++
		}
		results = append(results, CheckResult{Limit: limit, Got: got, Want: want, Passed: passed})
	}

	if opts.Format == "json" {
		if err := formatter.Success(checkData{Results: results, Failed: failed}); err != nil {
			return WrapExitError(ExitCommandError, "encode output", err)
		}
	} else {
		for _, r := range results {
			if r.Passed {
				fmt.Fprintf(formatter.Writer, "ok    limit=%d primes=%d\n", r.Limit, r.Got)
			} else {
				fmt.Fprintf(formatter.Writer, "FAIL  limit=%d got=%d want=%d\n", r.Limit, r.Got, r.Want)
			}
		}
		fmt.Fprintf(formatter.Writer, "checked %d limits, %d failed\n", len(results), failed)
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d checks failed", failed, len(results)))
	}
	return nil
}
