package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sievebench/internal/config"
	"github.com/roach88/sievebench/internal/sieve"
)

// PrimesOptions holds flags for the primes command.
type PrimesOptions struct {
	*RootOptions
	Size  uint64
	Count int
}

// primesData is the JSON payload for the primes command.
type primesData struct {
	Limit  uint64   `json:"limit"`
	Primes []uint64 `json:"primes"`
}

// NewPrimesCommand creates the primes command, a diagnostic that runs a
// single sieve pass and lists the leading primes.
func NewPrimesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PrimesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "primes",
		Short: "Run one sieve pass and list primes",
		Long: `Run a single sieve pass and print primes below the limit in ascending
order, up to the requested count.

Example:
  sievebench primes --size 100 --count 25`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPrimes(opts, cmd)
		},
	}

	cmd.Flags().Uint64Var(&opts.Size, "size", config.DefaultSieveSize, "sieve limit")
	cmd.Flags().IntVar(&opts.Count, "count", config.DefaultMaxShowPrimes, "maximum primes to list")

	return cmd
}

func listPrimes(opts *PrimesOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	e := sieve.New(opts.Size)
	e.Run()
	primes := e.Primes(opts.Count)

	if opts.Format == "json" {
		return formatter.Success(primesData{Limit: opts.Size, Primes: primes})
	}

	parts := make([]string, len(primes))
	for i, p := range primes {
		parts[i] = strconv.FormatUint(p, 10)
	}
	return formatter.Success(strings.Join(parts, " "))
}
