package config

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// configSchema constrains the decoded configuration. Sieve sizes of 0
// and 1 are degenerate but deliberately allowed: the engine must handle
// them without crashing, and the schema's job is rejecting inputs the
// engine cannot represent, not second-guessing odd benchmark choices.
const configSchema = `{
	sieve_size:         int & >=0
	time_limit_seconds: number & >0
	verbose:            bool
	max_show_primes:    int & >=0
	label:              string & !=""
}`

// ValidationError reports a configuration record rejected by the schema.
type ValidationError struct {
	// Detail is the schema violation, one line per failing field.
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration:\n%s", e.Detail)
}

// Validate checks the configuration against the embedded CUE schema.
// Returns *ValidationError on a schema violation.
func (c Config) Validate() error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(configSchema)
	if err := schema.Err(); err != nil {
		// The schema is a compile-time constant; failing to compile it
		// is a programming error, not a user input problem.
		return fmt.Errorf("compile config schema: %w", err)
	}

	unified := schema.Unify(ctx.Encode(c))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &ValidationError{Detail: cueerrors.Details(err, nil)}
	}
	return nil
}
