package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default configuration values. SieveSize and TimeLimitSeconds follow
// the conventional benchmark setup of one million candidates over five
// seconds.
const (
	DefaultSieveSize        = 1_000_000
	DefaultTimeLimitSeconds = 5
	DefaultMaxShowPrimes    = 100
	DefaultLabel            = "sievebench"
)

// Config is the benchmark configuration record. The sieve core only
// consumes SieveSize; the remaining fields belong to the driver.
type Config struct {
	// SieveSize is the sieve limit: primes are counted below this value.
	SieveSize uint64 `yaml:"sieve_size" json:"sieve_size"`

	// TimeLimitSeconds is the wall-clock benchmark budget.
	TimeLimitSeconds float64 `yaml:"time_limit_seconds" json:"time_limit_seconds"`

	// Verbose enables the human-readable prime listing and timing
	// statistics in addition to the machine-parsable record.
	Verbose bool `yaml:"verbose" json:"verbose"`

	// MaxShowPrimes bounds the prime listing in verbose output.
	MaxShowPrimes int `yaml:"max_show_primes" json:"max_show_primes"`

	// Label is the leading field of the machine-parsable record.
	Label string `yaml:"label" json:"label"`
}

// Default returns the configuration used when no file or flags are
// given.
func Default() Config {
	return Config{
		SieveSize:        DefaultSieveSize,
		TimeLimitSeconds: DefaultTimeLimitSeconds,
		MaxShowPrimes:    DefaultMaxShowPrimes,
		Label:            DefaultLabel,
	}
}

// Load reads a YAML configuration file layered over the defaults and
// validates the result against the embedded schema.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TimeLimit returns the benchmark budget as a duration.
func (c Config) TimeLimit() time.Duration {
	return time.Duration(c.TimeLimitSeconds * float64(time.Second))
}
