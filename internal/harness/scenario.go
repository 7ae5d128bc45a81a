package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario; it doubles as the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Cases lists the sieve sizes to run and their expectations.
	Cases []Case `yaml:"cases"`
}

// Case pairs one sieve size with its expected results.
type Case struct {
	// SieveSize is the limit to sieve below.
	SieveSize uint64 `yaml:"sieve_size"`

	// ExpectCount is the expected total prime count below SieveSize,
	// including the number 2.
	ExpectCount uint64 `yaml:"expect_count"`

	// ExpectPrimes, if non-empty, is the expected leading prefix of the
	// ascending prime sequence.
	ExpectPrimes []uint64 `yaml:"expect_primes,omitempty"`
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("scenario %s: at least one case is required", path)
	}
	return &s, nil
}
