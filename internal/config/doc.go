// Package config loads and validates benchmark configuration.
//
// Configuration comes from an optional YAML file layered over defaults;
// the CLI layers flag overrides on top. The decoded record is checked
// against an embedded CUE schema before use, so invalid inputs fail
// with a field-level message instead of surfacing mid-run.
package config
