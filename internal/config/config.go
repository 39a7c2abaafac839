// Package config parses and validates the scanner configuration from
// command-line flags and environment variables. Priority is CLI flags >
// environment variables > defaults.
package config

import (
	"flag"
	"io"
	"time"

	apperrors "github.com/fermatscan/fermatscan/internal/errors"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "FERMATSCAN_"

// Default values for the scan parameters. The candidate bound and trial
// budget match the classic formulation: scan the odd and even candidates
// below 1000 with up to 20 random bases each.
const (
	DefaultMaxCandidate = 1000
	DefaultMinCandidate = 3
	DefaultTrialBudget  = 20
	DefaultWorkers      = 1
	DefaultTimeout      = 2 * time.Minute
)

// AppConfig holds the complete runtime configuration of the scanner.
type AppConfig struct {
	// MinCandidate is the inclusive lower bound of the scan range (>= 3).
	MinCandidate uint64
	// MaxCandidate is the exclusive upper bound of the scan range.
	MaxCandidate uint64
	// TrialBudget is the maximum number of random bases tried per candidate.
	TrialBudget int
	// Seed seeds the base generator. Zero selects a time-derived seed.
	Seed uint64
	// Workers is the number of candidates evaluated concurrently.
	Workers int
	// Timeout bounds the total scan duration.
	Timeout time.Duration
	// Quiet suppresses the progress display and summary block.
	Quiet bool
	// Verbose enables per-candidate debug logging.
	Verbose bool
	// OutputFile optionally receives a copy of the scan report.
	OutputFile string
	// MetricsAddr, when non-empty, serves Prometheus metrics on that address.
	MetricsAddr string
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags not explicitly set, and
// validates the result.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	fs.Uint64Var(&cfg.MaxCandidate, "max", DefaultMaxCandidate, "exclusive upper bound of the candidate scan range")
	fs.Uint64Var(&cfg.MinCandidate, "min", DefaultMinCandidate, "inclusive lower bound of the candidate scan range (minimum 3)")
	fs.IntVar(&cfg.TrialBudget, "trials", DefaultTrialBudget, "maximum random bases tried per candidate")
	fs.IntVar(&cfg.TrialBudget, "t", DefaultTrialBudget, "shorthand for -trials")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "random seed for base selection (0 = time-derived)")
	fs.IntVar(&cfg.Workers, "workers", DefaultWorkers, "number of candidates evaluated concurrently")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum total scan duration")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress progress display and summary")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable per-candidate debug logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for -verbose")
	fs.StringVar(&cfg.OutputFile, "output", "", "write a copy of the scan report to this file")
	fs.StringVar(&cfg.OutputFile, "o", "", "shorthand for -output")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c AppConfig) Validate() error {
	if c.MinCandidate < 3 {
		return apperrors.NewConfigError("min candidate must be at least 3, got %d", c.MinCandidate)
	}
	if c.MaxCandidate <= c.MinCandidate {
		return apperrors.NewConfigError("max candidate (%d) must exceed min candidate (%d)", c.MaxCandidate, c.MinCandidate)
	}
	if c.TrialBudget < 1 {
		return apperrors.NewConfigError("trial budget must be at least 1, got %d", c.TrialBudget)
	}
	if c.Workers < 1 {
		return apperrors.NewConfigError("workers must be at least 1, got %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
