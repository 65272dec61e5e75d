// Package config defines the application configuration and parses it from
// command-line flags and COINCOUNT_* environment variables.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/coincount/internal/errors"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "COINCOUNT_"

const (
	// DefaultTimeout bounds a whole run.
	DefaultTimeout = 5 * time.Minute
	// DefaultLogLevel keeps stderr quiet unless something goes wrong.
	DefaultLogLevel = "warn"
	// AlgoAll selects every counter of the requested mode.
	AlgoAll = "all"
)

// ModeUsage is the help text of --mode.
const ModeUsage = "Counting mode: ordered (sequences, the default) or combinations (multisets).\n" +
	"Ordered counters reject zero-valued coins, which could repeat without bound;\n" +
	"combinations accepts them."

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Algo is the counter to run ("" for the mode's default, "all" to compare).
	Algo string
	// Mode is "ordered", "combinations" or "" (inferred from Algo).
	Mode string
	// InputFile is read instead of stdin when set.
	InputFile string
	// OutputFile receives a result report when set.
	OutputFile string
	// MetricsFile receives a Prometheus textfile export when set.
	MetricsFile string
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Verbose prints the execution configuration and the comparison table.
	Verbose bool
	// Details adds memory statistics to verbose output.
	Details bool
	// Table prints the whole DP row instead of only the final count.
	Table bool
	// NoColor disables ANSI colors.
	NoColor bool
	// LogLevel is the zerolog level for stderr diagnostics.
	LogLevel string
}

// Validate checks the semantic validity of the configuration.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be strictly positive, got %s", c.Timeout)
	}
	if c.Algo != "" && c.Algo != AlgoAll && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unknown algorithm %q (available: %s, %s)",
			c.Algo, strings.Join(availableAlgos, ", "), AlgoAll)
	}
	switch strings.ToLower(c.Mode) {
	case "", "ordered", "combinations":
	default:
		return apperrors.NewConfigError("unknown mode %q (want ordered or combinations)", c.Mode)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	return nil
}

// ParseConfig parses command-line arguments, applies environment overrides
// for flags that were not set explicitly, and validates the result.
// On --help it returns flag.ErrHelp after printing usage to errorOutput.
func ParseConfig(programName string, args []string, errorOutput io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorOutput)
	fs.Usage = func() {
		fmt.Fprintf(errorOutput, "Usage: %s [flags] < input\n\n", programName)
		fmt.Fprintf(errorOutput, "Reads n, x and n coin values from stdin and prints the number of\n")
		fmt.Fprintf(errorOutput, "ways to pay x, modulo 1000000007.\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errorOutput, "\nEvery flag can also be set through %s<NAME> (e.g. %sALGO=all).\n", EnvPrefix, EnvPrefix)
	}

	config := AppConfig{}
	algoHelp := fmt.Sprintf("Counter to run (%s, or %q to compare every counter of the mode).",
		strings.Join(availableAlgos, ", "), AlgoAll)
	fs.StringVar(&config.Algo, "algo", "", algoHelp)
	fs.StringVar(&config.Mode, "mode", "", ModeUsage)
	fs.StringVar(&config.InputFile, "input", "", "Read the problem from this file instead of stdin.")
	fs.StringVar(&config.InputFile, "i", "", "Shorthand for --input.")
	fs.StringVar(&config.OutputFile, "output", "", "Write a result report to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for --output.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics in textfile format to this path.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of the run.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print configuration, comparison table and timings.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.Details, "details", false, "Add memory statistics to verbose output.")
	fs.BoolVar(&config.Details, "d", false, "Shorthand for --details.")
	fs.BoolVar(&config.Table, "table", false, "Print the count for every partial sum 0..x.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (NO_COLOR is honored too).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Diagnostic log level on stderr (debug, info, warn, error).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorOutput, "Configuration error:", err)
		return AppConfig{}, err
	}
	return config, nil
}
