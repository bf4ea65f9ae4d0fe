package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/sumsquares/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an error.
// Usage errors are returned as *ExitError with code 2.
func Parse(ctx context.Context, args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	defaults := app.DefaultConfig()

	flagSet := flag.NewFlagSet("sumsquares", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
sumsquares - prints the sum of squares of the integers 1..N.

Usage:
  sumsquares [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	boundFlag := flagSet.Int64("n", defaults.Bound, "Inclusive upper bound N. Values <= 0 give an empty range.")
	configFlag := flagSet.String("config", "", "Path to an optional HCL settings file.")
	checkedFlag := flagSet.Bool("checked", defaults.Checked, "Fail on int64 overflow instead of wrapping.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}
	slog.Debug("Arguments parsed successfully.")

	// Flags given explicitly win over the settings file.
	locked := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { locked[f.Name] = true })

	cfg := app.Config{
		Bound:      *boundFlag,
		Checked:    *checkedFlag,
		ConfigPath: *configFlag,
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
	}
	if err := app.ApplyFile(ctx, &cfg, locked); err != nil {
		return nil, false, err
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
