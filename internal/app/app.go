package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/sumsquares/internal/ctxlog"
	"github.com/vk/sumsquares/internal/sumsq"
)

// maxTracedBound limits how many running totals are logged at debug level.
const maxTracedBound = 32

// App computes and reports one sum of squares.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp returns an App that writes its result to outW and its logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// FormatResult renders the single report line, without a trailing newline.
func FormatResult(n, total int64) string {
	return fmt.Sprintf("Sum of squares 1..%d = %d", n, total)
}

// Run computes the sum for the configured bound and writes one line to the
// output writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx).With("bound", a.config.Bound, "checked", a.config.Checked)
	logger.Debug("App.Run method started.")

	if a.config.Bound <= 0 {
		logger.Info("Bound is not positive, the range is empty.")
	}

	var total int64
	if a.config.Checked {
		var err error
		total, err = sumsq.SumChecked(a.config.Bound)
		if err != nil {
			return fmt.Errorf("sum of squares 1..%d: %w", a.config.Bound, err)
		}
	} else {
		total = sumsq.Sum(a.config.Bound)
	}
	logger.Info("Computation finished.", "total", total)

	if a.config.Bound <= maxTracedBound && logger.Enabled(ctx, slog.LevelDebug) {
		partials, err := sumsq.Partials(a.config.Bound)
		if err != nil {
			return fmt.Errorf("running totals 1..%d: %w", a.config.Bound, err)
		}
		logger.Debug("Running totals.", "partials", partials)
	}

	if _, err := fmt.Fprintln(a.outW, FormatResult(a.config.Bound, total)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	logger.Debug("App.Run method finished.")
	return nil
}
