// Package slog provides logging decorators for templatemaker services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/templatemaker"
)

// Ensure LoggingCleaner implements templatemaker.Cleaner.
var _ templatemaker.Cleaner = (*LoggingCleaner)(nil)

// LoggingCleaner wraps a Cleaner with debug logging.
type LoggingCleaner struct {
	next   templatemaker.Cleaner
	name   string
	logger *slog.Logger
}

// NewLoggingCleaner creates a new LoggingCleaner. name identifies the
// cleaning mode in log output.
func NewLoggingCleaner(next templatemaker.Cleaner, name string, logger *slog.Logger) *LoggingCleaner {
	return &LoggingCleaner{next: next, name: name, logger: logger}
}

// Clean delegates to the wrapped cleaner and logs the operation.
func (c *LoggingCleaner) Clean(text string) (out string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("clean",
			"cleaner", c.name,
			"in", len(text),
			"out", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Clean(text)
}
