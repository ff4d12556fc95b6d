// Package cli implements the waffle command-line interface.
//
// The commands follow the stages of the pipeline: plan prints the block
// allocation of a chart, layout computes pixel geometry, visualize renders a
// stored layout, and render runs the whole pipeline in one step. preview and
// watch are interactive variants of render; serve exposes the pipeline over
// HTTP.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The CLI owns a
// single logger that is handed to the pipeline runner and the HTTP server.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "duration", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}
