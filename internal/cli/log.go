package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// loggerTimeFormat keeps CLI timestamps short: wall clock with
// centisecond precision, no date.
const loggerTimeFormat = "15:04:05.00"

// newLogger builds the CLI logger. Every command shares one instance so
// --verbose switches the whole run at once.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      loggerTimeFormat,
		Level:           level,
	})
}
