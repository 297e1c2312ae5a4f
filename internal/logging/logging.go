// Package logging builds the leveled stderr logger.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w. At default level only warnings and
// errors are shown; debug enables diagnostics such as the store's
// corrupt-file handling.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: false,
		Prefix:          "ltask",
	})
}
