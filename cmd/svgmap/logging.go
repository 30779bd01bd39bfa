package main

import (
	"io"

	charmlog "github.com/charmbracelet/log"
)

// logTimeFormat is the timestamp layout of text log lines.
const logTimeFormat = "15:04:05"

// newLogger builds the run logger on w from the common flags.
// --quiet keeps errors only, --verbose adds debug lines, --log-json
// switches to one JSON object per line.
func newLogger(w io.Writer, f commonFlags) *charmlog.Logger {
	level := charmlog.InfoLevel
	switch {
	case f.quiet:
		level = charmlog.ErrorLevel
	case f.verbose:
		level = charmlog.DebugLevel
	}

	logger := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: f.verbose || f.logJSON,
		TimeFormat:      logTimeFormat,
		Level:           level,
	})
	if f.logJSON {
		logger.SetFormatter(charmlog.JSONFormatter)
	} else {
		logger.SetFormatter(charmlog.TextFormatter)
	}
	return logger
}
