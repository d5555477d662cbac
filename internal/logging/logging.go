// Package logging configures zerolog output of the zen command.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Level maps command line verbosity to a log level: 0 keeps fallback, 1 info, 2 debug, 3+ trace.
// Verbosity never raises the threshold above fallback.
func Level(verbosity int, fallback zerolog.Level) zerolog.Level {
	var l zerolog.Level
	switch verbosity {
	case 0:
		return fallback
	case 1:
		l = zerolog.InfoLevel
	case 2:
		l = zerolog.DebugLevel
	default:
		l = zerolog.TraceLevel
	}
	if fallback < l {
		return fallback
	}
	return l
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, is := w.(*os.File)
	return is && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Setup sets the global level and the global logger writing to w with console formatting.
// Colours are used only on a terminal, caller information is added at debug and trace levels.
func Setup(w io.Writer, level zerolog.Level) {
	zerolog.SetGlobalLevel(level)

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    !IsTerminal(w),
	}
	log.Logger = zerolog.New(consoleWriter).With().Timestamp().Logger()
	if level <= zerolog.DebugLevel {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Str("level", level.String()).Msg("logger initialized")
}

// GetLogger returns the global logger with component name.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogOperationStart logs the start of an operation and returns a function logging its completion.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("operation completed")
	}
}
