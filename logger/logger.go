// Package logger is the structured logging facade used by the containers,
// the schedulers and the dronesim command.
//
// Callers log a message plus alternating key/value pairs. The default
// implementation is backed by log/slog and renders either JSON or a
// colored console format.
//
// Levels, from most to least verbose:
//
//   - DebugLevel: container resizes and per-request scheduling steps.
//   - InfoLevel: start-up and summary messages.
//   - WarnLevel: input that was accepted but looks wrong.
//   - ErrorLevel: failed commands.
//   - FatalLevel: the message is written and the process exits.
package logger

import (
	"fmt"
	"strings"
)

// Level indicates the logging severity level.
type Level int8

const (
	// DebugLevel is off unless asked for on the command line.
	DebugLevel Level = iota - 1
	// InfoLevel is the default.
	InfoLevel
	WarnLevel
	ErrorLevel
	// FatalLevel messages are followed by os.Exit(1).
	FatalLevel
)

// String returns the lower-case name of the level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	default:
		return fmt.Sprintf("level(%d)", int8(l))
	}
}

// ParseLevel converts a level name like "debug" or "WARN" into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger is implemented by SlogLogger, the no-op logger and MockLogger.
// Every method accepts keysAndValues in slog's alternating form; fields given
// to With are carried by the returned logger only.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	// Fatal writes msg and exits with status 1 regardless of the level.
	Fatal(msg string, keysAndValues ...any)
	With(keyValues ...any) Logger
	// Level reports the lowest level that is written.
	Level() Level
	SetLevel(level Level)
}
