package logger

import "log/slog"

//go:generate enumer -type=Level -trimprefix=Level -transform=upper -json -text -yaml

// Level represents the log level.
type Level int

const (
	// LevelDebug logs everything, including plugin debug callbacks.
	LevelDebug Level = iota

	// LevelInfo logs actions and informational messages.
	LevelInfo

	// LevelError logs failures only.
	LevelError
)

// ToSlogLevel converts Level to slog.Level.
func (l Level) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFromFlags determines the log level from the verbose and debug flags.
func LevelFromFlags(verbose, debug bool) Level {
	switch {
	case debug:
		return LevelDebug
	case verbose:
		return LevelInfo
	default:
		return LevelError
	}
}
