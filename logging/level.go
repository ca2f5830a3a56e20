package logging

// Level represents a log level. Its value hierarchy is designed to be ordered
// and comparable by value.
type Level uint

const (
	// LevelDisabled indicates that logging is completely disabled.
	LevelDisabled Level = iota
	// LevelError indicates that only reads ended by a non-filesystem error
	// are logged.
	LevelError
	// LevelWarn indicates that failures which left attributes absent are
	// logged as well.
	LevelWarn
	// LevelInfo indicates that fallbacks to the basic view are logged.
	LevelInfo
	// LevelDebug indicates that absent platform extensions are logged.
	LevelDebug
)

// String provides a human-readable representation of a log level.
func (l Level) String() string {
	switch l {
	case LevelDisabled:
		return "disabled"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}
