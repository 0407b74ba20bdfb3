package debug

import (
	"fmt"
	"time"
)

// LogLevel represents the severity level of a log entry.
type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelNone:
		return "NONE"
	case LogLevelError:
		return "ERROR"
	case LogLevelWarning:
		return "WARNING"
	case LogLevelInfo:
		return "INFO"
	case LogLevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Component identifies the subsystem a log entry came from. Only the
// components this module actually logs from are defined: the bus
// callback, compositor, and tilemap/sprite draw paths never log (no
// logging from the hot path).
type Component string

const (
	ComponentHost   Component = "Host"
	ComponentSystem Component = "System"
)

// LogEntry is one formatted log line.
type LogEntry struct {
	Timestamp time.Time
	Component Component
	Level     LogLevel
	Message   string
	Data      map[string]interface{}
}

func (e LogEntry) String() string {
	s := fmt.Sprintf("[%s] [%s] %s: %s", e.Timestamp.Format("15:04:05.000"), e.Component, e.Level, e.Message)
	if len(e.Data) > 0 {
		s += fmt.Sprintf(" %v", e.Data)
	}
	return s
}
