package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes ambient log entries directly to an output stream,
// gated by per-component enable flags. Unlike a per-frame trace, the
// events it carries (ROM load, reset, core wiring) happen at most a
// handful of times per run, so there's no need for the buffering or
// background draining a high-frequency tracer would want.
type Logger struct {
	out io.Writer

	mu               sync.Mutex
	componentEnabled map[Component]bool
}

// NewLogger creates a logger writing to stderr with every component
// disabled; callers opt components in with SetComponentEnabled.
func NewLogger() *Logger {
	return &Logger{
		out: os.Stderr,
		componentEnabled: map[Component]bool{
			ComponentHost:   false,
			ComponentSystem: false,
		},
	}
}

// SetComponentEnabled enables or disables logging for a component.
func (l *Logger) SetComponentEnabled(component Component, enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.componentEnabled[component] = enabled
}

// Log writes a message for component if it's enabled.
func (l *Logger) Log(component Component, level LogLevel, message string, data map[string]interface{}) {
	l.mu.Lock()
	enabled := l.componentEnabled[component]
	l.mu.Unlock()
	if !enabled {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now(),
		Component: component,
		Level:     level,
		Message:   message,
		Data:      data,
	}
	fmt.Fprintln(l.out, entry)
}

// LogHost logs a host-level event: window/input wiring, core setup, warnings.
func (l *Logger) LogHost(level LogLevel, message string, data map[string]interface{}) {
	l.Log(ComponentHost, level, message, data)
}

// LogSystem logs a system-level event: ROM load, reset.
func (l *Logger) LogSystem(level LogLevel, message string, data map[string]interface{}) {
	l.Log(ComponentSystem, level, message, data)
}
