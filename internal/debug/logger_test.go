package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogDropsDisabledComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger()
	l.out = &buf

	l.LogHost(LogLevelInfo, "should not appear", nil)

	if buf.Len() != 0 {
		t.Fatalf("Log wrote output for a disabled component: %q", buf.String())
	}
}

func TestLogWritesEnabledComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger()
	l.out = &buf
	l.SetComponentEnabled(ComponentSystem, true)

	l.LogSystem(LogLevelInfo, "roms loaded", map[string]interface{}{"program": "rygar.rom"})

	out := buf.String()
	if !strings.Contains(out, "System") || !strings.Contains(out, "roms loaded") {
		t.Fatalf("Log output = %q, missing expected component/message", out)
	}
}

func TestSetComponentEnabledIsIndependentPerComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger()
	l.out = &buf
	l.SetComponentEnabled(ComponentHost, true)

	l.LogSystem(LogLevelInfo, "system event", nil)
	if buf.Len() != 0 {
		t.Fatalf("enabling Host leaked output for System: %q", buf.String())
	}

	l.LogHost(LogLevelInfo, "host event", nil)
	if buf.Len() == 0 {
		t.Fatal("enabled Host component produced no output")
	}
}
