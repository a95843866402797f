package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	cases := map[LogLevel]string{
		LevelDebug:   "DEBUG",
		LevelInfo:    "INFO",
		LevelWarn:    "WARN",
		LevelError:   "ERROR",
		LogLevel(99): "UNKNOWN",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	t.Cleanup(reset)

	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Debug("Probe", "debug message")
	Info("Probe", "info message")
	Warn("Probe", "warn message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("expected debug/info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "warn message") {
		t.Errorf("expected warn message in output, got %q", out)
	}
}

func TestSubsystemAndErrorAttrs(t *testing.T) {
	t.Cleanup(reset)

	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Error("Connection", errors.New("connection refused"), "probe to %s failed", "host:8778")

	out := buf.String()
	if !strings.Contains(out, "subsystem=Connection") {
		t.Errorf("expected subsystem attribute, got %q", out)
	}
	if !strings.Contains(out, "connection refused") {
		t.Errorf("expected error attribute, got %q", out)
	}
	if !strings.Contains(out, "probe to host:8778 failed") {
		t.Errorf("expected formatted message, got %q", out)
	}
}

func TestUninitializedLoggerIsSilent(t *testing.T) {
	t.Cleanup(reset)
	reset()

	// Must not panic when logging before InitForCLI.
	Debug("Probe", "no logger yet")
	Info("Probe", "no logger yet")
}
