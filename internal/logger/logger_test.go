package logger

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func newTestLogger(verbose bool) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New("test", func() bool { return verbose })
	l.SetOutput(&buf)
	l.sink.now = func() time.Time { return time.Date(2024, 1, 1, 12, 30, 45, 0, time.UTC) }
	return l, &buf
}

func TestVerboseGating(t *testing.T) {
	tests := []struct {
		verbose bool
		log     func(*Logger)
		written bool
	}{
		{false, func(l *Logger) { l.Debug("d") }, false},
		{false, func(l *Logger) { l.Info("i") }, false},
		{false, func(l *Logger) { l.Warn("w") }, true},
		{false, func(l *Logger) { l.Error("e") }, true},
		{true, func(l *Logger) { l.Debug("d") }, true},
		{true, func(l *Logger) { l.Info("i") }, true},
	}

	for _, tt := range tests {
		l, buf := newTestLogger(tt.verbose)
		tt.log(l)
		if got := buf.Len() > 0; got != tt.written {
			t.Errorf("verbose=%v: written=%v, want %v (%q)", tt.verbose, got, tt.written, buf.String())
		}
	}
}

func TestFormat(t *testing.T) {
	l, buf := newTestLogger(true)
	l.Info("run finished", F("algorithm", "merge"), Err(errors.New("boom")))

	want := "[12:30:45.000] INFO [test] run finished [algorithm=merge error=boom]\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWithComponentSharesOutput(t *testing.T) {
	l, buf := newTestLogger(false)
	child := l.WithComponent("viz")

	var other bytes.Buffer
	l.SetOutput(&other)
	child.Warn("redirected")

	if buf.Len() != 0 {
		t.Errorf("old writer should be unused, got %q", buf.String())
	}
	if !strings.Contains(other.String(), "WARN [viz] redirected") {
		t.Errorf("unexpected output %q", other.String())
	}
}

func TestNilVerboseAndEmptyComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New("", nil)
	l.SetOutput(&buf)
	l.Info("hidden")
	l.Error("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info should be dropped with nil verbose callback")
	}
	if !strings.Contains(buf.String(), "ERROR [main] shown") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing")
}

func TestOutputRestore(t *testing.T) {
	var buf bytes.Buffer
	l := New("sortsim", nil)
	l.SetOutput(&buf)

	prev := l.Output()
	l.SetOutput(io.Discard)
	l.Warn("dropped")
	l.SetOutput(prev)
	l.WithComponent("run").Warn("kept")

	if strings.Contains(buf.String(), "dropped") {
		t.Errorf("discarded line leaked: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "WARN [run] kept") {
		t.Errorf("unexpected output %q", buf.String())
	}
}
