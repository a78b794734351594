package gooey

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// captureLogs installs a text logger at level for the duration of the test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestDiscardHandler(t *testing.T) {
	h := discard{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = true", level)
		}
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("frame", 1)}).(discard); !ok {
		t.Error("WithAttrs() did not return discard")
	}
	if _, ok := h.WithGroup("engine").(discard); !ok {
		t.Error("WithGroup() did not return discard")
	}
}

func TestLogger_SilentByDefault(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}

	SetLogger(slog.Default())
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore silence")
	}
}

func TestEngineLogsTransitions(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	e := newScenarioEngine()
	e.Recompute(scenarioRest.Translate(0, -100))
	e.Recompute(scenarioRest.Translate(0, -200))

	out := buf.String()
	for _, want := range []string{
		"gooey: constriction changed", "to=constricted", "travel=100",
		"gooey: avulsion changed", "to=latched", "threshold=140",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestEngineTransitions_SkippedAboveDebug(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)

	e := newScenarioEngine()
	e.Recompute(scenarioRest.Translate(0, -200))
	if buf.Len() != 0 {
		t.Errorf("info logger received transition records:\n%s", buf)
	}
}

func TestSessionLogsDragEnd(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)

	s := NewSession(scenarioRest, scenarioBaseline, 30)
	s.Move(0, -200)
	s.End()
	if out := buf.String(); !strings.Contains(out, "gooey: drag ended") || !strings.Contains(out, "avulsion=latched") {
		t.Errorf("log output = %q", out)
	}
}
