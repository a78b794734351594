package gooey

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record and reports every level as disabled, so
// Recompute never formats attributes unless a logger is installed.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

// active holds the installed logger; nil means silent.
var active atomic.Pointer[slog.Logger]

// SetLogger installs l for the engine, sessions and the raster and
// scenario packages. Passing nil silences them again. It is safe to call
// while engines are recomputing on other goroutines.
//
// Engines log state transitions at Debug and sessions log drag ends at
// Info:
//
//	gooey.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	active.Store(l)
}

// Logger returns the installed logger, or a silent one.
func Logger() *slog.Logger {
	if l := active.Load(); l != nil {
		return l
	}
	return silent
}

// logTransition records a state machine change at Debug. from and to are
// the state names; attrs are extra key/value pairs.
func logTransition(machine string, from, to any, attrs ...any) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	args := append([]any{"from", from, "to", to}, attrs...)
	l.Debug("gooey: "+machine+" changed", args...)
}
