package engine

import (
	"context"
	"log/slog"
)

// nopHandler discards every record. Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. By default the engine logs nothing.
//
// Levels used:
//   - [slog.LevelDebug]: click accumulation, snaps, tool switches
//   - [slog.LevelInfo]: commits, undo and redo
//   - [slog.LevelWarn]: aborted constructions
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l == nil {
			l = newNopLogger()
		}
		e.log = l
	}
}

// WithSettings replaces the default settings. They are validated by New.
func WithSettings(s Settings) Option {
	return func(e *Engine) {
		e.settings = s
	}
}
