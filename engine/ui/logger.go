package ui

import (
	"context"
	"log/slog"
)

// nopHandler discards everything; Enabled reports false so the engine skips
// attribute formatting on the hot path.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// Logger returns the logger the context reports through.
func (c *Ctx) Logger() *slog.Logger { return c.log }
