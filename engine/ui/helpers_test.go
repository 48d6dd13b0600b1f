package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixed metrics: 6px per byte, 12px lines
func stubWidth(_ Font, s string) int { return 6 * len(s) }
func stubHeight(Font) int            { return 12 }

func newTestCtx(opts ...Option) *Ctx {
	return New(stubWidth, stubHeight, opts...)
}

// flatStyle has no padding and no borders so rects are easy to predict.
func flatStyle() Style {
	st := DefaultStyle()
	st.Padding = 0
	return st
}

// requireUsageError runs f and asserts it panics with a UsageError
// wrapping want.
func requireUsageError(t *testing.T, want error, f func()) *UsageError {
	t.Helper()
	var got *UsageError
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a panic")
			ue, ok := r.(*UsageError)
			require.True(t, ok, "panic value %T is not *UsageError", r)
			got = ue
		}()
		f()
	}()
	require.True(t, errors.Is(got, want), "got %v, want %v", got, want)
	return got
}

func collect(c *Ctx) []Command {
	var out []Command
	for cmd := range c.Commands() {
		out = append(out, cmd)
	}
	return out
}

func rectsOf(cmds []Command) []Rect {
	var out []Rect
	for _, cmd := range cmds {
		if cmd.Type == CommandRect {
			out = append(out, cmd.Rect)
		}
	}
	return out
}
