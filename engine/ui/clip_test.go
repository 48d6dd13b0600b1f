package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckClip(t *testing.T) {
	clip := R(0, 0, 100, 100)
	tests := []struct {
		name string
		r    Rect
		want ClipResult
	}{
		{"inside", R(10, 10, 20, 20), ClipInside},
		{"exact", R(0, 0, 100, 100), ClipInside},
		{"crosses left", R(-5, 10, 10, 10), ClipPartial},
		{"touches right edge", R(100, 0, 10, 10), ClipPartial},
		{"past right", R(101, 0, 10, 10), ClipOutside},
		{"above", R(0, -20, 10, 10), ClipOutside},
		{"covers", R(-10, -10, 200, 200), ClipPartial},
	}
	c := newTestCtx()
	c.PushClip(clip)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.CheckClip(tt.r))
		})
	}
}

func TestClipStack(t *testing.T) {
	c := newTestCtx()
	assert.Equal(t, UnclippedRect, c.ClipRect())

	c.PushClip(R(10, 10, 100, 100))
	c.PushClip(R(50, 0, 100, 30))
	assert.Equal(t, R(50, 10, 60, 20), c.ClipRect())

	c.PushClip(R(500, 500, 10, 10))
	assert.True(t, c.ClipRect().Empty())

	c.PopClip()
	c.PopClip()
	assert.Equal(t, R(10, 10, 100, 100), c.ClipRect())
	c.PopClip()
	assert.Equal(t, UnclippedRect, c.ClipRect())

	requireUsageError(t, ErrStackUnderflow, c.PopClip)
}

func TestClipStackOverflow(t *testing.T) {
	c := newTestCtx()
	for range ClipStackSize {
		c.PushClip(UnclippedRect)
	}
	requireUsageError(t, ErrStackOverflow, func() { c.PushClip(UnclippedRect) })
}
