package ui

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameStates(t *testing.T) {
	c := newTestCtx()
	assert.Equal(t, FrameIdle, c.State())
	assert.Equal(t, 0, c.Frame())

	c.BeginFrame()
	assert.Equal(t, FrameOpen, c.State())
	assert.Equal(t, 1, c.Frame())
	c.EndFrame()
	assert.Equal(t, FrameClosed, c.State())
	assert.Equal(t, 1, c.Frame())

	c.Update(func() {})
	assert.Equal(t, 2, c.Frame())
}

func TestFrameStateErrors(t *testing.T) {
	c := newTestCtx()
	requireUsageError(t, ErrFrameState, c.EndFrame)

	c.BeginFrame()
	requireUsageError(t, ErrFrameState, c.BeginFrame)
	requireUsageError(t, ErrFrameState, func() { c.SetStyle(DefaultStyle()) })

	c = New(nil, nil)
	requireUsageError(t, ErrNoMetrics, c.BeginFrame)
}

func TestUnbalancedFrameNamesEveryStack(t *testing.T) {
	c := newTestCtx()
	c.BeginFrame()
	c.PushIDString("left open")
	c.PushClip(R(0, 0, 10, 10))
	c.PushClip(R(0, 0, 5, 5))
	ue := requireUsageError(t, ErrUnbalancedFrame, c.EndFrame)
	assert.Contains(t, ue.Detail, "id=1")
	assert.Contains(t, ue.Detail, "clip=2")
	assert.NotContains(t, ue.Detail, "layout")
}

func TestUnclosedWindowIsUnbalanced(t *testing.T) {
	c := newTestCtx()
	c.BeginFrame()
	require.True(t, c.BeginWindow("w", R(0, 0, 50, 50), 0))
	ue := requireUsageError(t, ErrUnbalancedFrame, c.EndFrame)
	for _, s := range []string{"id=1", "clip=2", "container=1", "layout=1"} {
		assert.Contains(t, ue.Detail, s)
	}
}

func TestFatalIsLogged(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	c := newTestCtx(WithLogger(log))
	requireUsageError(t, ErrStackUnderflow, c.PopID)
	assert.Contains(t, buf.String(), "fatal usage error")
	assert.Contains(t, buf.String(), "op=\"pop id\"")
}

func TestStyleSwapBetweenFrames(t *testing.T) {
	c := newTestCtx()
	st := flatStyle()
	st.Spacing = 9
	c.SetStyle(st)
	assert.Equal(t, 9, c.Style().Spacing)
}

// A window at (10,10,200,100) with no padding and no title holding a row
// of two 80px buttons.
func TestEndToEndTwoButtons(t *testing.T) {
	c := newTestCtx(WithStyle(flatStyle()))
	var res [2]Result
	c.Update(func() {
		require.True(t, c.BeginWindow("demo", R(10, 10, 200, 100), plainWindow))
		c.Row(0, 80, 80)
		res[0] = c.Button("a")
		res[1] = c.Button("b")
		c.EndWindow()
	})
	assert.Zero(t, res[0]|res[1])

	st := c.Style()
	text := st.Colors[ColorText]
	want := []Command{
		{Type: CommandRect, Rect: R(10, 10, 200, 100), Color: st.Colors[ColorWindowBg]},
		{Type: CommandRect, Rect: R(10, 10, 80, 10), Color: st.Colors[ColorButton]},
		{Type: CommandClip, Rect: R(10, 10, 80, 10)},
		{Type: CommandText, Text: "a", Rect: R(47, 9, 6, 12), Color: text},
		{Type: CommandClip, Rect: UnclippedRect},
		{Type: CommandRect, Rect: R(94, 10, 80, 10), Color: st.Colors[ColorButton]},
		{Type: CommandClip, Rect: R(94, 10, 80, 10)},
		{Type: CommandText, Text: "b", Rect: R(131, 9, 6, 12), Color: text},
		{Type: CommandClip, Rect: UnclippedRect},
	}
	if diff := cmp.Diff(want, collect(c), ignoreOffsets); diff != "" {
		t.Errorf("commands (-want +got):\n%s", diff)
	}
	assert.Equal(t, Vec2{164, 10}, c.GetContainer("demo").ContentSize)
}

func TestFrameBordersDrawBox(t *testing.T) {
	st := flatStyle()
	st.FrameBorders = true
	c := newTestCtx(WithStyle(st))
	c.Update(func() {
		c.Window("w", R(10, 10, 50, 50), plainWindow, func() {})
	})
	assert.Equal(t, []Rect{
		R(10, 10, 50, 50),
		R(10, 9, 50, 1), R(10, 60, 50, 1),
		R(9, 9, 1, 52), R(60, 9, 1, 52),
	}, rectsOf(collect(c)))
}
