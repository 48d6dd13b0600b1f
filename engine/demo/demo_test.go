package demo

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/gfx/renderer2d"
	"github.com/hubastard/groveui/engine/text"
	"github.com/hubastard/groveui/engine/ui"
)

var metrics = text.Fixed{Advance: 6, Line: 12}

func newCtx() *ui.Ctx { return ui.New(metrics.TextWidth, metrics.TextHeight) }

func frame(c *ui.Ctx, d *Demo) []ui.Command {
	c.Update(func() { d.Build(c) })
	var out []ui.Command
	for cmd := range c.Commands() {
		out = append(out, cmd)
	}
	return out
}

func findText(t *testing.T, cmds []ui.Command, s string) ui.Rect {
	t.Helper()
	for _, cmd := range cmds {
		if cmd.Type == ui.CommandText && cmd.Text == s {
			return cmd.Rect
		}
	}
	t.Fatalf("no text record %q", s)
	return ui.Rect{}
}

// click presses the left button over r across the frames the ui needs to
// learn the hover root and the hovered control.
func click(c *ui.Ctx, d *Demo, r ui.Rect) []ui.Command {
	x, y := r.X+r.W/2, r.Y+r.H/2
	c.InputMouseMove(x, y)
	frame(c, d)
	frame(c, d)
	c.InputMouseDown(x, y, ui.MouseLeft)
	cmds := frame(c, d)
	c.InputMouseUp(x, y, ui.MouseLeft)
	frame(c, d)
	return cmds
}

func TestBuildIsDeterministic(t *testing.T) {
	a, b := newCtx(), newCtx()
	da, db := New(), New()
	var got, want []ui.Command
	for range 3 {
		got = frame(a, da)
		want = frame(b, db)
	}
	require.NotEmpty(t, got)
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(ui.Command{})); diff != "" {
		t.Fatalf("command streams differ (-want +got):\n%s", diff)
	}
	findText(t, got, "Demo Window")
	findText(t, got, "Log Window")
	findText(t, got, "Style Editor")
}

func TestButtonLogs(t *testing.T) {
	c, d := newCtx(), New()
	cmds := frame(c, d)
	click(c, d, findText(t, cmds, "Button 1"))
	assert.Equal(t, []string{"Pressed button 1"}, d.Lines())

	cmds = frame(c, d)
	findText(t, cmds, "Pressed button 1")
	findText(t, cmds, "1 lines")
}

func TestCheckboxLogs(t *testing.T) {
	c, d := newCtx(), New()
	cmds := frame(c, d)
	click(c, d, findText(t, cmds, "Test 3"))
	cmds = frame(c, d)
	click(c, d, findText(t, cmds, "Checkbox 2"))
	assert.Equal(t, []string{"Checkbox 2: true"}, d.Lines())
}

func TestStyleEditsWaitForTheNextFrame(t *testing.T) {
	c, d := newCtx(), New()
	before := c.Style().Colors[ui.ColorText]
	cmds := frame(c, d)

	label := findText(t, cmds, "text")
	var plus ui.Rect
	for _, cmd := range cmds {
		if cmd.Type == ui.CommandText && cmd.Text == "+" && cmd.Rect.Y == label.Y {
			plus = cmd.Rect
		}
	}
	require.NotZero(t, plus.W)

	click(c, d, plus)
	assert.Equal(t, before, c.Style().Colors[ui.ColorText], "not applied inside the frame")
	require.True(t, d.ApplyPending(c))
	assert.Equal(t, shade(before, 16), c.Style().Colors[ui.ColorText])
	assert.False(t, d.ApplyPending(c))
}

func TestLogKeepsTheNewestLines(t *testing.T) {
	d := New()
	for i := range maxLogLines + 6 {
		d.Log(fmt.Sprint("line ", i))
	}
	require.Len(t, d.Lines(), maxLogLines)
	assert.Equal(t, "line 6", d.Lines()[0])
	assert.Equal(t, "line 69", d.Lines()[maxLogLines-1])
}

func TestStatsWindow(t *testing.T) {
	c, d := newCtx(), New()
	d.ShowStats = true
	d.RendererStats = func() renderer2d.Statistics { return renderer2d.Statistics{DrawCalls: 7} }
	d.SetFrameTime(16.5)
	cmds := frame(c, d)
	findText(t, cmds, "Draw calls")
	findText(t, cmds, "7")
	findText(t, cmds, "16.50 ms")
	findText(t, cmds, "Goroutines")
}

func TestShade(t *testing.T) {
	assert.Equal(t, ui.DefaultStyle().Colors[ui.ColorText], shade(ui.DefaultStyle().Colors[ui.ColorText], 0))
	got := shade(ui.DefaultStyle().Colors[ui.ColorText], 40)
	assert.Equal(t, uint8(255), got.R)
	got = shade(got, -300)
	assert.Equal(t, uint8(0), got.G)
	assert.Equal(t, uint8(255), got.A)
}

type fakeWindow struct {
	core.Window
	closed bool
}

func (w *fakeWindow) RequestClose() { w.closed = true }

func TestLayer(t *testing.T) {
	win := &fakeWindow{}
	e := &core.Engine{Window: win, UI: newCtx(), Log: slog.New(slog.DiscardHandler)}
	l := NewLayer(New())
	l.DumpDir = t.TempDir()

	e.PushLayer(l)
	assert.Equal(t, []string{"Welcome to groveui"}, l.Lines())

	e.UI.Update(func() { l.OnUI(e) })
	e.UI.Update(func() { l.OnUI(e) })
	assert.Positive(t, l.frameMs)

	st := e.UI.Style()
	st.Padding = 9
	l.pending = &st
	l.OnUpdate(e, 1.0/60)
	assert.Equal(t, 9, e.UI.Style().Padding)

	assert.False(t, l.OnEvent(e, core.EventMouseMove{X: 1, Y: 2}))
	assert.False(t, l.OnEvent(e, core.EventKey{Key: core.KeyEscape, Down: false}))
	assert.True(t, l.OnEvent(e, core.EventKey{Key: core.KeyP, Down: true, Mods: core.ModCtrl}))
	assert.Len(t, l.Lines(), 2, "the dump result is logged either way")

	assert.True(t, l.OnEvent(e, core.EventKey{Key: core.KeyEscape, Down: true}))
	assert.True(t, win.closed)
}
