package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/groveui/engine/colors"
)

const plainWindow = OptNoTitle | OptNoScroll | OptNoResize

var ignoreOffsets = cmpopts.IgnoreUnexported(Command{})

func fill(name string, r Rect, col colors.Color) func(c *Ctx) {
	return func(c *Ctx) {
		c.Window(name, r, plainWindow|OptNoFrame, func() {
			c.DrawRect(r, col)
		})
	}
}

func TestCommandsFollowDeclarationOrder(t *testing.T) {
	c := newTestCtx()
	c.Update(func() {
		fill("a", R(0, 0, 10, 10), colors.Red)(c)
		fill("b", R(20, 0, 10, 10), colors.Green)(c)
		fill("c", R(40, 0, 10, 10), colors.Blue)(c)
	})

	want := []Command{
		{Type: CommandRect, Rect: R(0, 0, 10, 10), Color: colors.Red},
		{Type: CommandRect, Rect: R(20, 0, 10, 10), Color: colors.Green},
		{Type: CommandRect, Rect: R(40, 0, 10, 10), Color: colors.Blue},
	}
	if diff := cmp.Diff(want, collect(c), ignoreOffsets); diff != "" {
		t.Errorf("commands (-want +got):\n%s", diff)
	}
	// the list can be walked again until the next frame
	if diff := cmp.Diff(collect(c), collect(c), ignoreOffsets); diff != "" {
		t.Errorf("second pass differs:\n%s", diff)
	}
}

func TestZOrderPaintsRaisedRootLast(t *testing.T) {
	frame := func(c *Ctx) {
		c.Update(func() {
			fill("a", R(0, 0, 10, 10), colors.Red)(c)
			fill("b", R(20, 0, 10, 10), colors.Green)(c)
		})
	}
	for _, tt := range []struct {
		order PaintOrder
		want  []colors.Color
	}{
		{PaintDeclaration, []colors.Color{colors.Red, colors.Green}},
		{PaintZOrder, []colors.Color{colors.Green, colors.Red}},
	} {
		t.Run(tt.order.String(), func(t *testing.T) {
			c := newTestCtx(WithPaintOrder(tt.order))
			frame(c)
			c.BringToFront(c.GetContainer("a"))
			frame(c)

			var got []colors.Color
			for cmd := range c.Commands() {
				got = append(got, cmd.Color)
			}
			assert.Equal(t, tt.want, got)
			assertJumpsLand(t, c.CommandList())
		})
	}
}

func TestRootBegunInsideRoot(t *testing.T) {
	frame := func(c *Ctx) {
		c.Update(func() {
			c.Window("outer", R(0, 0, 100, 100), plainWindow|OptNoFrame, func() {
				c.DrawRect(R(0, 0, 10, 10), colors.Red)
				fill("inner", R(20, 20, 10, 10), colors.Green)(c)
				c.DrawRect(R(40, 0, 10, 10), colors.Blue)
			})
		})
	}
	colorsOf := func(c *Ctx) []colors.Color {
		var got []colors.Color
		for cmd := range c.Commands() {
			got = append(got, cmd.Color)
		}
		return got
	}

	t.Run("declaration", func(t *testing.T) {
		c := newTestCtx()
		frame(c)
		assert.Equal(t, []colors.Color{colors.Red, colors.Blue, colors.Green}, colorsOf(c))
		assertJumpsLand(t, c.CommandList())
	})
	t.Run("z-order", func(t *testing.T) {
		c := newTestCtx(WithPaintOrder(PaintZOrder))
		frame(c)
		assert.Equal(t, []colors.Color{colors.Red, colors.Blue, colors.Green}, colorsOf(c))
		assertJumpsLand(t, c.CommandList())

		c.BringToFront(c.GetContainer("outer"))
		frame(c)
		assert.Equal(t, []colors.Color{colors.Green, colors.Red, colors.Blue}, colorsOf(c))
		assertJumpsLand(t, c.CommandList())
	})
}

// assertJumpsLand checks every jump targets a record boundary or the end.
func assertJumpsLand(t *testing.T, l *CommandList) {
	t.Helper()
	starts := map[int]bool{l.Len(): true}
	var jumps []Command
	for rec := range l.Records() {
		starts[rec.Offset()] = true
		if rec.Type == CommandJump {
			jumps = append(jumps, rec)
		}
	}
	require.NotEmpty(t, jumps)
	assert.Equal(t, 0, jumps[0].Offset(), "first record is the first root's head jump")
	for _, j := range jumps {
		assert.True(t, starts[j.Target], "jump at %d targets %d", j.Offset(), j.Target)
	}
}

func TestJumpLayout(t *testing.T) {
	c := newTestCtx()
	c.Update(func() {
		fill("a", R(0, 0, 10, 10), colors.Red)(c)
		fill("b", R(20, 0, 10, 10), colors.Green)(c)
	})
	var recs []Command
	for rec := range c.CommandList().Records() {
		recs = append(recs, rec)
	}
	types := make([]CommandType, len(recs))
	for i, r := range recs {
		types[i] = r.Type
	}
	require.Equal(t, []CommandType{
		CommandJump, CommandRect, CommandJump,
		CommandJump, CommandRect, CommandJump,
	}, types)

	assert.Equal(t, jumpSize, recs[0].Target, "head of a enters a's content")
	assert.Equal(t, recs[3].Offset()+jumpSize, recs[2].Target, "tail of a enters b's content")
	assert.Equal(t, c.CommandList().Len(), recs[5].Target, "tail of b exits")
	assertJumpsLand(t, c.CommandList())
}

func TestTextRecord(t *testing.T) {
	c := newTestCtx()
	c.Update(func() {
		c.Window("w", R(0, 0, 200, 100), plainWindow|OptNoFrame, func() {
			c.DrawText("mono", "hello", V2(5, 6), colors.White)
			c.DrawText("sans", "hi", V2(5, 30), colors.Gray)
			c.DrawText("mono", "", V2(5, 50), colors.White)
		})
	})
	want := []Command{
		{Type: CommandText, Font: "mono", Text: "hello", Rect: R(5, 6, 30, 12), Color: colors.White},
		{Type: CommandText, Font: "sans", Text: "hi", Rect: R(5, 30, 12, 12), Color: colors.Gray},
		{Type: CommandText, Font: "mono", Text: "", Rect: R(5, 50, 0, 12), Color: colors.White},
	}
	if diff := cmp.Diff(want, collect(c), ignoreOffsets); diff != "" {
		t.Errorf("commands (-want +got):\n%s", diff)
	}
}

func TestPartialClipIsBracketed(t *testing.T) {
	c := newTestCtx()
	c.Update(func() {
		c.Window("w", R(0, 0, 200, 100), plainWindow|OptNoFrame, func() {
			c.PushClip(R(0, 0, 50, 50))
			c.DrawText(nil, "hello", V2(40, 0), colors.White)
			c.DrawText(nil, "gone", V2(60, 0), colors.White)
			c.DrawIcon(IconCheck, R(10, 10, 8, 8), colors.White)
			c.DrawRect(R(40, 40, 20, 20), colors.Red)
			c.DrawRect(R(60, 60, 5, 5), colors.Red)
			c.PopClip()
		})
	})
	want := []Command{
		{Type: CommandClip, Rect: R(0, 0, 50, 50)},
		{Type: CommandText, Text: "hello", Rect: R(40, 0, 30, 12), Color: colors.White},
		{Type: CommandClip, Rect: UnclippedRect},
		{Type: CommandIcon, Icon: IconCheck, Rect: R(10, 10, 8, 8), Color: colors.White},
		{Type: CommandRect, Rect: R(40, 40, 10, 10), Color: colors.Red},
	}
	if diff := cmp.Diff(want, collect(c), ignoreOffsets); diff != "" {
		t.Errorf("commands (-want +got):\n%s", diff)
	}
}

func TestStrayCommandsBeforeFirstRoot(t *testing.T) {
	c := newTestCtx()
	c.BeginFrame()
	requireUsageError(t, ErrStrayCommands, func() { c.DrawRect(R(0, 0, 5, 5), colors.Red) })
}

func TestCommandsBetweenRootsAreSkipped(t *testing.T) {
	c := newTestCtx()
	c.Update(func() {
		fill("a", R(0, 0, 10, 10), colors.Red)(c)
		c.DrawRect(R(100, 100, 5, 5), colors.White)
		fill("b", R(20, 0, 10, 10), colors.Green)(c)
	})
	assert.Equal(t, []Rect{R(0, 0, 10, 10), R(20, 0, 10, 10)}, rectsOf(collect(c)))
}

func TestArenaFull(t *testing.T) {
	c := newTestCtx(WithArenaSize(jumpSize + rectCmdSize))
	c.BeginFrame()
	require.True(t, c.BeginWindow("w", R(0, 0, 10, 10), plainWindow))
	ue := requireUsageError(t, ErrArenaFull, func() { c.DrawRect(R(0, 0, 5, 5), colors.Red) })
	assert.Equal(t, "push rect", ue.Op)
}

func TestEmptyFrameHasNoCommands(t *testing.T) {
	c := newTestCtx()
	c.Update(func() {})
	assert.Empty(t, collect(c))
	assert.Zero(t, c.CommandList().Len())
}

func TestNextFromZeroCommand(t *testing.T) {
	c := newTestCtx()
	c.Update(func() { fill("a", R(0, 0, 10, 10), colors.Red)(c) })
	var cmd Command
	require.True(t, c.CommandList().Next(&cmd))
	assert.Equal(t, CommandRect, cmd.Type)
	assert.Equal(t, jumpSize, cmd.Offset())
	assert.False(t, c.CommandList().Next(&cmd))
}
