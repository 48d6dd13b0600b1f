package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowDragByTitle(t *testing.T) {
	c := newTestCtx()
	frame := func() {
		c.Update(func() {
			c.Window("w", R(0, 0, 200, 100), OptNoScroll|OptNoResize, func() {})
		})
	}
	c.InputMouseMove(50, 5)
	frame()
	frame()
	c.InputMouseDown(50, 5, MouseLeft)
	frame()
	c.InputMouseMove(60, 15)
	frame()
	assert.Equal(t, R(10, 10, 200, 100), c.GetContainer("w").Rect)

	c.InputMouseUp(60, 15, MouseLeft)
	c.InputMouseMove(90, 40)
	frame()
	assert.Equal(t, R(10, 10, 200, 100), c.GetContainer("w").Rect)
}

func TestWindowClose(t *testing.T) {
	c := newTestCtx()
	var open bool
	frame := func() {
		c.Update(func() {
			open = c.Window("w", R(0, 0, 200, 100), OptNoScroll|OptNoResize, func() {})
		})
	}
	c.InputMouseMove(190, 5)
	frame()
	frame()
	require.True(t, open)
	c.InputMouseDown(190, 5, MouseLeft)
	frame()
	assert.True(t, open, "closing takes effect on the next frame")
	frame()
	assert.False(t, open)
	assert.False(t, c.GetContainer("w").Open)
}

func TestPopupClosesOnOutsideClick(t *testing.T) {
	c := newTestCtx()
	var shown bool
	popup := func() {
		shown = c.Popup("menu", func() {
			c.Label("item")
		})
	}

	c.InputMouseMove(50, 50)
	c.Update(func() {
		c.OpenPopup("menu")
		popup()
	})
	require.True(t, shown)
	menu := c.GetContainer("menu")
	assert.Equal(t, V2(50, 50), menu.Rect.Min())
	assert.Greater(t, menu.Rect.W, 1, "popups size to their content")

	c.InputMouseMove(300, 300)
	c.Update(popup)
	assert.True(t, shown)

	c.InputMouseDown(300, 300, MouseLeft)
	c.Update(popup)
	assert.True(t, shown)

	c.InputMouseUp(300, 300, MouseLeft)
	c.Update(popup)
	assert.False(t, shown)
}

func TestPopupNeverOpenedIsNotCreated(t *testing.T) {
	c := newTestCtx()
	c.Update(func() {
		assert.False(t, c.Popup("nope", func() { t.Error("closed popup ran its body") }))
	})
	assert.Equal(t, -1, c.containerPool.Lookup(c.GetIDString("nope")))
}

func TestWheelScrollsHoveredContainer(t *testing.T) {
	c := newTestCtx()
	frame := func() {
		c.Update(func() {
			c.Window("s", R(0, 0, 100, 60), OptNoTitle|OptNoResize, func() {
				c.Row(0, -1)
				for i := range 10 {
					c.PushIDInt(i)
					c.Label("line")
					c.PopID()
				}
			})
		})
	}
	c.InputMouseMove(20, 20)
	frame()
	assert.Equal(t, 236, c.GetContainer("s").ContentSize.Y)

	c.InputScroll(0, 30)
	frame()
	assert.Equal(t, 30, c.GetContainer("s").Scroll.Y)

	c.InputScroll(0, 1000)
	frame()
	frame()
	// clamped to content height + padding - body height
	assert.Equal(t, 246-60, c.GetContainer("s").Scroll.Y)
}

func TestPanelIsNestedContainer(t *testing.T) {
	c := newTestCtx(WithStyle(flatStyle()))
	inWindow(c, R(10, 10, 200, 100), func() {
		outer := c.CurrentContainer()
		c.Row(0, 100)
		c.Panel("p", OptNoScroll|OptNoFrame, func() {
			cnt := c.CurrentContainer()
			assert.NotSame(t, outer, cnt)
			assert.Equal(t, R(10, 10, 100, 10), cnt.Rect)
			assert.Equal(t, R(10, 10, 100, 10), c.ClipRect())
			c.Row(0, -1)
			assert.Equal(t, R(10, 10, 100, 10), c.NextRect())
		})
		assert.Same(t, outer, c.CurrentContainer())
	})
	assert.Equal(t, 0, c.containerStack.len())
}

func TestBringToFrontOnClick(t *testing.T) {
	c := newTestCtx(WithPaintOrder(PaintZOrder))
	frame := func() {
		c.Update(func() {
			c.Window("back", R(0, 0, 100, 100), plainWindow, func() {})
			c.Window("front", R(50, 50, 100, 100), plainWindow, func() {})
		})
	}
	frame()
	back, front := c.GetContainer("back"), c.GetContainer("front")
	require.Less(t, back.ZIndex, front.ZIndex)

	c.InputMouseMove(10, 10)
	frame()
	c.InputMouseDown(10, 10, MouseLeft)
	frame()
	assert.Greater(t, back.ZIndex, front.ZIndex)

	frame()
	assert.Equal(t, []Rect{R(50, 50, 100, 100), R(0, 0, 100, 100)}, rectsOf(collect(c)))
}
