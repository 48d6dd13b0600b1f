package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hubastard/groveui/engine/ui"
)

func TestInputForwardsToUI(t *testing.T) {
	c := ui.New(func(ui.Font, string) int { return 0 }, func(ui.Font) int { return 10 })
	in := NewInput()

	in.Handle(c, EventMouseMove{X: 10.9, Y: -0.5})
	assert.Equal(t, ui.V2(10, -1), c.MousePos())
	x, y := in.Mouse()
	assert.Equal(t, 10.9, x)
	assert.Equal(t, -0.5, y)

	in.Handle(c, EventMouseButton{Button: MouseButtonRight, Down: true})
	assert.Equal(t, ui.MouseRight, c.MouseDown())
	assert.Equal(t, ui.MouseRight, c.MousePressed())
	in.Handle(c, EventMouseButton{Button: MouseButtonRight})
	assert.Zero(t, c.MouseDown())

	in.Handle(c, EventScroll{Yoff: 1})
	assert.Equal(t, ui.V2(0, -ScrollStep), c.ScrollDelta())

	in.Handle(c, EventKey{Key: KeyLeftShift, Down: true})
	in.Handle(c, EventKey{Key: KeyEnter, Down: true})
	assert.Equal(t, ui.KeyShift|ui.KeyReturn, c.KeyDown())
	assert.True(t, in.IsKeyDown(KeyEnter))
	in.Handle(c, EventKey{Key: KeyLeftShift})
	assert.Equal(t, ui.KeyReturn, c.KeyDown())

	// keys without a UI meaning only update raw state
	in.Handle(c, EventKey{Key: KeyP, Down: true})
	assert.True(t, in.IsKeyDown(KeyP))
	assert.Equal(t, ui.KeyReturn, c.KeyDown())

	in.Handle(c, EventChar{Rune: 'é'})
	in.Handle(c, EventChar{Rune: '!'})
	assert.Equal(t, "é!", c.TextInput())
}

func TestInputWithoutContext(t *testing.T) {
	in := NewInput()
	in.Handle(nil, EventMouseMove{X: 3, Y: 4})
	in.Handle(nil, EventMouseButton{Button: MouseButtonLeft, Down: true})
	in.Handle(nil, EventKey{Key: KeyEscape, Down: true})
	assert.True(t, in.IsKeyDown(KeyEscape))
	x, y := in.Mouse()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestLayerStackOrder(t *testing.T) {
	var ls LayerStack
	a, b := &blockingLayer{}, &blockingLayer{}
	ls.Push(a)
	ls.Push(b)
	assert.Equal(t, 2, ls.Len())

	var seen []Layer
	ls.ForEachReverse(func(l Layer) bool {
		seen = append(seen, l)
		return false
	})
	assert.Equal(t, []Layer{b, a}, seen)

	top, ok := ls.Pop()
	assert.True(t, ok)
	assert.Same(t, b, top)
	ls.Pop()
	_, ok = ls.Pop()
	assert.False(t, ok)
}
