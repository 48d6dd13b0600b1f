package ui

// MouseButton is a bit set of buttons.
type MouseButton uint8

const (
	MouseLeft MouseButton = 1 << iota
	MouseRight
	MouseMiddle
)

// Key is a bit set of modifier and editing keys.
type Key uint8

const (
	KeyShift Key = 1 << iota
	KeyCtrl
	KeyAlt
	KeyBackspace
	KeyReturn
)

type input struct {
	mousePos     Vec2
	lastMousePos Vec2
	mouseDelta   Vec2
	scrollDelta  Vec2
	mouseDown    MouseButton
	mousePressed MouseButton
	keyDown      Key
	keyPressed   Key
	text         []byte
}

// endFrame drops the per-frame edges; held state carries over.
func (in *input) endFrame() {
	in.keyPressed = 0
	in.text = in.text[:0]
	in.mousePressed = 0
	in.scrollDelta = Vec2{}
	in.lastMousePos = in.mousePos
}

// ===== Host-facing input =====
//
// Calls may come at any time between frames, and repeating an event within
// one frame is harmless.

func (c *Ctx) InputMouseMove(x, y int) { c.input.mousePos = Vec2{x, y} }

func (c *Ctx) InputMouseDown(x, y int, btn MouseButton) {
	c.InputMouseMove(x, y)
	c.input.mouseDown |= btn
	c.input.mousePressed |= btn
}

func (c *Ctx) InputMouseUp(x, y int, btn MouseButton) {
	c.InputMouseMove(x, y)
	c.input.mouseDown &^= btn
}

// InputScroll accumulates wheel movement; it scrolls the hovered container
// at EndFrame.
func (c *Ctx) InputScroll(x, y int) {
	c.input.scrollDelta = c.input.scrollDelta.Add(Vec2{x, y})
}

func (c *Ctx) InputKeyDown(k Key) {
	c.input.keyPressed |= k
	c.input.keyDown |= k
}

func (c *Ctx) InputKeyUp(k Key) { c.input.keyDown &^= k }

// InputText appends typed text. Input past MaxInputText bytes in one frame
// is dropped.
func (c *Ctx) InputText(s string) {
	n := min(len(s), cap(c.input.text)-len(c.input.text))
	c.input.text = append(c.input.text, s[:n]...)
}

func (c *Ctx) MousePos() Vec2            { return c.input.mousePos }
func (c *Ctx) MouseDelta() Vec2          { return c.input.mouseDelta }
func (c *Ctx) MouseDown() MouseButton    { return c.input.mouseDown }
func (c *Ctx) MousePressed() MouseButton { return c.input.mousePressed }
func (c *Ctx) KeyDown() Key              { return c.input.keyDown }
func (c *Ctx) KeyPressed() Key           { return c.input.keyPressed }
func (c *Ctx) TextInput() string         { return string(c.input.text) }
func (c *Ctx) ScrollDelta() Vec2         { return c.input.scrollDelta }
func (c *Ctx) Hover() ID                 { return c.hover }
func (c *Ctx) Focus() ID                 { return c.focus }

// ===== Interaction =====

// SetFocus gives id keyboard and drag focus; 0 clears it.
func (c *Ctx) SetFocus(id ID) {
	c.focus = id
	c.updatedFocus = true
}

// MouseOver reports whether the mouse is over r, inside the current clip,
// and inside the root container currently under the mouse.
func (c *Ctx) MouseOver(r Rect) bool {
	return r.Contains(c.input.mousePos) && c.ClipRect().Contains(c.input.mousePos) && c.inHoverRoot()
}

func (c *Ctx) inHoverRoot() bool {
	for i := c.containerStack.len() - 1; i >= 0; i-- {
		idx := c.containerStack.items[i]
		if idx == c.hoverRoot {
			return true
		}
		if c.containers[idx].root {
			break
		}
	}
	return false
}

// UpdateControl updates hover and focus for the control id occupying r.
// A pressed control takes focus and keeps it while the button is held, or
// until clicked away from with OptHoldFocus.
func (c *Ctx) UpdateControl(id ID, r Rect, opt Opt) {
	over := c.MouseOver(r)
	if c.focus == id {
		c.updatedFocus = true
	}
	if opt&OptNoInteract != 0 {
		return
	}
	if over && c.input.mouseDown == 0 {
		c.hover = id
	}
	if c.focus == id {
		if c.input.mousePressed != 0 && !over {
			c.SetFocus(0)
		}
		if c.input.mouseDown == 0 && opt&OptHoldFocus == 0 {
			c.SetFocus(0)
		}
	}
	if c.hover == id {
		if c.input.mousePressed != 0 {
			c.SetFocus(id)
		} else if !over {
			c.hover = 0
		}
	}
}
