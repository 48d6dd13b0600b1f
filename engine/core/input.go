package core

import (
	"math"

	"github.com/hubastard/groveui/engine/ui"
)

// ScrollStep is how many pixels one wheel notch scrolls.
const ScrollStep = 30

// Input tracks raw key and mouse state and forwards events to a UI context.
type Input struct {
	keys           map[Key]bool
	mouseX, mouseY float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

// Handle records ev and, when c is non-nil, feeds it to c.
func (in *Input) Handle(c *ui.Ctx, ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
		if c == nil {
			break
		}
		if k, ok := uiKey(e.Key); ok {
			if e.Down {
				c.InputKeyDown(k)
			} else {
				c.InputKeyUp(k)
			}
		}
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
		if c != nil {
			c.InputMouseMove(in.pos())
		}
	case EventMouseButton:
		if c == nil {
			break
		}
		btn, ok := uiButton(e.Button)
		if !ok {
			break
		}
		x, y := in.pos()
		if e.Down {
			c.InputMouseDown(x, y, btn)
		} else {
			c.InputMouseUp(x, y, btn)
		}
	case EventScroll:
		if c != nil {
			c.InputScroll(int(math.Round(-e.Xoff*ScrollStep)), int(math.Round(-e.Yoff*ScrollStep)))
		}
	case EventChar:
		if c != nil {
			c.InputText(string(e.Rune))
		}
	}
}

func (in *Input) pos() (int, int) {
	return int(math.Floor(in.mouseX)), int(math.Floor(in.mouseY))
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

func uiKey(k Key) (ui.Key, bool) {
	switch k {
	case KeyLeftShift, KeyRightShift:
		return ui.KeyShift, true
	case KeyLeftCtrl, KeyRightCtrl:
		return ui.KeyCtrl, true
	case KeyLeftAlt, KeyRightAlt:
		return ui.KeyAlt, true
	case KeyBackspace:
		return ui.KeyBackspace, true
	case KeyEnter:
		return ui.KeyReturn, true
	}
	return 0, false
}

func uiButton(b MouseButton) (ui.MouseButton, bool) {
	switch b {
	case MouseButtonLeft:
		return ui.MouseLeft, true
	case MouseButtonRight:
		return ui.MouseRight, true
	case MouseButtonMiddle:
		return ui.MouseMiddle, true
	}
	return 0, false
}
