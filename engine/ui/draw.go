package ui

import "github.com/hubastard/groveui/engine/colors"

// Icon names a glyph the renderer draws itself; values above IconMax are
// free for applications.
type Icon int32

const (
	IconClose Icon = iota + 1
	IconCheck
	IconCollapsed
	IconExpanded
	IconMax
)

// Opt is a bit set of container and control options.
type Opt uint32

const (
	OptAlignCenter Opt = 1 << iota
	OptAlignRight
	OptNoInteract
	OptNoFrame
	OptNoResize
	OptNoScroll
	OptNoClose
	OptNoTitle
	OptHoldFocus
	OptAutoSize
	OptPopup
	OptClosed
	OptExpanded
)

// Result is a bit set reported by controls.
type Result uint32

const (
	ResActive Result = 1 << iota
	ResSubmit
	ResChange
)

// arena returns the command list after checking records may be written:
// a frame must be open and offset 0 must already hold a root head jump.
func (c *Ctx) arena(op string) *CommandList {
	c.requireFrame(op)
	if c.rootList.len() == 0 {
		c.fatal(op, ErrStrayCommands, "no root container begun this frame")
	}
	return c.cmds
}

// DrawClip emits a clip record. Renderers apply it to every following
// record until the next one.
func (c *Ctx) DrawClip(r Rect) {
	c.arena("DrawClip").pushClip(r)
}

// DrawRect fills r, cut to the current clip. Nothing is emitted when the
// result is empty.
func (c *Ctx) DrawRect(r Rect, col colors.Color) {
	l := c.arena("DrawRect")
	r = r.Intersect(c.ClipRect())
	if r.W > 0 && r.H > 0 {
		l.pushRect(r, col)
	}
}

// DrawBox outlines r with a one pixel border.
func (c *Ctx) DrawBox(r Rect, col colors.Color) {
	c.DrawRect(Rect{r.X + 1, r.Y, r.W - 2, 1}, col)
	c.DrawRect(Rect{r.X + 1, r.Y + r.H - 1, r.W - 2, 1}, col)
	c.DrawRect(Rect{r.X, r.Y, 1, r.H}, col)
	c.DrawRect(Rect{r.X + r.W - 1, r.Y, 1, r.H}, col)
}

// DrawText emits s at pos. Text entirely outside the clip is dropped;
// text crossing it is bracketed by the clip and a reset to UnclippedRect.
func (c *Ctx) DrawText(font Font, s string, pos Vec2, col colors.Color) {
	l := c.arena("DrawText")
	r := Rect{pos.X, pos.Y, c.textWidth(font, s), c.textHeight(font)}
	c.clipped(l, r, func() { l.pushText(font, s, r, col) })
}

func (c *Ctx) DrawIcon(id Icon, r Rect, col colors.Color) {
	l := c.arena("DrawIcon")
	c.clipped(l, r, func() { l.pushIcon(id, r, col) })
}

func (c *Ctx) clipped(l *CommandList, r Rect, emit func()) {
	switch c.CheckClip(r) {
	case ClipOutside:
	case ClipPartial:
		l.pushClip(c.ClipRect())
		emit()
		l.pushClip(UnclippedRect)
	default:
		emit()
	}
}

// drawFrame fills r with a style color. Borders, when enabled, skip the
// scrollbar and title colors.
func (c *Ctx) drawFrame(r Rect, id ColorID) {
	st := &c.style
	c.DrawRect(r, st.Colors[id])
	if id == ColorScrollBase || id == ColorScrollThumb || id == ColorTitleBg {
		return
	}
	if st.FrameBorders && st.Colors[ColorBorder].A != 0 {
		c.DrawBox(r.Expand(1), st.Colors[ColorBorder])
	}
}

// DrawControlFrame draws the background of control id. base must be the
// first of a base/hover/focus color triple.
func (c *Ctx) DrawControlFrame(id ID, r Rect, base ColorID, opt Opt) {
	if opt&OptNoFrame != 0 {
		return
	}
	switch {
	case id == 0:
	case id == c.focus:
		base += 2
	case id == c.hover:
		base++
	}
	c.drawFrame(r, base)
}

// DrawControlText draws s inside r, vertically centered and aligned per
// opt, clipped to r.
func (c *Ctx) DrawControlText(s string, r Rect, color ColorID, opt Opt) {
	font := c.style.Font
	tw := c.textWidth(font, s)
	c.PushClip(r)
	pos := Vec2{Y: r.Y + (r.H-c.textHeight(font))/2}
	switch {
	case opt&OptAlignCenter != 0:
		pos.X = r.X + (r.W-tw)/2
	case opt&OptAlignRight != 0:
		pos.X = r.X + r.W - tw - c.style.Padding
	default:
		pos.X = r.X + c.style.Padding
	}
	c.DrawText(font, s, pos, c.style.Colors[color])
	c.PopClip()
}
