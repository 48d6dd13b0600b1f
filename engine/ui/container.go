package ui

// Container is the persistent state of a window, panel or popup. It lives
// in a pool slot and survives across frames while it keeps being used;
// slots not touched for the longest time are reused silently.
type Container struct {
	Rect        Rect
	Body        Rect
	ContentSize Vec2
	Scroll      Vec2
	ZIndex      int
	Open        bool

	// arena offsets of the head and tail jumps, valid for roots during the
	// frame they were begun
	head, tail int
	root       bool
}

// getContainer returns the container for id, creating it on a miss. A
// container asked for with OptClosed is neither created nor kept alive.
func (c *Ctx) getContainer(id ID, opt Opt) int {
	if idx := c.containerPool.Lookup(id); idx >= 0 {
		if c.containers[idx].Open || opt&OptClosed == 0 {
			c.containerPool.Touch(idx, c.frame)
		}
		return idx
	}
	if opt&OptClosed != 0 {
		return -1
	}
	idx := c.containerPool.Allocate(id, c.frame)
	c.containers[idx] = Container{Open: true}
	c.BringToFront(&c.containers[idx])
	return idx
}

// GetContainer returns the container named name in the current id scope,
// creating it if needed. The pointer is valid until the slot is reused.
func (c *Ctx) GetContainer(name string) *Container {
	return &c.containers[c.getContainer(c.GetIDString(name), 0)]
}

// CurrentContainer returns the innermost open container.
func (c *Ctx) CurrentContainer() *Container {
	top := c.containerStack.top()
	if top == nil {
		c.fatal("CurrentContainer", ErrStackUnderflow, "no open container")
	}
	return &c.containers[*top]
}

// BringToFront gives cnt the highest z-index so far.
func (c *Ctx) BringToFront(cnt *Container) {
	c.lastZIndex++
	cnt.ZIndex = c.lastZIndex
}

func (c *Ctx) beginRootContainer(idx int) {
	cnt := &c.containers[idx]
	c.containerStack.push(c, idx)
	c.rootList.push(c, idx)
	cnt.root = true
	cnt.head = c.cmds.pushJump(0)
	if cnt.Rect.Contains(c.input.mousePos) &&
		(c.nextHoverRoot < 0 || cnt.ZIndex > c.containers[c.nextHoverRoot].ZIndex) {
		c.nextHoverRoot = idx
	}
	// a root begun inside another root is not clipped by it
	c.clipStack.push(c, UnclippedRect)
}

func (c *Ctx) endRootContainer() {
	cnt := c.CurrentContainer()
	cnt.tail = c.cmds.pushJump(0)
	c.cmds.setJump(cnt.head, c.cmds.Len())
	c.PopClip()
	c.popContainer()
}

func (c *Ctx) popContainer() {
	cnt := c.CurrentContainer()
	l := c.layout()
	cnt.ContentSize = Vec2{l.max.X - l.body.X, l.max.Y - l.body.Y}
	c.containerStack.pop(c)
	c.layoutStack.pop(c)
	c.PopID()
}

func (c *Ctx) pushContainerBody(idx int, body Rect, opt Opt) {
	cnt := &c.containers[idx]
	if opt&OptNoScroll == 0 {
		c.scrollbars(idx, &body)
	}
	c.pushLayout(body.Expand(-c.style.Padding), cnt.Scroll)
	cnt.Body = body
}

// scrollbars shrinks body to make room for the bars the content needs and
// draws them.
func (c *Ctx) scrollbars(idx int, body *Rect) {
	cnt := &c.containers[idx]
	sz := c.style.ScrollbarSize
	cs := cnt.ContentSize
	cs.X += c.style.Padding * 2
	cs.Y += c.style.Padding * 2
	c.PushClip(*body)
	if cs.Y > cnt.Body.H {
		body.W -= sz
	}
	if cs.X > cnt.Body.W {
		body.H -= sz
	}
	c.scrollbar(idx, *body, cs.Y, &cnt.Scroll.Y, c.input.mouseDelta.Y, "!scrollbary", ident)
	c.scrollbar(idx, *body, cs.X, &cnt.Scroll.X, c.input.mouseDelta.X, "!scrollbarx", transpose)
	c.PopClip()
}

func ident(r Rect) Rect     { return r }
func transpose(r Rect) Rect { return Rect{r.Y, r.X, r.H, r.W} }

// scrollbar lays out a vertical bar; the horizontal one goes through the
// same code with rects transposed by axis.
func (c *Ctx) scrollbar(idx int, b Rect, content int, scroll *int, delta int, name string, axis func(Rect) Rect) {
	b = axis(b)
	maxScroll := content - b.H
	if maxScroll <= 0 || b.H <= 0 {
		*scroll = 0
		return
	}
	id := c.GetIDString(name)

	base := b
	base.X = b.X + b.W
	base.W = c.style.ScrollbarSize

	c.UpdateControl(id, axis(base), 0)
	if c.focus == id && c.input.mouseDown == MouseLeft {
		*scroll += delta * content / base.H
	}
	*scroll = min(max(*scroll, 0), maxScroll)

	c.drawFrame(axis(base), ColorScrollBase)
	thumb := base
	thumb.H = max(c.style.ThumbSize, base.H*b.H/content)
	thumb.Y += *scroll * (base.H - thumb.H) / maxScroll
	c.drawFrame(axis(thumb), ColorScrollThumb)

	if c.MouseOver(axis(b)) {
		c.scrollTarget = idx
	}
}

// ===== Windows =====

// BeginWindow opens a root container titled title. rect is only used the
// first time the window is seen; afterwards the window keeps the position
// and size the user gave it. Returns false, and must not be followed by
// EndWindow, when the window is closed.
func (c *Ctx) BeginWindow(title string, rect Rect, opt Opt) bool {
	c.requireFrame("BeginWindow")
	id := c.GetIDString(title)
	idx := c.getContainer(id, opt)
	if idx < 0 || !c.containers[idx].Open {
		return false
	}
	c.idStack.push(c, id)

	cnt := &c.containers[idx]
	if cnt.Rect.W == 0 {
		cnt.Rect = rect
	}
	c.beginRootContainer(idx)
	rect = cnt.Rect
	body := rect

	if opt&OptNoFrame == 0 {
		c.drawFrame(rect, ColorWindowBg)
	}

	if opt&OptNoTitle == 0 {
		tr := rect
		tr.H = c.style.TitleHeight
		c.drawFrame(tr, ColorTitleBg)

		tid := c.GetIDString("!title")
		c.UpdateControl(tid, tr, opt)
		c.DrawControlText(title, tr, ColorTitleText, opt)
		if tid == c.focus && c.input.mouseDown == MouseLeft {
			cnt.Rect = cnt.Rect.Offset(c.input.mouseDelta)
		}
		body.Y += tr.H
		body.H -= tr.H

		if opt&OptNoClose == 0 {
			cid := c.GetIDString("!close")
			r := Rect{tr.X + tr.W - tr.H, tr.Y, tr.H, tr.H}
			c.DrawIcon(IconClose, r, c.style.Colors[ColorTitleText])
			c.UpdateControl(cid, r, opt)
			if c.input.mousePressed == MouseLeft && cid == c.focus {
				cnt.Open = false
			}
		}
	}

	c.pushContainerBody(idx, body, opt)

	if opt&OptNoResize == 0 {
		sz := c.style.TitleHeight
		rid := c.GetIDString("!resize")
		r := Rect{rect.X + rect.W - sz, rect.Y + rect.H - sz, sz, sz}
		c.UpdateControl(rid, r, opt)
		if rid == c.focus && c.input.mouseDown == MouseLeft {
			cnt.Rect.W = max(96, cnt.Rect.W+c.input.mouseDelta.X)
			cnt.Rect.H = max(64, cnt.Rect.H+c.input.mouseDelta.Y)
		}
	}

	if opt&OptAutoSize != 0 {
		r := c.layout().body
		cnt.Rect.W = cnt.ContentSize.X + (cnt.Rect.W - r.W)
		cnt.Rect.H = cnt.ContentSize.Y + (cnt.Rect.H - r.H)
	}

	// popups close on any click outside them
	if opt&OptPopup != 0 && c.input.mousePressed != 0 && c.hoverRoot != idx {
		cnt.Open = false
	}

	c.PushClip(cnt.Body)
	return true
}

func (c *Ctx) EndWindow() {
	c.PopClip()
	c.endRootContainer()
}

// Window runs body inside an open window and reports whether it was open.
func (c *Ctx) Window(title string, rect Rect, opt Opt, body func()) bool {
	if !c.BeginWindow(title, rect, opt) {
		return false
	}
	body()
	c.EndWindow()
	return true
}

// ===== Popups =====

// OpenPopup shows the popup name at the mouse position, above everything.
func (c *Ctx) OpenPopup(name string) {
	c.requireFrame("OpenPopup")
	idx := c.getContainer(c.GetIDString(name), 0)
	cnt := &c.containers[idx]
	c.hoverRoot, c.nextHoverRoot = idx, idx
	cnt.Rect = Rect{c.input.mousePos.X, c.input.mousePos.Y, 1, 1}
	cnt.Open = true
	c.BringToFront(cnt)
}

const popupOpts = OptPopup | OptAutoSize | OptNoResize | OptNoScroll | OptNoTitle | OptClosed

func (c *Ctx) BeginPopup(name string) bool {
	return c.BeginWindow(name, Rect{}, popupOpts)
}

func (c *Ctx) EndPopup() { c.EndWindow() }

func (c *Ctx) Popup(name string, body func()) bool {
	if !c.BeginPopup(name) {
		return false
	}
	body()
	c.EndPopup()
	return true
}

// ===== Panels =====

// BeginPanel opens a scrollable sub-container in the next layout cell.
func (c *Ctx) BeginPanel(name string, opt Opt) {
	c.requireFrame("BeginPanel")
	c.PushIDString(name)
	idx := c.getContainer(c.lastID, opt&^OptClosed)
	cnt := &c.containers[idx]
	cnt.Rect = c.NextRect()
	if opt&OptNoFrame == 0 {
		c.drawFrame(cnt.Rect, ColorPanelBg)
	}
	c.containerStack.push(c, idx)
	c.pushContainerBody(idx, cnt.Rect, opt)
	c.PushClip(cnt.Body)
}

func (c *Ctx) EndPanel() {
	c.PopClip()
	c.popContainer()
}

func (c *Ctx) Panel(name string, opt Opt, body func()) {
	c.BeginPanel(name, opt)
	body()
	c.EndPanel()
}
