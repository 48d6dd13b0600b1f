package ui

// ===== Text =====

// Label draws s left aligned in the next cell.
func (c *Ctx) Label(s string) {
	c.DrawControlText(s, c.NextRect(), ColorText, 0)
}

// Text draws s word-wrapped to the width of the current row, one cell per
// line. Newlines force a break.
func (c *Ctx) Text(s string) {
	font := c.style.Font
	col := c.style.Colors[ColorText]
	c.BeginColumn()
	c.LayoutRow(1, []int{-1}, c.textHeight(font))
	p := 0
	for {
		r := c.NextRect()
		w := 0
		start, end := p, p
		for {
			word := p
			for p < len(s) && s[p] != ' ' && s[p] != '\n' {
				p++
			}
			w += c.textWidth(font, s[word:p])
			if w > r.W && end != start {
				break
			}
			if p < len(s) {
				w += c.textWidth(font, s[p:p+1])
			}
			end = p
			p++
			if end >= len(s) || s[end] == '\n' {
				break
			}
		}
		c.DrawText(font, s[start:end], Vec2{r.X, r.Y}, col)
		p = end + 1
		if end >= len(s) {
			break
		}
	}
	c.EndColumn()
}

// ===== Button =====

// ButtonEx draws a button with a label, an icon, or both. Without a label
// the id comes from the icon, so two label-less buttons with the same icon
// need a PushID around them.
func (c *Ctx) ButtonEx(label string, icon Icon, opt Opt) Result {
	var res Result
	var id ID
	if label != "" {
		id = c.GetIDString(label)
	} else {
		id = c.GetIDInt(int(icon))
	}
	r := c.NextRect()
	c.UpdateControl(id, r, opt)
	if c.input.mousePressed == MouseLeft && c.focus == id {
		res |= ResSubmit
	}
	c.DrawControlFrame(id, r, ColorButton, opt)
	if label != "" {
		c.DrawControlText(label, r, ColorText, opt)
	}
	if icon != 0 {
		c.DrawIcon(icon, r, c.style.Colors[ColorText])
	}
	return res
}

// Button is a centered text button; the result has ResSubmit on click.
func (c *Ctx) Button(label string) Result {
	return c.ButtonEx(label, 0, OptAlignCenter)
}

// ===== Checkbox =====

// Checkbox toggles *state on click and reports ResChange when it did. The
// id is derived from label.
func (c *Ctx) Checkbox(label string, state *bool) Result {
	var res Result
	id := c.GetIDString(label)
	r := c.NextRect()
	box := Rect{r.X, r.Y, r.H, r.H}
	c.UpdateControl(id, r, 0)
	if c.input.mousePressed == MouseLeft && c.focus == id {
		res |= ResChange
		*state = !*state
	}
	c.DrawControlFrame(id, box, ColorBase, 0)
	if *state {
		c.DrawIcon(IconCheck, box, c.style.Colors[ColorText])
	}
	r = Rect{r.X + box.W, r.Y, r.W - box.W, r.H}
	c.DrawControlText(label, r, ColorText, 0)
	return res
}

// ===== Headers and tree nodes =====

// header draws a full-width collapsible row. Expanded state is kept in the
// tree node pool; OptExpanded inverts it so a header can start open.
func (c *Ctx) header(label string, treeNode bool, opt Opt) (ID, Result) {
	id := c.GetIDString(label)
	idx := c.treeNodePool.Lookup(id)
	c.LayoutRow(1, []int{-1}, 0)

	active := idx >= 0
	expanded := active
	if opt&OptExpanded != 0 {
		expanded = !active
	}
	r := c.NextRect()
	c.UpdateControl(id, r, 0)

	if c.input.mousePressed == MouseLeft && c.focus == id {
		active = !active
	}
	switch {
	case idx >= 0 && active:
		c.treeNodePool.Touch(idx, c.frame)
	case idx >= 0:
		c.treeNodePool.Clear(idx)
	case active:
		c.treeNodePool.Allocate(id, c.frame)
	}

	if treeNode {
		if c.hover == id {
			c.drawFrame(r, ColorButtonHover)
		}
	} else {
		c.DrawControlFrame(id, r, ColorButton, 0)
	}
	ic := IconCollapsed
	if expanded {
		ic = IconExpanded
	}
	c.DrawIcon(ic, Rect{r.X, r.Y, r.H, r.H}, c.style.Colors[ColorText])
	r.X += r.H - c.style.Padding
	r.W -= r.H - c.style.Padding
	c.DrawControlText(label, r, ColorText, 0)

	if expanded {
		return id, ResActive
	}
	return id, 0
}

func (c *Ctx) HeaderEx(label string, opt Opt) Result {
	_, res := c.header(label, false, opt)
	return res
}

func (c *Ctx) Header(label string) Result { return c.HeaderEx(label, 0) }

// BeginTreeNode draws a tree node row. When it reports ResActive the
// caller must close it with EndTreeNode; children are indented and scoped
// under the node's id.
func (c *Ctx) BeginTreeNode(label string, opt Opt) Result {
	id, res := c.header(label, true, opt)
	if res&ResActive != 0 {
		c.layout().indent += c.style.Indent
		c.idStack.push(c, id)
	}
	return res
}

func (c *Ctx) EndTreeNode() {
	c.layout().indent -= c.style.Indent
	c.PopID()
}

// TreeNode runs body under an expanded node and reports whether it was.
func (c *Ctx) TreeNode(label string, body func()) bool {
	if c.BeginTreeNode(label, 0)&ResActive == 0 {
		return false
	}
	body()
	c.EndTreeNode()
	return true
}
