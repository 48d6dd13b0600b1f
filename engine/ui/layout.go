package ui

// ===== Layout scopes =====

const (
	LayoutStackSize = 16
	MaxWidths       = 16
)

type nextType uint8

const (
	nextNone nextType = iota
	nextRelative
	nextAbsolute
)

// layout is one open row/column/container scope. Positions are relative to
// body; body already has the owning container's scroll subtracted.
type layout struct {
	body      Rect
	next      Rect
	nextType  nextType
	position  Vec2 // where the next item goes, relative to body
	size      Vec2 // width for rows without widths, row height
	max       Vec2 // absolute bottom-right extent of everything placed
	widths    [MaxWidths]int
	items     int
	itemIndex int
	nextRow   int
	indent    int
}

func (c *Ctx) pushLayout(body Rect, scroll Vec2) {
	c.layoutStack.push(c, layout{
		body: Rect{body.X - scroll.X, body.Y - scroll.Y, body.W, body.H},
		max:  Vec2{-0x1000000, -0x1000000},
	})
	c.LayoutRow(1, []int{0}, 0)
}

func (c *Ctx) layout() *layout {
	l := c.layoutStack.top()
	if l == nil {
		c.fatal("layout", ErrStackUnderflow, "no open container, panel or column")
	}
	return l
}

// LayoutRow starts a row of items cells, height tall. widths, when given,
// replaces the per-item widths and cells past its end get the default size;
// otherwise the previous widths (or the width set by LayoutWidth when items
// is 0) stay in effect. A zero size means the style default; a negative
// size -k leaves k-1 pixels to the far edge.
func (c *Ctx) LayoutRow(items int, widths []int, height int) {
	l := c.layout()
	if items > MaxWidths || len(widths) > MaxWidths {
		c.fatal("LayoutRow", ErrTooManyWidths, "%d items, max %d", max(items, len(widths)), MaxWidths)
	}
	if widths != nil {
		n := copy(l.widths[:max(items, 0)], widths)
		clear(l.widths[n:])
	}
	l.items = items
	l.position = Vec2{l.indent, l.nextRow}
	l.size.Y = height
	l.itemIndex = 0
}

// Row is LayoutRow with one cell per width.
func (c *Ctx) Row(height int, widths ...int) {
	if widths == nil {
		widths = []int{}
	}
	c.LayoutRow(len(widths), widths, height)
}

// LayoutWidth sets the item width used by rows started with zero items.
func (c *Ctx) LayoutWidth(width int) { c.layout().size.X = width }

func (c *Ctx) LayoutHeight(height int) { c.layout().size.Y = height }

// SetNextRect overrides the rect returned by the next NextRect call. A
// relative rect is offset by the body origin and counts towards the content
// size; an absolute one is returned as is.
func (c *Ctx) SetNextRect(r Rect, relative bool) {
	l := c.layout()
	l.next = r
	l.nextType = nextAbsolute
	if relative {
		l.nextType = nextRelative
	}
}

// NextRect allocates the next cell of the current row in screen space.
func (c *Ctx) NextRect() Rect {
	l := c.layout()
	st := &c.style
	var res Rect

	if l.nextType != nextNone {
		typ := l.nextType
		l.nextType = nextNone
		res = l.next
		if typ == nextAbsolute {
			c.lastRect = res
			return res
		}
	} else {
		if l.itemIndex == l.items {
			c.LayoutRow(l.items, nil, l.size.Y)
		}

		res.X = l.position.X
		res.Y = l.position.Y
		if l.items > 0 {
			res.W = l.widths[l.itemIndex]
		} else {
			res.W = l.size.X
		}
		res.H = l.size.Y

		if res.W == 0 {
			res.W = st.Size.X + st.Padding*2
		}
		if res.H == 0 {
			res.H = st.Size.Y + st.Padding*2
		}
		if res.W < 0 {
			res.W += l.body.W - res.X + 1
		}
		if res.H < 0 {
			res.H += l.body.H - res.Y + 1
		}
		l.itemIndex++
	}

	l.position.X += res.W + st.Spacing
	l.nextRow = max(l.nextRow, res.Y+res.H+st.Spacing)

	res.X += l.body.X
	res.Y += l.body.Y

	l.max.X = max(l.max.X, res.X+res.W)
	l.max.Y = max(l.max.Y, res.Y+res.H)

	c.lastRect = res
	return res
}

// LastRect is the rect most recently returned by NextRect.
func (c *Ctx) LastRect() Rect { return c.lastRect }

// BeginColumn claims the next cell of the current row as a nested layout.
func (c *Ctx) BeginColumn() {
	c.pushLayout(c.NextRect(), Vec2{})
}

// EndColumn folds the column's extent back into the parent so the parent
// row advances past everything the column placed.
func (c *Ctx) EndColumn() {
	b := c.layoutStack.pop(c)
	a := c.layout()
	a.position.X = max(a.position.X, b.position.X+b.body.X-a.body.X)
	a.nextRow = max(a.nextRow, b.nextRow+b.body.Y-a.body.Y)
	a.max.X = max(a.max.X, b.max.X)
	a.max.Y = max(a.max.Y, b.max.Y)
}

// Column runs body inside BeginColumn/EndColumn.
func (c *Ctx) Column(body func()) {
	c.BeginColumn()
	body()
	c.EndColumn()
}

// LayoutBody returns the current layout body in screen space.
func (c *Ctx) LayoutBody() Rect { return c.layout().body }
