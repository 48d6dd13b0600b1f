package ui

// UnclippedRect is large enough to contain anything the engine lays out.
var UnclippedRect = Rect{0, 0, 0x1000000, 0x1000000}

type ClipResult int

const (
	ClipInside ClipResult = iota
	ClipPartial
	ClipOutside
)

func (r ClipResult) String() string {
	switch r {
	case ClipInside:
		return "inside"
	case ClipPartial:
		return "partial"
	case ClipOutside:
		return "outside"
	}
	return "unknown"
}

// PushClip narrows the clip to r intersected with the current clip.
func (c *Ctx) PushClip(r Rect) {
	c.clipStack.push(c, r.Intersect(c.ClipRect()))
}

func (c *Ctx) PopClip() { c.clipStack.pop(c) }

// ClipRect returns the active clip, or UnclippedRect when none is pushed.
func (c *Ctx) ClipRect() Rect {
	if top := c.clipStack.top(); top != nil {
		return *top
	}
	return UnclippedRect
}

// CheckClip classifies r against the active clip. Edges touching the clip
// count as overlapping.
func (c *Ctx) CheckClip(r Rect) ClipResult {
	return classify(r, c.ClipRect())
}

func classify(r, cr Rect) ClipResult {
	if r.X > cr.X+cr.W || r.X+r.W < cr.X ||
		r.Y > cr.Y+cr.H || r.Y+r.H < cr.Y {
		return ClipOutside
	}
	if r.X >= cr.X && r.X+r.W <= cr.X+cr.W &&
		r.Y >= cr.Y && r.Y+r.H <= cr.Y+cr.H {
		return ClipInside
	}
	return ClipPartial
}
