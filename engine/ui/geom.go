package ui

type Vec2 struct{ X, Y int }

type Rect struct{ X, Y, W, H int }

func V2(x, y int) Vec2         { return Vec2{x, y} }
func R(x, y, w, h int) Rect    { return Rect{x, y, w, h} }
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (r Rect) Min() Vec2       { return Vec2{r.X, r.Y} }
func (r Rect) Max() Vec2       { return Vec2{r.X + r.W, r.Y + r.H} }
func (r Rect) Empty() bool     { return r.W <= 0 || r.H <= 0 }

func (r Rect) Offset(d Vec2) Rect { return Rect{r.X + d.X, r.Y + d.Y, r.W, r.H} }

// Expand grows r by n on every side; a negative n shrinks it.
func (r Rect) Expand(n int) Rect {
	return Rect{r.X - n, r.Y - n, r.W + n*2, r.H + n*2}
}

// Intersect returns the overlap of r and o. Disjoint rects yield a
// zero-sized rect anchored inside both bounds rather than a negative size.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.W, o.X+o.W)
	y2 := min(r.Y+r.H, o.Y+o.H)
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// Contains reports whether p lies in r (right and bottom edges exclusive).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
