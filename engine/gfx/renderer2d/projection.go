package renderer2d

// Projection maps UI pixel space (origin top-left, Y down) to clip space.
// Scale magnifies the UI, e.g. 2 on a high-DPI framebuffer whose UI was
// laid out in window points.
type Projection struct {
	Width, Height int
	Scale         float32 // 1 = no zoom
	vp            [16]float32
	dirty         bool
}

func NewProjection(width, height int) *Projection {
	p := &Projection{Width: width, Height: height, Scale: 1}
	p.Recalculate()
	return p
}

func (p *Projection) SetViewportPixels(w, h int) {
	p.Width, p.Height = w, h
	p.dirty = true
}

func (p *Projection) SetScale(s float32) {
	if s < 0.05 {
		s = 0.05
	}
	p.Scale = s
	p.dirty = true
}

func (p *Projection) VP() [16]float32 {
	if p.dirty {
		p.Recalculate()
	}
	return p.vp
}

func (p *Projection) Recalculate() {
	w, h := float32(p.Width)/p.Scale, float32(p.Height)/p.Scale
	// top is 0 and bottom is h, which flips Y
	p.vp = ortho(0, w, h, 0, -1, 1)
	p.dirty = false
}

// Apply transforms a pixel position, as the vertex shader would.
func (p *Projection) Apply(x, y float32) (float32, float32) {
	m := p.VP()
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

// ---- column-major, GLSL-style ----

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}
