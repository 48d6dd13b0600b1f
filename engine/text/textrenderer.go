package text

import (
	"image"
	"iter"
)

// LineHeight is the distance between baselines of consecutive lines.
func (a *Atlas) LineHeight() int { return a.Ascent - a.Descent + a.LineGap }

func (a *Atlas) kern(prev, r rune) int {
	if prev < 0 || a.face == nil {
		return 0
	}
	return a.face.Kern(prev, r).Round()
}

// Width is the advance width of the widest line of s. Runes missing from
// the atlas advance like a space.
func (a *Atlas) Width(s string) int {
	var width, lineW int
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			width = max(width, lineW)
			lineW = 0
			prev = -1
			continue
		}
		g, ok := a.Glyphs[r]
		if !ok {
			lineW += a.Glyphs[' '].Advance
			prev = r
			continue
		}
		lineW += a.kern(prev, r) + g.Advance
		prev = r
	}
	return max(width, lineW)
}

// Quads yields the top-left destination of every visible glyph of s drawn
// with its first line's top at (x, y). Positive Y goes downward.
func (a *Atlas) Quads(s string, x, y int) iter.Seq2[image.Point, Glyph] {
	return func(yield func(image.Point, Glyph) bool) {
		penX := x
		baseY := y + a.Ascent
		prev := rune(-1)
		for _, r := range s {
			if r == '\n' {
				penX = x
				baseY += a.LineHeight()
				prev = -1
				continue
			}
			g, ok := a.Glyphs[r]
			if !ok {
				penX += a.Glyphs[' '].Advance
				prev = r
				continue
			}
			penX += a.kern(prev, r)
			if g.W > 0 && g.H > 0 {
				if !yield(image.Pt(penX+g.BearingX, baseY-g.BearingY), g) {
					return
				}
			}
			penX += g.Advance
			prev = r
		}
	}
}
