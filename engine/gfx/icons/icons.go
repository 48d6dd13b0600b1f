// Package icons rasterises the built-in ui icons with x/image/vector.
package icons

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/hubastard/groveui/engine/ui"
)

type point struct{ x, y float32 }

// shapes are in unit space, (0,0) top-left. Each entry is one closed
// polygon, or a stroke when width > 0.
type shape struct {
	pts   []point
	width float32
}

var outlines = map[ui.Icon][]shape{
	ui.IconClose: {
		{pts: []point{{0.25, 0.25}, {0.75, 0.75}}, width: 0.14},
		{pts: []point{{0.75, 0.25}, {0.25, 0.75}}, width: 0.14},
	},
	ui.IconCheck: {
		{pts: []point{{0.2, 0.52}, {0.42, 0.74}, {0.8, 0.28}}, width: 0.14},
	},
	ui.IconCollapsed: {
		{pts: []point{{0.32, 0.2}, {0.74, 0.5}, {0.32, 0.8}}},
	},
	ui.IconExpanded: {
		{pts: []point{{0.2, 0.32}, {0.8, 0.32}, {0.5, 0.74}}},
	},
}

// Known reports whether id has a built-in outline.
func Known(id ui.Icon) bool {
	_, ok := outlines[id]
	return ok
}

// Mask rasterises id into a size×size coverage mask. Unknown icons give an
// empty mask.
func Mask(id ui.Icon, size int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	shapes, ok := outlines[id]
	if !ok || size <= 0 {
		return mask
	}
	z := vector.NewRasterizer(size, size)
	s := float32(size)
	for _, sh := range shapes {
		if sh.width > 0 {
			stroke(z, sh.pts, sh.width, s)
			continue
		}
		z.MoveTo(sh.pts[0].x*s, sh.pts[0].y*s)
		for _, p := range sh.pts[1:] {
			z.LineTo(p.x*s, p.y*s)
		}
		z.ClosePath()
	}
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// stroke adds one quad per segment plus a square joint at each inner
// vertex.
func stroke(z *vector.Rasterizer, pts []point, width, scale float32) {
	hw := width * scale / 2
	for i := 0; i+1 < len(pts); i++ {
		a := point{pts[i].x * scale, pts[i].y * scale}
		b := point{pts[i+1].x * scale, pts[i+1].y * scale}
		dx, dy := b.x-a.x, b.y-a.y
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw
		z.MoveTo(a.x+nx, a.y+ny)
		z.LineTo(b.x+nx, b.y+ny)
		z.LineTo(b.x-nx, b.y-ny)
		z.LineTo(a.x-nx, a.y-ny)
		z.ClosePath()
		if i > 0 {
			z.MoveTo(a.x-hw, a.y-hw)
			z.LineTo(a.x+hw, a.y-hw)
			z.LineTo(a.x+hw, a.y+hw)
			z.LineTo(a.x-hw, a.y+hw)
			z.ClosePath()
		}
	}
}

// Fit is the square an icon occupies when centered in r.
func Fit(r ui.Rect) ui.Rect {
	size := min(r.W, r.H)
	return ui.R(r.X+(r.W-size)/2, r.Y+(r.H-size)/2, size, size)
}

// Sheet packs every built-in icon into one white RGBA image, one Cell-sized
// square per icon in ui.Icon order, for backends that draw textured quads.
type Sheet struct {
	Image *image.RGBA
	Cell  int
}

func NewSheet(cell int) *Sheet {
	n := int(ui.IconMax) - 1
	img := image.NewRGBA(image.Rect(0, 0, cell*n, cell))
	for id := ui.IconClose; id < ui.IconMax; id++ {
		at := image.Pt(int(id-1)*cell, 0)
		m := Mask(id, cell)
		draw.DrawMask(img, m.Bounds().Add(at), image.White, image.Point{}, m, image.Point{}, draw.Over)
	}
	return &Sheet{Image: img, Cell: cell}
}

// Rect returns the pixel rect of id in the sheet, or false for icons the
// sheet does not hold.
func (s *Sheet) Rect(id ui.Icon) (image.Rectangle, bool) {
	if id < ui.IconClose || id >= ui.IconMax {
		return image.Rectangle{}, false
	}
	x := int(id-1) * s.Cell
	return image.Rect(x, 0, x+s.Cell, s.Cell), true
}
