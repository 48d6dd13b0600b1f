// Package soft rasterises ui command lists into an *image.RGBA on the CPU.
// It backs headless tools and golden-image tests.
package soft

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/gfx/icons"
	"github.com/hubastard/groveui/engine/text"
	"github.com/hubastard/groveui/engine/ui"
)

type maskKey struct {
	id   ui.Icon
	size int
}

// Renderer implements core.Backend without a GPU.
type Renderer struct {
	img   *image.RGBA
	fonts *text.Fonts
	clip  image.Rectangle
	masks map[maskKey]*image.Alpha
	cmds  int
}

func New(fonts *text.Fonts, w, h int) *Renderer {
	r := &Renderer{fonts: fonts, masks: map[maskKey]*image.Alpha{}}
	r.Resize(w, h)
	return r
}

// Image is the render target. It is replaced by Resize.
func (r *Renderer) Image() *image.RGBA { return r.img }

// Commands is how many records the last Render replayed.
func (r *Renderer) Commands() int { return r.cmds }

func (r *Renderer) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if r.img != nil && r.img.Rect.Dx() == w && r.img.Rect.Dy() == h {
		return
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (r *Renderer) Clear(rf, gf, bf, af float32) {
	c := color.NRGBA{R: unit(rf), G: unit(gf), B: unit(bf), A: unit(af)}
	draw.Draw(r.img, r.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Renderer) Render(list *ui.CommandList) error {
	r.clip = r.img.Rect
	r.cmds = 0
	for cmd := range list.Commands() {
		r.cmds++
		switch cmd.Type {
		case ui.CommandClip:
			if cmd.Rect == ui.UnclippedRect {
				r.clip = r.img.Rect
			} else {
				r.clip = toImage(cmd.Rect).Intersect(r.img.Rect)
			}
		case ui.CommandRect:
			draw.Draw(r.img, toImage(cmd.Rect).Intersect(r.clip), uniform(cmd.Color), image.Point{}, draw.Over)
		case ui.CommandText:
			r.drawText(cmd)
		case ui.CommandIcon:
			r.drawIcon(cmd)
		}
	}
	return nil
}

func (r *Renderer) Shutdown() { clear(r.masks) }

func (r *Renderer) target() *image.RGBA {
	return r.img.SubImage(r.clip).(*image.RGBA)
}

func (r *Renderer) drawText(cmd ui.Command) {
	if r.clip.Empty() {
		return
	}
	a := r.fonts.Atlas(cmd.Font)
	dst, src := r.target(), uniform(cmd.Color)
	for at, g := range a.Quads(cmd.Text, cmd.Rect.X, cmd.Rect.Y) {
		a.Blit(dst, at, g, src)
	}
}

func (r *Renderer) drawIcon(cmd ui.Command) {
	fit := icons.Fit(cmd.Rect)
	if r.clip.Empty() || fit.W <= 0 || !icons.Known(cmd.Icon) {
		return
	}
	key := maskKey{cmd.Icon, fit.W}
	m, ok := r.masks[key]
	if !ok {
		m = icons.Mask(cmd.Icon, fit.W)
		r.masks[key] = m
	}
	dst := toImage(fit)
	draw.DrawMask(r.target(), dst, uniform(cmd.Color), image.Point{}, m, image.Point{}, draw.Over)
}

func toImage(r ui.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func uniform(c colors.Color) *image.Uniform {
	return image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

func unit(f float32) uint8 {
	return uint8(min(max(f, 0), 1)*255 + 0.5)
}
