package text

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  int // pixels
	BearingX int // left bearing in pixels
	BearingY int // distance from baseline to glyph top
	W, H     int // glyph bitmap size
	// position in the atlas image, in pixels
	X, Y int
	// UVs in the atlas
	U0, V0 float32
	U1, V1 float32
}

// Atlas is a rasterised font: white glyphs with alpha coverage packed into
// one RGBA image, plus the metrics needed to lay them out. Backends upload
// Image once and sample glyphs by their rects or UVs.
type Atlas struct {
	Name                     string
	SizePx                   float64
	Ascent, Descent, LineGap int
	Glyphs                   map[rune]Glyph
	Image                    *image.RGBA
	face                     font.Face
}

func (a *Atlas) Close() error {
	if a == nil || a.face == nil {
		return nil
	}
	err := a.face.Close()
	a.face = nil
	return err
}

func (a *Atlas) String() string { return fmt.Sprintf("%s@%gpx", a.Name, a.SizePx) }

// Default rasterises Go Regular at sizePx.
func Default(sizePx float64) (*Atlas, error) {
	return Parse("goregular", goregular.TTF, sizePx)
}

// LoadTTF reads and rasterises the TrueType or OpenType font at path.
func LoadTTF(path string, sizePx float64) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return Parse(path, data, sizePx)
}

const (
	atlasPadding = 2
	maxAtlasSize = 4096
)

// Parse rasterises Latin-1 (32..255) from font data.
func Parse(name string, data []byte, sizePx float64) (*Atlas, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: sizePx, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	m := face.Metrics()
	ascent := m.Ascent.Round()
	descent := -m.Descent.Round()
	lineGap := m.Height.Round() - ascent + descent

	type meas struct {
		r      rune
		w, h   int
		adv    int
		bx, by int
	}
	measure := make([]meas, 0, 224)
	for r := rune(32); r <= 255; r++ {
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r:   r,
			w:   br.Max.X.Ceil() - br.Min.X.Floor(),
			h:   br.Max.Y.Ceil() - br.Min.Y.Floor(),
			adv: adv.Round(),
			bx:  br.Min.X.Floor(),
			by:  -br.Min.Y.Floor(),
		})
	}

	// Shelf packer. Start small and double until everything fits.
	atlasSize := 128
	var pos map[rune]image.Point
	for {
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))

		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if g.w+atlasPadding*2 > atlasSize || g.h+atlasPadding*2 > atlasSize {
				fits = false
				break
			}
			if x+g.w+atlasPadding > atlasSize {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if y+g.h+atlasPadding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + atlasPadding
			rowH = max(rowH, g.h)
		}

		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > maxAtlasSize {
			_ = face.Close()
			return nil, fmt.Errorf("font atlas too large (>%d)", maxAtlasSize)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		gl := Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: g.bx, BearingY: g.by,
			W: g.w, H: g.h,
		}
		if p, ok := pos[g.r]; ok {
			// the drawer's dot sits on the baseline
			drawer.Dot = fixed.P(p.X-g.bx, p.Y+g.by)
			drawer.DrawString(string(g.r))

			size := float32(atlasSize)
			gl.X, gl.Y = p.X, p.Y
			gl.U0, gl.V0 = float32(p.X)/size, float32(p.Y)/size
			gl.U1, gl.V1 = float32(p.X+g.w)/size, float32(p.Y+g.h)/size
		}
		glyphs[g.r] = gl
	}

	return &Atlas{
		Name:   name,
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs: glyphs,
		Image:  dst,
		face:   face,
	}, nil
}

// Blit draws the coverage of g with its top-left at at, colored by src.
func (a *Atlas) Blit(dst draw.Image, at image.Point, g Glyph, src image.Image) {
	r := image.Rect(at.X, at.Y, at.X+g.W, at.Y+g.H)
	draw.DrawMask(dst, r, src, image.Point{}, a.Image, image.Pt(g.X, g.Y), draw.Over)
}
