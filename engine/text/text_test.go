package text

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/groveui/engine/ui"
)

func loadDefault(t *testing.T) *Atlas {
	t.Helper()
	a, err := Default(14)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestDefaultAtlas(t *testing.T) {
	a := loadDefault(t)
	assert.Equal(t, "goregular@14px", a.String())
	assert.Greater(t, a.Ascent, 0)
	assert.LessOrEqual(t, a.Descent, 0)
	assert.Greater(t, a.LineHeight(), a.Ascent)

	g, ok := a.Glyphs['A']
	require.True(t, ok)
	assert.Greater(t, g.W, 0)
	assert.Greater(t, g.Advance, 0)
	assert.Less(t, g.U0, g.U1)
	assert.Less(t, g.V0, g.V1)

	space := a.Glyphs[' ']
	assert.Zero(t, space.W*space.H, "space has no bitmap")
	assert.Greater(t, space.Advance, 0)

	// glyph pixels were rasterised into the atlas
	var covered bool
	for y := g.Y; y < g.Y+g.H && !covered; y++ {
		for x := g.X; x < g.X+g.W; x++ {
			if a.Image.RGBAAt(x, y).A > 0 {
				covered = true
				break
			}
		}
	}
	assert.True(t, covered)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("junk", []byte("not a font"), 12)
	assert.ErrorContains(t, err, "parse font")

	_, err = LoadTTF("/does/not/exist.ttf", 12)
	assert.ErrorContains(t, err, "read font")
}

func TestWidth(t *testing.T) {
	a := loadDefault(t)
	assert.Zero(t, a.Width(""))
	w1 := a.Width("m")
	assert.Equal(t, a.Glyphs['m'].Advance, w1)
	assert.Greater(t, a.Width("mm"), w1)
	assert.Equal(t, a.Width("mm"), a.Width("m\nmm"), "widest line wins")
	assert.Equal(t, a.Glyphs[' '].Advance, a.Width("世"), "unknown runes advance like a space")
}

func TestQuadsFollowPen(t *testing.T) {
	a := loadDefault(t)
	var pts []image.Point
	var runes []rune
	for at, g := range a.Quads("a b\nc", 10, 20) {
		pts = append(pts, at)
		runes = append(runes, g.Rune)
	}
	require.Equal(t, []rune{'a', 'b', 'c'}, runes)
	assert.Less(t, pts[0].X, pts[1].X)
	assert.Greater(t, pts[2].Y, pts[0].Y)
	assert.GreaterOrEqual(t, pts[0].Y, 20)

	var n int
	for range a.Quads("abc", 0, 0) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestBlit(t *testing.T) {
	a := loadDefault(t)
	dst := image.NewRGBA(image.Rect(0, 0, 32, 32))
	g := a.Glyphs['W']
	a.Blit(dst, image.Pt(4, 4), g, image.NewUniform(color.RGBA{255, 0, 0, 255}))

	var red int
	for y := range 32 {
		for x := range 32 {
			if c := dst.RGBAAt(x, y); c.R > 0 {
				red++
				assert.Zero(t, c.G)
			}
		}
	}
	assert.Greater(t, red, 0)
}

func TestFontsRegistry(t *testing.T) {
	def := loadDefault(t)
	big, err := Default(28)
	require.NoError(t, err)

	f := NewFonts(def)
	require.NoError(t, f.Add("big", big))
	assert.Error(t, f.Add(nil, big))
	assert.Error(t, f.Add("none", nil))

	assert.Same(t, def, f.Atlas(nil))
	assert.Same(t, def, f.Atlas("missing"))
	assert.Same(t, big, f.Atlas("big"))
	assert.Greater(t, f.TextWidth("big", "hello"), f.TextWidth(nil, "hello"))
	assert.Greater(t, f.TextHeight("big"), f.TextHeight(nil))

	var w ui.TextWidthFunc = f.TextWidth
	var h ui.TextHeightFunc = f.TextHeight
	c := ui.New(w, h)
	c.Update(func() {})

	require.NoError(t, f.Close())
}

func TestFixed(t *testing.T) {
	m := Fixed{Advance: 6, Line: 12}
	assert.Equal(t, 18, m.TextWidth(nil, "abc"))
	assert.Equal(t, 12, m.TextWidth(nil, "ab\nx"))
	assert.Equal(t, 6, m.TextWidth(nil, "é"), "one rune, one advance")
	assert.Equal(t, 12, m.TextHeight(nil))
}
