package assets

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShader(t *testing.T) {
	for _, name := range []string{"ui.vert", "ui.frag"} {
		src, err := LoadShader(name)
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(src, "#version 330 core"), name)
		assert.True(t, strings.HasSuffix(src, "\x00"), name)
	}
	_, err := LoadShader("missing.vert")
	assert.ErrorContains(t, err, `load shader "missing.vert"`)
}

func TestPNGRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.RGBA{R: 200, G: 10, B: 20, A: 255})
	path := filepath.Join(t.TempDir(), "out.png")

	require.NoError(t, SavePNG(path, img))
	got, err := LoadPNG(path)
	require.NoError(t, err)
	assert.Equal(t, 0, Diff(img, got, 0))
	assert.Equal(t, 12, got.Stride)
}

func TestLoadPNGErrors(t *testing.T) {
	_, err := LoadPNG(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorContains(t, err, "open")

	bad := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0o644))
	_, err = LoadPNG(bad)
	assert.ErrorContains(t, err, "decode png")
}

func TestToRGBARepacksSubImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(2, 2, color.White)
	sub := img.SubImage(image.Rect(2, 2, 4, 4)).(*image.RGBA)

	got := ToRGBA(sub)
	assert.Equal(t, image.Rect(0, 0, 2, 2), got.Rect)
	assert.Equal(t, 8, got.Stride)
	assert.Equal(t, uint8(255), got.Pix[3])
	assert.Same(t, img, ToRGBA(img))
}

func TestDiff(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 2, 2))
	b := image.NewRGBA(image.Rect(0, 0, 2, 2))
	b.Pix[0] = 3
	assert.Equal(t, 1, Diff(a, b, 0))
	assert.Equal(t, 0, Diff(a, b, 3))
	assert.Equal(t, 9, Diff(a, image.NewRGBA(image.Rect(0, 0, 3, 3)), 0))
}
