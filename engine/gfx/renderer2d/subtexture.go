package renderer2d

import "github.com/hubastard/groveui/engine/ui"

// SubTexture2D describes a UV sub-rect of a full texture.
type SubTexture2D struct {
	Texture Texture
	U0, V0  float32 // top-left
	U1, V1  float32 // bottom-right
}

// FromPixels builds a subtexture from pixel coordinates within an atlas.
// Textures are uploaded top row first, so V grows downward like Y.
func FromPixels(tex Texture, x, y, w, h, atlasW, atlasH int) SubTexture2D {
	u0 := float32(x) / float32(atlasW)
	v0 := float32(y) / float32(atlasH)
	u1 := float32(x+w) / float32(atlasW)
	v1 := float32(y+h) / float32(atlasH)
	return SubTexture2D{Texture: tex, U0: u0, V0: v0, U1: u1, V1: v1}
}

// FromGrid builds a subtexture from tile grid coordinates (cx,cy) of cell size (cw,ch).
func FromGrid(tex Texture, cx, cy, cw, ch, atlasW, atlasH int) SubTexture2D {
	return FromPixels(tex, cx*cw, cy*ch, cw, ch, atlasW, atlasH)
}

// SubTextureSource is an uploaded icon sheet: one square cell per icon, in
// ui.Icon order, on a single row.
type SubTextureSource struct {
	Texture Texture
	W, H    int
	Cell    int
}

func (s SubTextureSource) Icon(id ui.Icon) (SubTexture2D, bool) {
	if id < ui.IconClose || id >= ui.IconMax {
		return SubTexture2D{}, false
	}
	return FromGrid(s.Texture, int(id-1), 0, s.Cell, s.Cell, s.W, s.H), true
}
