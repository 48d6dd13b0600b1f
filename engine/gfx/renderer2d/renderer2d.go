// Package renderer2d replays a ui command list as batches of textured
// quads. A Device does the GPU work; everything here is plain CPU data.
package renderer2d

import (
	"fmt"
	"image"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/gfx/icons"
	"github.com/hubastard/groveui/engine/text"
	"github.com/hubastard/groveui/engine/ui"
)

// Texture is a device texture handle. It must be comparable.
type Texture any

// Device uploads textures and draws indexed triangles. Vertices use
// VertexLayout; the texIndex attribute selects from textures.
type Device interface {
	CreateTexture(img *image.RGBA) (Texture, error)
	DeleteTexture(t Texture)
	Scissor(r ui.Rect, enabled bool)
	DrawTriangles(verts []float32, inds []uint32, textures []Texture)
}

// Max textures per batch (common GL limit is 16)
const maxTexSlots = 16

// Vertex: pos2 + color4 + uv2 + texIndex1 => 9 floats
const vStride = 9
const vertsPerQuad = 4
const indsPerQuad = 6

// IconCell is the pixel size icons are rasterised at before scaling.
const IconCell = 32

type VertexAttrib struct {
	Location, Size, Offset int
}

var VertexLayout = struct {
	Stride     int
	Attributes []VertexAttrib
}{
	Stride: vStride * 4,
	Attributes: []VertexAttrib{
		{Location: 0, Size: 2, Offset: 0},     // pos
		{Location: 1, Size: 4, Offset: 2 * 4}, // color
		{Location: 2, Size: 2, Offset: 6 * 4}, // uv
		{Location: 3, Size: 1, Offset: 8 * 4}, // texIndex
	},
}

// Statistics captures the counts generated during one Render.
type Statistics struct {
	Commands     int
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

type Renderer2D struct {
	dev     Device
	fonts   *text.Fonts
	white   Texture // 1x1 white (slot 0)
	icons   SubTextureSource
	atlases map[*text.Atlas]Texture

	texArr [maxTexSlots]Texture
	texCnt int

	verts     []float32
	inds      []uint32
	quadCount int
	maxQuads  int

	stats Statistics
}

// New creates the renderer and uploads the white and icon textures. Font
// atlases are uploaded the first time a text record uses them.
func New(dev Device, fonts *text.Fonts, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	whiteImg := image.NewRGBA(image.Rect(0, 0, 1, 1))
	whiteImg.Pix = []byte{255, 255, 255, 255}
	white, err := dev.CreateTexture(whiteImg)
	if err != nil {
		return nil, fmt.Errorf("white texture: %w", err)
	}
	sheet := icons.NewSheet(IconCell)
	iconTex, err := dev.CreateTexture(sheet.Image)
	if err != nil {
		dev.DeleteTexture(white)
		return nil, fmt.Errorf("icon texture: %w", err)
	}

	return &Renderer2D{
		dev: dev, fonts: fonts, white: white, maxQuads: maxQuads,
		icons:   SubTextureSource{Texture: iconTex, W: sheet.Image.Rect.Dx(), H: sheet.Image.Rect.Dy(), Cell: sheet.Cell},
		atlases: map[*text.Atlas]Texture{},
		verts:   make([]float32, 0, maxQuads*vertsPerQuad*vStride),
		inds:    make([]uint32, 0, maxQuads*indsPerQuad),
	}, nil
}

// Stats returns the last frame's statistics.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// Render replays list in order. Clip records flush the batch and move the
// scissor; UnclippedRect turns it off.
func (rd *Renderer2D) Render(list *ui.CommandList) error {
	rd.stats = Statistics{}
	rd.resetBatch()
	rd.dev.Scissor(ui.UnclippedRect, false)

	for cmd := range list.Commands() {
		rd.stats.Commands++
		switch cmd.Type {
		case ui.CommandClip:
			rd.flush()
			rd.dev.Scissor(cmd.Rect, cmd.Rect != ui.UnclippedRect)
		case ui.CommandRect:
			rd.DrawQuad(cmd.Rect, cmd.Color)
		case ui.CommandText:
			if err := rd.drawText(cmd); err != nil {
				return err
			}
		case ui.CommandIcon:
			rd.drawIcon(cmd)
		}
	}
	rd.flush()
	return nil
}

// DrawQuad draws a solid color quad (uses white texture in slot 0).
func (rd *Renderer2D) DrawQuad(r ui.Rect, color colors.Color) {
	rd.ensureQuadCapacity()
	rd.drawQuadInternal(r, color, rd.texSlot(rd.white), 0, 0, 1, 1)
}

// DrawSubTexQuad draws a tinted quad sampling sub.
func (rd *Renderer2D) DrawSubTexQuad(r ui.Rect, sub SubTexture2D, tint colors.Color) {
	rd.ensureQuadCapacity()
	rd.drawQuadInternal(r, tint, rd.texSlot(sub.Texture), sub.U0, sub.V0, sub.U1, sub.V1)
}

// Close releases every texture the renderer created.
func (rd *Renderer2D) Close() {
	rd.dev.DeleteTexture(rd.white)
	rd.dev.DeleteTexture(rd.icons.Texture)
	for a, tex := range rd.atlases {
		rd.dev.DeleteTexture(tex)
		delete(rd.atlases, a)
	}
}

// --- internals ---

func (rd *Renderer2D) atlasTexture(a *text.Atlas) (Texture, error) {
	if tex, ok := rd.atlases[a]; ok {
		return tex, nil
	}
	tex, err := rd.dev.CreateTexture(a.Image)
	if err != nil {
		return nil, fmt.Errorf("upload atlas %s: %w", a, err)
	}
	rd.atlases[a] = tex
	return tex, nil
}

func (rd *Renderer2D) drawText(cmd ui.Command) error {
	a := rd.fonts.Atlas(cmd.Font)
	tex, err := rd.atlasTexture(a)
	if err != nil {
		return err
	}
	for at, g := range a.Quads(cmd.Text, cmd.Rect.X, cmd.Rect.Y) {
		rd.DrawSubTexQuad(ui.R(at.X, at.Y, g.W, g.H), SubTexture2D{
			Texture: tex, U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1,
		}, cmd.Color)
	}
	return nil
}

// drawIcon centers the icon square in the record's rect. Icons without a
// built-in outline draw nothing.
func (rd *Renderer2D) drawIcon(cmd ui.Command) {
	sub, ok := rd.icons.Icon(cmd.Icon)
	if !ok {
		return
	}
	rd.DrawSubTexQuad(icons.Fit(cmd.Rect), sub, cmd.Color)
}

func (rd *Renderer2D) texSlot(t Texture) float32 {
	// already in array?
	for i := 0; i < rd.texCnt; i++ {
		if rd.texArr[i] == t {
			return float32(i)
		}
	}
	// need a new slot
	if rd.texCnt >= maxTexSlots {
		// flush and reset texture bindings
		rd.flush()
	}
	rd.texArr[rd.texCnt] = t
	rd.texCnt++
	rd.stats.TextureCount = max(rd.stats.TextureCount, rd.texCnt)
	return float32(rd.texCnt - 1)
}

func (rd *Renderer2D) drawQuadInternal(r ui.Rect, color colors.Color, texIndex float32, u0, v0, u1, v1 float32) {
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.W), float32(r.Y+r.H)
	c := color.Float()

	// corners (TL, TR, BL, BR). Positive Y goes down.
	corners := [4][4]float32{
		{x0, y0, u0, v0},
		{x1, y0, u1, v0},
		{x0, y1, u0, v1},
		{x1, y1, u1, v1},
	}
	startVertex := uint32(len(rd.verts) / vStride)
	for _, p := range corners {
		rd.verts = append(rd.verts,
			p[0], p[1],
			c[0], c[1], c[2], c[3],
			p[2], p[3],
			texIndex,
		)
	}
	rd.inds = append(rd.inds,
		startVertex+0, startVertex+2, startVertex+1,
		startVertex+1, startVertex+2, startVertex+3,
	)
	rd.quadCount++
	rd.stats.QuadCount++
}

func (rd *Renderer2D) flush() {
	if rd.quadCount == 0 {
		return
	}
	rd.dev.DrawTriangles(rd.verts, rd.inds, rd.texArr[:rd.texCnt])
	rd.stats.DrawCalls++
	rd.resetBatch()
}

func (rd *Renderer2D) resetBatch() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	rd.quadCount = 0
	clear(rd.texArr[:])
	rd.texArr[0] = rd.white
	rd.texCnt = 1
}

func (rd *Renderer2D) ensureQuadCapacity() {
	if rd.quadCount >= rd.maxQuads {
		rd.flush()
	}
}
