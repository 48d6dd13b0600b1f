package glbackend

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/groveui/engine/assets"
	"github.com/hubastard/groveui/engine/gfx/renderer2d"
	"github.com/hubastard/groveui/engine/ui"
)

const maxTexUnits = 16

// Device implements renderer2d.Device on a GL 3.3 core context. Texture
// handles are uint32 GL names.
type Device struct {
	program       uint32
	vao, vbo, ebo uint32
	uVP           int32
	proj          *renderer2d.Projection
}

// NewDevice compiles the UI program and allocates the streaming buffers.
// The caller's GL context must be current.
func NewDevice(proj *renderer2d.Projection) (*Device, error) {
	prog, err := loadProgram("ui.vert", "ui.frag")
	if err != nil {
		return nil, err
	}
	d := &Device{program: prog, proj: proj}
	d.uVP = gl.GetUniformLocation(prog, gl.Str("uVP\x00"))

	gl.UseProgram(prog)
	var units [maxTexUnits]int32
	for i := range units {
		units[i] = int32(i)
	}
	gl.Uniform1iv(gl.GetUniformLocation(prog, gl.Str("uTex\x00")), maxTexUnits, &units[0])
	gl.UseProgram(0)

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.GenBuffers(1, &d.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.ebo)

	stride := int32(renderer2d.VertexLayout.Stride)
	for _, a := range renderer2d.VertexLayout.Attributes {
		gl.EnableVertexAttribArray(uint32(a.Location))
		gl.VertexAttribPointer(uint32(a.Location), int32(a.Size), gl.FLOAT, false, stride, unsafe.Pointer(uintptr(a.Offset)))
	}
	gl.BindVertexArray(0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return d, nil
}

func (d *Device) CreateTexture(img *image.RGBA) (renderer2d.Texture, error) {
	img = assets.ToRGBA(img)
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return nil, errors.New("empty image")
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if e := gl.GetError(); e != gl.NO_ERROR {
		gl.DeleteTextures(1, &tex)
		return nil, fmt.Errorf("glTexImage2D: 0x%04x", e)
	}
	return tex, nil
}

func (d *Device) DeleteTexture(t renderer2d.Texture) {
	if tex, ok := t.(uint32); ok && tex != 0 {
		gl.DeleteTextures(1, &tex)
	}
}

// Scissor takes r in UI pixels. GL counts rows from the bottom of the
// framebuffer, so Y is flipped.
func (d *Device) Scissor(r ui.Rect, enabled bool) {
	if !enabled {
		gl.Disable(gl.SCISSOR_TEST)
		return
	}
	s := d.proj.Scale
	x := int32(float32(r.X) * s)
	y := int32(float32(d.proj.Height) - float32(r.Y+r.H)*s)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(x, y, int32(float32(r.W)*s), int32(float32(r.H)*s))
}

func (d *Device) DrawTriangles(verts []float32, inds []uint32, textures []renderer2d.Texture) {
	if len(inds) == 0 {
		return
	}
	gl.UseProgram(d.program)
	vp := d.proj.VP()
	gl.UniformMatrix4fv(d.uVP, 1, false, &vp[0])

	for i, t := range textures {
		tex, _ := t.(uint32)
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, tex)
	}

	gl.BindVertexArray(d.vao)
	// orphan then upload: the previous batch may still be in flight
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(inds)*4, gl.Ptr(inds), gl.STREAM_DRAW)

	gl.DrawElements(gl.TRIANGLES, int32(len(inds)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Close frees the program and buffers. Textures belong to the renderer.
func (d *Device) Close() {
	if d.ebo != 0 {
		gl.DeleteBuffers(1, &d.ebo)
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
	}
	if d.program != 0 {
		gl.DeleteProgram(d.program)
	}
}
