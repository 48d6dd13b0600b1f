// Package glbackend draws ui command lists with OpenGL 3.3 through
// renderer2d.
package glbackend

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/groveui/engine/gfx/renderer2d"
	"github.com/hubastard/groveui/engine/text"
	"github.com/hubastard/groveui/engine/ui"
)

// RendererGL implements core.Backend.
type RendererGL struct {
	dev  *Device
	r2d  *renderer2d.Renderer2D
	proj *renderer2d.Projection
	log  *slog.Logger
}

// NewRendererGL must run after the window made its context current.
// scale maps UI pixels to framebuffer pixels; pass 1 unless the framebuffer
// is larger than the window.
func NewRendererGL(fonts *text.Fonts, scale float32, log *slog.Logger) (*RendererGL, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	proj := renderer2d.NewProjection(1, 1)
	proj.SetScale(scale)

	dev, err := NewDevice(proj)
	if err != nil {
		return nil, fmt.Errorf("gl device: %w", err)
	}
	r2d, err := renderer2d.New(dev, fonts, 0)
	if err != nil {
		dev.Close()
		return nil, err
	}
	return &RendererGL{dev: dev, r2d: r2d, proj: proj, log: log}, nil
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
	r.proj.SetViewportPixels(w, h)
	r.log.Debug("viewport", "w", w, "h", h)
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *RendererGL) Render(cmds *ui.CommandList) error {
	return r.r2d.Render(cmds)
}

// Stats reports the last frame's batching counters.
func (r *RendererGL) Stats() renderer2d.Statistics { return r.r2d.Stats() }

func (r *RendererGL) Shutdown() {
	r.r2d.Close()
	r.dev.Close()
}
