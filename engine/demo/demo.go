// Package demo is the showcase UI shared by the sandbox and uidump: a
// controls window, a log, a live style editor and an optional stats window.
package demo

import (
	"strings"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/gfx/renderer2d"
	"github.com/hubastard/groveui/engine/profiler"
	"github.com/hubastard/groveui/engine/scratch"
	"github.com/hubastard/groveui/engine/ui"
)

const maxLogLines = 64

const lorem = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. " +
	"Maecenas lacinia, sem eu lacinia molestie, mi risus faucibus ipsum, " +
	"eu varius magna felis a nulla."

// Demo holds the state the demo windows keep between frames.
type Demo struct {
	buf      *scratch.Buffer
	lines    []string
	scrollUp bool
	checks   [3]bool
	pending  *ui.Style
	frameMs  float64

	// ShowStats adds the stats window. It reads live memory counters, so
	// leave it off when frames must be reproducible.
	ShowStats bool
	// RendererStats feeds the stats window when a batching backend is in use.
	RendererStats func() renderer2d.Statistics
}

func New() *Demo {
	return &Demo{
		buf:    scratch.New(4 * 1024),
		checks: [3]bool{true, false, true},
	}
}

// Log appends a copy of line to the log window, dropping the oldest past
// 64 lines.
func (d *Demo) Log(line string) {
	line = strings.Clone(line)
	if len(d.lines) == maxLogLines {
		copy(d.lines, d.lines[1:])
		d.lines = d.lines[:maxLogLines-1]
	}
	d.lines = append(d.lines, line)
	d.scrollUp = true
}

func (d *Demo) Lines() []string { return d.lines }

// SetFrameTime is shown by the stats window.
func (d *Demo) SetFrameTime(ms float64) { d.frameMs = ms }

// Build declares every demo window. It must run inside a frame.
func (d *Demo) Build(c *ui.Ctx) {
	d.buf.Reset()
	d.testWindow(c)
	d.logWindow(c)
	d.styleWindow(c)
	if d.ShowStats {
		d.statsWindow(c)
	}
}

// ApplyPending installs the style edited during the last frame. Call it
// between frames; it reports whether anything changed.
func (d *Demo) ApplyPending(c *ui.Ctx) bool {
	if d.pending == nil {
		return false
	}
	c.SetStyle(*d.pending)
	d.pending = nil
	return true
}

func (d *Demo) testWindow(c *ui.Ctx) {
	c.Window("Demo Window", ui.R(40, 40, 300, 450), 0, func() {
		win := c.CurrentContainer()

		if c.Header("Window Info") != 0 {
			c.Row(0, 54, -1)
			c.Label("Position:")
			c.Label(d.buf.Sprintf("%d, %d", win.Rect.X, win.Rect.Y))
			c.Label("Size:")
			c.Label(d.buf.Sprintf("%d, %d", win.Rect.W, win.Rect.H))
		}

		if c.HeaderEx("Test Buttons", ui.OptExpanded) != 0 {
			c.Row(0, 86, -110, -1)
			c.Label("Test buttons 1:")
			if c.Button("Button 1")&ui.ResSubmit != 0 {
				d.Log("Pressed button 1")
			}
			if c.Button("Button 2")&ui.ResSubmit != 0 {
				d.Log("Pressed button 2")
			}
			c.Label("Test buttons 2:")
			if c.Button("Button 3")&ui.ResSubmit != 0 {
				d.Log("Pressed button 3")
			}
			if c.Button("Popup")&ui.ResSubmit != 0 {
				c.OpenPopup("Test Popup")
			}
			c.Popup("Test Popup", func() {
				if c.Button("Hello")&ui.ResSubmit != 0 {
					d.Log("Hello")
				}
				if c.Button("World")&ui.ResSubmit != 0 {
					d.Log("World")
				}
			})
		}

		if c.HeaderEx("Tree and Text", ui.OptExpanded) != 0 {
			c.Row(0, 140, -1)
			c.Column(func() { d.tree(c) })
			c.Column(func() {
				c.Row(0, -1)
				c.Text(lorem)
			})
		}
	})
}

func (d *Demo) tree(c *ui.Ctx) {
	c.TreeNode("Test 1", func() {
		c.TreeNode("Test 1a", func() {
			c.Label("Hello")
			c.Label("world")
		})
		c.TreeNode("Test 1b", func() {
			if c.Button("Button 1")&ui.ResSubmit != 0 {
				d.Log("Pressed button 1 in the tree")
			}
			if c.Button("Button 2")&ui.ResSubmit != 0 {
				d.Log("Pressed button 2 in the tree")
			}
		})
	})
	c.TreeNode("Test 2", func() {
		c.Row(0, 54, 54)
		for i := 3; i <= 6; i++ {
			if c.Button(d.buf.Sprintf("Button %d", i))&ui.ResSubmit != 0 {
				d.Log(d.buf.Sprintf("Pressed button %d in the tree", i))
			}
		}
	})
	c.TreeNode("Test 3", func() {
		for i := range d.checks {
			if c.Checkbox(d.buf.Sprintf("Checkbox %d", i+1), &d.checks[i])&ui.ResChange != 0 {
				d.Log(d.buf.Sprintf("Checkbox %d: %t", i+1, d.checks[i]))
			}
		}
	})
}

func (d *Demo) logWindow(c *ui.Ctx) {
	c.Window("Log Window", ui.R(350, 40, 300, 200), 0, func() {
		c.Row(-25, -1)
		c.Panel("Log Output", 0, func() {
			c.Row(-1, -1)
			c.Text(d.joinedLog())
			if d.scrollUp {
				p := c.CurrentContainer()
				p.Scroll.Y = p.ContentSize.Y
				d.scrollUp = false
			}
		})

		c.Row(0, -70, -1)
		c.Label(d.buf.Sprintf("%d lines", len(d.lines)))
		if c.Button("Clear")&ui.ResSubmit != 0 {
			d.lines = d.lines[:0]
		}
	})
}

func (d *Demo) joinedLog() string {
	m := d.buf.Mark()
	for i, l := range d.lines {
		if i > 0 {
			d.buf.C('\n')
		}
		d.buf.S(l)
	}
	return d.buf.ViewFrom(m)
}

func (d *Demo) styleWindow(c *ui.Ctx) {
	st := c.Style()
	if d.pending != nil {
		st = *d.pending
	}
	edit := func(f func(s *ui.Style)) {
		f(&st)
		d.pending = &st
	}

	c.Window("Style Editor", ui.R(350, 250, 300, 240), 0, func() {
		c.Row(0, 90, -50, -25, -1)
		for id := range ui.ColorMax {
			col := st.Colors[id]
			c.PushIDInt(int(id))
			c.Label(id.String())
			r := c.NextRect()
			c.DrawRect(r, col)
			c.DrawControlText(col.Hex(), r, ui.ColorText, ui.OptAlignCenter)
			if c.Button("-")&ui.ResSubmit != 0 {
				edit(func(s *ui.Style) { s.Colors[id] = shade(col, -16) })
			}
			if c.Button("+")&ui.ResSubmit != 0 {
				edit(func(s *ui.Style) { s.Colors[id] = shade(col, 16) })
			}
			c.PopID()
		}

		sizes := []struct {
			name string
			v    *int
		}{
			{"padding", &st.Padding},
			{"spacing", &st.Spacing},
			{"indent", &st.Indent},
			{"title", &st.TitleHeight},
			{"scrollbar", &st.ScrollbarSize},
			{"thumb", &st.ThumbSize},
		}
		for i, sz := range sizes {
			c.PushIDInt(int(ui.ColorMax) + i)
			c.Label(sz.name)
			c.Label(d.buf.Sprintf("%d", *sz.v))
			if c.Button("-")&ui.ResSubmit != 0 && *sz.v > 0 {
				edit(func(*ui.Style) { *sz.v-- })
			}
			if c.Button("+")&ui.ResSubmit != 0 {
				edit(func(*ui.Style) { *sz.v++ })
			}
			c.PopID()
		}

		c.Row(0, -1)
		borders := st.FrameBorders
		if c.Checkbox("frame borders", &borders)&ui.ResChange != 0 {
			edit(func(s *ui.Style) { s.FrameBorders = borders })
		}
	})
}

func (d *Demo) statsWindow(c *ui.Ctx) {
	c.Window("Stats", ui.R(660, 40, 240, 300), 0, func() {
		c.Row(0, 110, -1)
		section := func(name string) {
			c.Row(0, -1)
			c.DrawControlText(name, c.NextRect(), ui.ColorTitleText, 0)
			c.Row(0, 110, -1)
		}
		pair := func(k, v string) {
			c.Label(k)
			c.Label(v)
		}

		section("Frame")
		pair("Number", d.buf.Sprintf("%d", c.Frame()))
		pair("Time", d.buf.Sprintf("%.2f ms", d.frameMs))
		if dur := profiler.Last("ui"); dur > 0 {
			pair("UI build", dur.String())
		}

		if d.RendererStats != nil {
			st := d.RendererStats()
			section("Renderer")
			pair("Draw calls", d.buf.Sprintf("%d", st.DrawCalls))
			pair("Quads", d.buf.Sprintf("%d", st.QuadCount))
			pair("Vertices", d.buf.Sprintf("%d", st.TotalVertexCount()))
			pair("Textures", d.buf.Sprintf("%d", st.TextureCount))
		}

		m := profiler.ReadMemory()
		section("Memory")
		pair("Heap", d.buf.Sprintf("%.3f MB", float64(m.Alloc)/(1<<20)))
		pair("Allocs", d.buf.Sprintf("%d", m.Mallocs))
		pair("GC cycles", d.buf.Sprintf("%d", m.NumGC))
		pair("Goroutines", d.buf.Sprintf("%d", profiler.NumGoroutine()))
		pair("CPUs", d.buf.Sprintf("%d", profiler.NumCPU()))
	})
}

// shade moves every channel by delta, keeping alpha.
func shade(c colors.Color, delta int) colors.Color {
	ch := func(v uint8) uint8 { return uint8(min(max(int(v)+delta, 0), 255)) }
	return colors.RGBA(ch(c.R), ch(c.G), ch(c.B), c.A)
}
