package text

import (
	"fmt"

	"github.com/hubastard/groveui/engine/ui"
)

// Fonts maps the opaque font handles stored in style and command records to
// rasterised atlases. A nil handle, or one that was never registered,
// resolves to the default atlas.
type Fonts struct {
	def   *Atlas
	byKey map[ui.Font]*Atlas
}

func NewFonts(def *Atlas) *Fonts {
	if def == nil {
		panic("text: NewFonts requires a default atlas")
	}
	return &Fonts{def: def, byKey: map[ui.Font]*Atlas{}}
}

// Add registers a under key, replacing whatever was there.
func (f *Fonts) Add(key ui.Font, a *Atlas) error {
	if key == nil {
		return fmt.Errorf("text: nil font key is reserved for the default atlas")
	}
	if a == nil {
		return fmt.Errorf("text: nil atlas for font %v", key)
	}
	f.byKey[key] = a
	return nil
}

func (f *Fonts) Default() *Atlas { return f.def }

func (f *Fonts) Atlas(key ui.Font) *Atlas {
	if key == nil {
		return f.def
	}
	if a, ok := f.byKey[key]; ok {
		return a
	}
	return f.def
}

// TextWidth satisfies ui.TextWidthFunc.
func (f *Fonts) TextWidth(font ui.Font, s string) int { return f.Atlas(font).Width(s) }

// TextHeight satisfies ui.TextHeightFunc.
func (f *Fonts) TextHeight(font ui.Font) int { return f.Atlas(font).LineHeight() }

// Close releases every registered atlas.
func (f *Fonts) Close() error {
	var first error
	seen := map[*Atlas]bool{}
	for _, a := range f.byKey {
		if seen[a] {
			continue
		}
		seen[a] = true
		if err := a.Close(); err != nil && first == nil {
			first = err
		}
	}
	if !seen[f.def] {
		if err := f.def.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Fixed is monospace metrics that need no font at all, handy for headless
// runs and dumps.
type Fixed struct {
	Advance int
	Line    int
}

func (m Fixed) TextWidth(_ ui.Font, s string) int {
	var width, n int
	for _, r := range s {
		if r == '\n' {
			width = max(width, n)
			n = 0
			continue
		}
		n++
	}
	return max(width, n) * m.Advance
}

func (m Fixed) TextHeight(ui.Font) int { return m.Line }
