package config

import (
	"fmt"
	"sort"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/ui"
)

// StyleFile is the on-disk form of a ui.Style. Absent fields keep the base
// style's value; colors are keyed by ui.ColorID name and written as hex.
type StyleFile struct {
	Size          *[2]int           `toml:"size" yaml:"size"`
	Padding       *int              `toml:"padding" yaml:"padding"`
	Spacing       *int              `toml:"spacing" yaml:"spacing"`
	Indent        *int              `toml:"indent" yaml:"indent"`
	TitleHeight   *int              `toml:"title_height" yaml:"title_height"`
	ScrollbarSize *int              `toml:"scrollbar_size" yaml:"scrollbar_size"`
	ThumbSize     *int              `toml:"thumb_size" yaml:"thumb_size"`
	FrameBorders  *bool             `toml:"frame_borders" yaml:"frame_borders"`
	Colors        map[string]string `toml:"colors" yaml:"colors"`
}

// Apply returns base with every field present in f replaced.
func (f *StyleFile) Apply(base ui.Style) (ui.Style, error) {
	st := base
	if f.Size != nil {
		st.Size = ui.V2(f.Size[0], f.Size[1])
	}
	for _, p := range []struct {
		src *int
		dst *int
	}{
		{f.Padding, &st.Padding},
		{f.Spacing, &st.Spacing},
		{f.Indent, &st.Indent},
		{f.TitleHeight, &st.TitleHeight},
		{f.ScrollbarSize, &st.ScrollbarSize},
		{f.ThumbSize, &st.ThumbSize},
	} {
		if p.src != nil {
			*p.dst = *p.src
		}
	}
	if f.FrameBorders != nil {
		st.FrameBorders = *f.FrameBorders
	}

	var errs ValidationErrors
	names := make([]string, 0, len(f.Colors))
	for name := range f.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		id, ok := ui.ColorIDByName(name)
		if !ok {
			errs = append(errs, ValidationError{Field: "colors." + name, Message: "unknown color"})
			continue
		}
		col, err := colors.ParseHex(f.Colors[name])
		if err != nil {
			errs = append(errs, ValidationError{Field: "colors." + name, Message: err.Error()})
			continue
		}
		st.Colors[id] = col
	}

	if st.Size.X < 0 || st.Size.Y < 0 {
		errs = append(errs, ValidationError{Field: "size", Message: fmt.Sprintf("must not be negative, got %v", st.Size)})
	}
	for _, v := range []struct {
		name string
		n    int
	}{
		{"padding", st.Padding}, {"spacing", st.Spacing}, {"indent", st.Indent},
		{"title_height", st.TitleHeight}, {"scrollbar_size", st.ScrollbarSize}, {"thumb_size", st.ThumbSize},
	} {
		if v.n < 0 {
			errs = append(errs, ValidationError{Field: v.name, Message: "must not be negative"})
		}
	}
	if len(errs) > 0 {
		return base, errs
	}
	return st, nil
}

// LoadStyle reads a TOML or YAML style file over base.
func LoadStyle(path string, base ui.Style) (ui.Style, error) {
	var f StyleFile
	if err := decodeFile(path, &f); err != nil {
		return base, err
	}
	st, err := f.Apply(base)
	if err != nil {
		return base, fmt.Errorf("style %s: %w", path, err)
	}
	return st, nil
}
