package ui

import "github.com/hubastard/groveui/engine/colors"

// ColorID indexes Style.Colors.
type ColorID int

const (
	ColorText ColorID = iota
	ColorBorder
	ColorWindowBg
	ColorTitleBg
	ColorTitleText
	ColorPanelBg
	ColorButton
	ColorButtonHover
	ColorButtonFocus
	ColorBase
	ColorBaseHover
	ColorBaseFocus
	ColorScrollBase
	ColorScrollThumb
	ColorMax
)

var colorNames = [ColorMax]string{
	ColorText:        "text",
	ColorBorder:      "border",
	ColorWindowBg:    "window_bg",
	ColorTitleBg:     "title_bg",
	ColorTitleText:   "title_text",
	ColorPanelBg:     "panel_bg",
	ColorButton:      "button",
	ColorButtonHover: "button_hover",
	ColorButtonFocus: "button_focus",
	ColorBase:        "base",
	ColorBaseHover:   "base_hover",
	ColorBaseFocus:   "base_focus",
	ColorScrollBase:  "scroll_base",
	ColorScrollThumb: "scroll_thumb",
}

func (id ColorID) String() string {
	if id >= 0 && id < ColorMax {
		return colorNames[id]
	}
	return "unknown"
}

// ColorIDByName is the inverse of ColorID.String, used by style files.
func ColorIDByName(name string) (ColorID, bool) {
	for i, n := range colorNames {
		if n == name {
			return ColorID(i), true
		}
	}
	return 0, false
}

// Font is an opaque handle passed back to the metrics callbacks and stored
// in text commands. It must be comparable.
type Font any

type Style struct {
	Font          Font
	Size          Vec2 // default item size, before padding
	Padding       int
	Spacing       int
	Indent        int
	TitleHeight   int
	ScrollbarSize int
	ThumbSize     int
	// FrameBorders draws a one pixel ColorBorder box around framed controls.
	FrameBorders bool
	Colors       [ColorMax]colors.Color
}

func DefaultStyle() Style {
	return Style{
		Size:          Vec2{68, 10},
		Padding:       5,
		Spacing:       4,
		Indent:        24,
		TitleHeight:   24,
		ScrollbarSize: 12,
		ThumbSize:     8,
		Colors: [ColorMax]colors.Color{
			ColorText:        {230, 230, 230, 255},
			ColorBorder:      {25, 25, 25, 255},
			ColorWindowBg:    {50, 50, 50, 255},
			ColorTitleBg:     {25, 25, 25, 255},
			ColorTitleText:   {240, 240, 240, 255},
			ColorPanelBg:     {0, 0, 0, 0},
			ColorButton:      {75, 75, 75, 255},
			ColorButtonHover: {95, 95, 95, 255},
			ColorButtonFocus: {115, 115, 115, 255},
			ColorBase:        {30, 30, 30, 255},
			ColorBaseHover:   {35, 35, 35, 255},
			ColorBaseFocus:   {40, 40, 40, 255},
			ColorScrollBase:  {43, 43, 43, 255},
			ColorScrollThumb: {30, 30, 30, 255},
		},
	}
}

// Style returns a copy of the active style.
func (c *Ctx) Style() Style { return c.style }

// SetStyle swaps the style. Layout and drawing read the style throughout a
// frame, so it can only change between frames.
func (c *Ctx) SetStyle(s Style) {
	if c.state == FrameOpen {
		c.fatal("SetStyle", ErrFrameState, "style swapped inside a frame")
	}
	c.style = s
}
