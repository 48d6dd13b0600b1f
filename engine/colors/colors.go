package colors

import "fmt"

// Color is an 8-bit RGBA color as stored in draw commands.
type Color struct{ R, G, B, A uint8 }

func RGBA(r, g, b, a uint8) Color { return Color{r, g, b, a} }

var (
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Black       = Color{0, 0, 0, 255}
	Magenta     = Color{255, 0, 255, 255}
	Cyan        = Color{0, 255, 255, 255}
	Yellow      = Color{255, 255, 0, 255}
	Gray        = Color{128, 128, 128, 255}
	DarkGray    = Color{20, 25, 31, 255}
	Transparent = Color{}
)

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Float returns the color normalized to [0..1], the layout GL vertex data expects.
func (c Color) Float() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// Hex formats the color as #RRGGBB, or #RRGGBBAA when not opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseHex accepts #RGB, #RRGGBB and #RRGGBBAA (the leading # is optional).
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var nibbles [8]uint8
	for i := 0; i < len(s); i++ {
		if i >= len(nibbles) {
			return Color{}, fmt.Errorf("parse color %q: too long", s)
		}
		v, ok := hexNibble(s[i])
		if !ok {
			return Color{}, fmt.Errorf("parse color %q: invalid digit %q", s, s[i])
		}
		nibbles[i] = v
	}
	switch len(s) {
	case 3:
		return Color{nibbles[0] * 17, nibbles[1] * 17, nibbles[2] * 17, 255}, nil
	case 6:
		return Color{nibbles[0]<<4 | nibbles[1], nibbles[2]<<4 | nibbles[3], nibbles[4]<<4 | nibbles[5], 255}, nil
	case 8:
		return Color{nibbles[0]<<4 | nibbles[1], nibbles[2]<<4 | nibbles[3], nibbles[4]<<4 | nibbles[5], nibbles[6]<<4 | nibbles[7]}, nil
	}
	return Color{}, fmt.Errorf("parse color %q: want 3, 6 or 8 hex digits", s)
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
