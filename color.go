package barfont

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrBadColor is returned for a color string that is not #RGB, #RRGGBB
// or #AARRGGBB.
var ErrBadColor = errors.New("barfont: malformed color")

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

var _ color.Color = RGBA{}

// RGBA implements color.Color. The result is alpha-premultiplied.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp255(c.A*255+0.5)) * 0x101
	r = uint32(clamp255(c.R*c.A*255+0.5)) * 0x101
	g = uint32(clamp255(c.G*c.A*255+0.5)) * 0x101
	b = uint32(clamp255(c.B*c.A*255+0.5)) * 0x101
	return r, g, b, a
}

// Color converts RGBA to a color.NRGBA.
func (c RGBA) Color() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255 + 0.5)),
		G: uint8(clamp255(c.G*255 + 0.5)),
		B: uint8(clamp255(c.B*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)

// ParseHex parses a bar color string.
// Supported formats: "#RGB", "#RRGGBB" and "#AARRGGBB" with the alpha
// first. The leading '#' is optional.
func ParseHex(hex string) (RGBA, error) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // AARRGGBB
		ok = parseHex(hex[0:2], &a) && parseHex(hex[2:4], &r) &&
			parseHex(hex[4:6], &g) && parseHex(hex[6:8], &b)
	default:
		ok = false
	}
	if !ok {
		return Black, fmt.Errorf("%w: %q", ErrBadColor, "#"+hex)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// Hex is like ParseHex but returns opaque black for malformed input.
func Hex(hex string) RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// parseHex accumulates the hex digits of s into val.
// It reports false on a non-hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
