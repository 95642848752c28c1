package shapestyle

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a straight-alpha color with red, green, blue, and alpha
// components. Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255 + 0.5)),
		G: uint8(clamp255(c.G*255 + 0.5)),
		B: uint8(clamp255(c.B*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// FromColor converts a standard color.Color to straight-alpha RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RRGGBB", "RRGGBBAA", with optional '#' prefix.
// Malformed input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	alpha := 1.0
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 8:
		var a uint8
		for i := 6; i < 8; i++ {
			v, ok := hexDigit(hex[i])
			if !ok {
				return RGB(0, 0, 0)
			}
			a = a<<4 | v
		}
		alpha = float64(a) / 255
		hex = hex[:6]
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return RGB(0, 0, 0)
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Premultiply returns a premultiplied color.
func (c RGBA) Premultiply() RGBA {
	return RGBA{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// Unpremultiply returns an unpremultiplied color.
func (c RGBA) Unpremultiply() RGBA {
	if c.A == 0 {
		return RGBA{}
	}
	return RGBA{
		R: c.R / c.A,
		G: c.G / c.A,
		B: c.B / c.A,
		A: c.A,
	}
}

// WithAlpha returns the color with its alpha scaled by factor.
func (c RGBA) WithAlpha(factor float64) RGBA {
	c.A = clamp01(c.A * factor)
	return c
}

// Lerp performs linear interpolation between two colors in sRGB space.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// LerpLinear interpolates between two colors in linear RGB, which keeps
// gradient midpoints from going muddy. Alpha is interpolated linearly.
func (c RGBA) LerpLinear(other RGBA, t float64) RGBA {
	r1, g1, b1 := colorful.Color{R: c.R, G: c.G, B: c.B}.LinearRgb()
	r2, g2, b2 := colorful.Color{R: other.R, G: other.G, B: other.B}.LinearRgb()
	m := colorful.LinearRgb(r1+(r2-r1)*t, g1+(g2-g1)*t, b1+(b2-b1)*t).Clamped()
	return RGBA{R: m.R, G: m.G, B: m.B, A: c.A + (other.A-c.A)*t}
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

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)

// System colors used by the catalogs. They match the platform palette the
// showcase was designed against.
var (
	SystemRed    = Hex("#FF3B30")
	SystemBlue   = Hex("#007AFF")
	SystemYellow = Hex("#FFCC00")
	SystemPurple = Hex("#AF52DE")
)
