package blend

import "github.com/gogpu/shapestyle"

// rgb is a straight (non-premultiplied) color triple.
type rgb struct {
	r, g, b float64
}

// tripleFunc is a non-separable blend function B(Cs, Cb).
type tripleFunc func(s, b rgb) rgb

var nonSeparableFuncs = map[shapestyle.BlendMode]tripleFunc{
	shapestyle.BlendHue:        hue,
	shapestyle.BlendSaturation: saturation,
	shapestyle.BlendColor:      color,
	shapestyle.BlendLuminosity: luminosity,
}

// nonSeparable lifts a triple function to a compositing function using the
// same general formula as separable modes.
func nonSeparable(blend tripleFunc) compositeFunc {
	return func(s, d premul) premul {
		if s.a == 0 {
			return d
		}
		if d.a == 0 {
			return s
		}
		cs := rgb{s.r / s.a, s.g / s.a, s.b / s.a}
		cb := rgb{d.r / d.a, d.g / d.a, d.b / d.a}
		m := blend(cs, cb)
		sd := s.a * d.a
		return premul{
			(1-s.a)*d.r + (1-d.a)*s.r + sd*m.r,
			(1-s.a)*d.g + (1-d.a)*s.g + sd*m.g,
			(1-s.a)*d.b + (1-d.a)*s.b + sd*m.b,
			s.a + d.a*(1-s.a),
		}
	}
}

// lum returns the luminance using BT.601 coefficients.
func lum(c rgb) float64 {
	return 0.30*c.r + 0.59*c.g + 0.11*c.b
}

// sat returns max - min of the components.
func sat(c rgb) float64 {
	return max(c.r, c.g, c.b) - min(c.r, c.g, c.b)
}

// clipColor brings components back into [0, 1] while preserving luminance.
func clipColor(c rgb) rgb {
	l := lum(c)
	n := min(c.r, c.g, c.b)
	x := max(c.r, c.g, c.b)
	if n < 0 {
		c = rgb{l + (c.r-l)*l/(l-n), l + (c.g-l)*l/(l-n), l + (c.b-l)*l/(l-n)}
	}
	if x > 1 {
		c = rgb{l + (c.r-l)*(1-l)/(x-l), l + (c.g-l)*(1-l)/(x-l), l + (c.b-l)*(1-l)/(x-l)}
	}
	return c
}

func setLum(c rgb, l float64) rgb {
	d := l - lum(c)
	return clipColor(rgb{c.r + d, c.g + d, c.b + d})
}

// setSat scales the components to saturation s, keeping their order.
// Gray input stays gray.
func setSat(c rgb, s float64) rgb {
	lo, mid, hi := sortRGB(&c.r, &c.g, &c.b)
	if *hi > *lo {
		*mid = (*mid - *lo) * s / (*hi - *lo)
		*hi = s
	} else {
		*mid, *hi = 0, 0
	}
	*lo = 0
	return c
}

// sortRGB returns pointers to the components ordered min, mid, max.
func sortRGB(r, g, b *float64) (lo, mid, hi *float64) {
	switch {
	case *r <= *g && *g <= *b:
		return r, g, b
	case *r <= *b && *b <= *g:
		return r, b, g
	case *b <= *r && *r <= *g:
		return b, r, g
	case *g <= *r && *r <= *b:
		return g, r, b
	case *g <= *b && *b <= *r:
		return g, b, r
	default:
		return b, g, r
	}
}

// Formula: SetLum(SetSat(Cs, Sat(Cb)), Lum(Cb))
func hue(s, b rgb) rgb { return setLum(setSat(s, sat(b)), lum(b)) }

// Formula: SetLum(SetSat(Cb, Sat(Cs)), Lum(Cb))
func saturation(s, b rgb) rgb { return setLum(setSat(b, sat(s)), lum(b)) }

// Formula: SetLum(Cs, Lum(Cb))
func color(s, b rgb) rgb { return setLum(s, lum(b)) }

// Formula: SetLum(Cb, Lum(Cs))
func luminosity(s, b rgb) rgb { return setLum(b, lum(s)) }
