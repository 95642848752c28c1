// Package blend composites straight-alpha colors with the blend modes of
// the shapestyle catalog.
//
// Colors are premultiplied internally. Separable and non-separable modes
// use the general formula
//
//	Co = (1 - Sa) * Cb + (1 - Ba) * Cs + Sa * Ba * B(Cs, Cb)
//
// from W3C Compositing and Blending Level 1. The Porter-Duff and plus
// operators use their own closed forms.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
//   - Porter-Duff: "Compositing Digital Images" (1984)
package blend

import "github.com/gogpu/shapestyle"

// premul is a premultiplied color.
type premul struct {
	r, g, b, a float64
}

func toPremul(c shapestyle.RGBA) premul {
	p := c.Premultiply()
	return premul{p.R, p.G, p.B, p.A}
}

func (p premul) straight() shapestyle.RGBA {
	return shapestyle.RGBA{R: p.r, G: p.g, B: p.b, A: p.a}.Unpremultiply()
}

// compositeFunc composites a premultiplied source over a premultiplied backdrop.
type compositeFunc func(s, d premul) premul

// Composite blends src onto dst with mode. Both colors and the result use
// straight alpha. Unknown modes fall back to normal.
func Composite(src, dst shapestyle.RGBA, mode shapestyle.BlendMode) shapestyle.RGBA {
	return funcFor(mode)(toPremul(src), toPremul(dst)).straight()
}

// Span composites src onto every color of dst in place. Coverage scales
// the source alpha per element and must be as long as dst, or nil for full
// coverage.
func Span(dst []shapestyle.RGBA, src shapestyle.RGBA, coverage []float64, mode shapestyle.BlendMode) {
	f := funcFor(mode)
	s := toPremul(src)
	for i := range dst {
		si := s
		if coverage != nil {
			cv := coverage[i]
			if cv <= 0 {
				continue
			}
			si = premul{s.r * cv, s.g * cv, s.b * cv, s.a * cv}
		}
		dst[i] = f(si, toPremul(dst[i])).straight()
	}
}

func funcFor(mode shapestyle.BlendMode) compositeFunc {
	switch mode {
	case shapestyle.BlendNormal:
		return sourceOver
	case shapestyle.BlendSourceAtop:
		return sourceAtop
	case shapestyle.BlendDestinationOver:
		return destinationOver
	case shapestyle.BlendDestinationOut:
		return destinationOut
	case shapestyle.BlendPlusDarker:
		return plusDarker
	case shapestyle.BlendPlusLighter:
		return plusLighter
	}
	switch {
	case mode.IsSeparable():
		if b, ok := separableFuncs[mode]; ok {
			return separable(b)
		}
	case mode.IsNonSeparable():
		if b, ok := nonSeparableFuncs[mode]; ok {
			return nonSeparable(b)
		}
	}
	return sourceOver
}
