package blend

import (
	"math"

	"github.com/gogpu/shapestyle"
)

// channelFunc is a separable blend function B(Cs, Cb) on straight channels.
type channelFunc func(s, b float64) float64

var separableFuncs = map[shapestyle.BlendMode]channelFunc{
	shapestyle.BlendMultiply:   multiply,
	shapestyle.BlendScreen:     screen,
	shapestyle.BlendOverlay:    overlay,
	shapestyle.BlendDarken:     math.Min,
	shapestyle.BlendLighten:    math.Max,
	shapestyle.BlendColorDodge: colorDodge,
	shapestyle.BlendColorBurn:  colorBurn,
	shapestyle.BlendSoftLight:  softLight,
	shapestyle.BlendHardLight:  hardLight,
	shapestyle.BlendDifference: difference,
	shapestyle.BlendExclusion:  exclusion,
}

// separable lifts a channel function to a compositing function.
// Formula: (1 - Sa) * D + (1 - Da) * S + Sa * Da * B(Cs, Cb)
func separable(blend channelFunc) compositeFunc {
	return func(s, d premul) premul {
		if s.a == 0 {
			return d
		}
		if d.a == 0 {
			return s
		}
		ch := func(sc, dc float64) float64 {
			return (1-s.a)*dc + (1-d.a)*sc + s.a*d.a*blend(sc/s.a, dc/d.a)
		}
		return premul{
			ch(s.r, d.r),
			ch(s.g, d.g),
			ch(s.b, d.b),
			s.a + d.a*(1-s.a),
		}
	}
}

// Formula: Cs * Cb
func multiply(s, b float64) float64 { return s * b }

// Formula: Cs + Cb - Cs * Cb
func screen(s, b float64) float64 { return s + b - s*b }

// overlay is HardLight with the layers swapped.
func overlay(s, b float64) float64 { return hardLight(b, s) }

// Formula: Multiply(Cb, 2*Cs) if Cs <= 0.5, else Screen(Cb, 2*Cs - 1)
func hardLight(s, b float64) float64 {
	if s <= 0.5 {
		return multiply(b, 2*s)
	}
	return screen(b, 2*s-1)
}

func colorDodge(s, b float64) float64 {
	switch {
	case b == 0:
		return 0
	case s >= 1:
		return 1
	default:
		return math.Min(1, b/(1-s))
	}
}

func colorBurn(s, b float64) float64 {
	switch {
	case b >= 1:
		return 1
	case s <= 0:
		return 0
	default:
		return 1 - math.Min(1, (1-b)/s)
	}
}

func softLight(s, b float64) float64 {
	if s <= 0.5 {
		return b - (1-2*s)*b*(1-b)
	}
	var dx float64
	if b <= 0.25 {
		dx = ((16*b-12)*b + 4) * b
	} else {
		dx = math.Sqrt(b)
	}
	return b + (2*s-1)*(dx-b)
}

func difference(s, b float64) float64 { return math.Abs(s - b) }

// Formula: Cs + Cb - 2 * Cs * Cb
func exclusion(s, b float64) float64 { return s + b - 2*s*b }
