// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"fmt"
	"math"

	"github.com/gogpu/shapestyle"
)

// program is the CPU version of one WGSL program. Exactly one stage is
// set, matching the effect the program is written for.
type program struct {
	// color maps a surface pixel to a new color (fill and color effects).
	color func(pos shapestyle.Point, src shapestyle.RGBA, p []shapestyle.Param) shapestyle.RGBA
	// layer computes a pixel from arbitrary surface samples.
	layer func(pos shapestyle.Point, src *Layer, p []shapestyle.Param) shapestyle.RGBA
	// distort maps a destination position to a source position.
	distort func(pos shapestyle.Point, p []shapestyle.Param) shapestyle.Point
}

var programs = map[string]program{
	shapestyle.ProgramMix:               {color: mixProgram},
	shapestyle.ProgramBilinear:          {color: bilinearProgram},
	shapestyle.ProgramColorize:          {color: colorizeProgram},
	shapestyle.ProgramRipple:            {distort: rippleProgram},
	shapestyle.ProgramChannelOffset:     {layer: channelOffsetProgram},
	shapestyle.ProgramVoronoi:           {color: voronoiProgram(euclidean)},
	shapestyle.ProgramVoronoiManhattan:  {color: voronoiProgram(manhattan)},
	shapestyle.ProgramTruchetQuadLine:   {color: truchetProgram(quadLine)},
	shapestyle.ProgramTruchetQuadCircle: {color: truchetProgram(quadCircle)},
}

// Run executes an invocation over a surface layer and returns the output
// layer. Positions are pixel centers in surface coordinates.
func Run(inv shapestyle.Invocation, surface *Layer) (*Layer, error) {
	if err := inv.Validate(); err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	prog, ok := programs[inv.Program]
	if !ok {
		return nil, fmt.Errorf("preview: no CPU program for %q", inv.Program)
	}
	out := NewLayer(surface.W, surface.H)
	for y := 0; y < surface.H; y++ {
		for x := 0; x < surface.W; x++ {
			pos := shapestyle.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			var c shapestyle.RGBA
			switch inv.Effect {
			case shapestyle.EffectFill, shapestyle.EffectColor:
				if prog.color == nil {
					return nil, effectMismatch(inv)
				}
				c = prog.color(pos, surface.At(x, y), inv.Params)
			case shapestyle.EffectLayer:
				if prog.layer == nil {
					return nil, effectMismatch(inv)
				}
				c = prog.layer(pos, surface, inv.Params)
			case shapestyle.EffectDistortion:
				if prog.distort == nil {
					return nil, effectMismatch(inv)
				}
				c = surface.Sample(prog.distort(pos, inv.Params))
			default:
				return nil, effectMismatch(inv)
			}
			out.Pix[y*out.W+x] = c
		}
	}
	return out, nil
}

func effectMismatch(inv shapestyle.Invocation) error {
	return fmt.Errorf("preview: program %s does not support the %s effect", inv.Program, inv.Effect)
}

func mixRGBA(a, b shapestyle.RGBA, t float64) shapestyle.RGBA {
	return a.Lerp(b, t)
}

func luma(c shapestyle.RGBA) float64 {
	return 0.30*c.R + 0.59*c.G + 0.11*c.B
}

func fract(v float64) float64 {
	return v - math.Floor(v)
}

func smoothstep(e0, e1, x float64) float64 {
	t := clampUnit((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

func mixProgram(pos shapestyle.Point, src shapestyle.RGBA, p []shapestyle.Param) shapestyle.RGBA {
	phase := 2*math.Pi*p[3].Scalar()*p[2].Scalar() + pos.X*0.02
	amount := 0.5 + 0.5*math.Sin(phase)
	c := mixRGBA(p[0].Color(), p[1].Color(), amount)
	return c.WithAlpha(src.A)
}

// Corner colors: red top-left, green top-right, blue bottom-left,
// yellow bottom-right.
func bilinearProgram(pos shapestyle.Point, src shapestyle.RGBA, p []shapestyle.Param) shapestyle.RGBA {
	size := p[0].Vec2()
	u := clampUnit(pos.X / size.X)
	v := clampUnit(pos.Y / size.Y)
	top := mixRGBA(shapestyle.RGB(1, 0, 0), shapestyle.RGB(0, 1, 0), u)
	bottom := mixRGBA(shapestyle.RGB(0, 0, 1), shapestyle.RGB(1, 1, 0), u)
	c := mixRGBA(top, bottom, v)
	c.A = src.A
	return c
}

func colorizeProgram(_ shapestyle.Point, src shapestyle.RGBA, p []shapestyle.Param) shapestyle.RGBA {
	if src.A <= 0 {
		return shapestyle.Transparent
	}
	tint := p[0].Color()
	l := luma(src)
	return shapestyle.RGBA{R: tint.R * l, G: tint.G * l, B: tint.B * l, A: src.A}
}

func rippleProgram(pos shapestyle.Point, p []shapestyle.Param) shapestyle.Point {
	size := p[0].Vec2()
	origin := p[1].Vec2()
	amplitude := p[2].Scalar()
	t := p[3].Scalar()

	dx := pos.X - origin.X*size.X
	dy := pos.Y - origin.Y*size.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return pos
	}
	falloff := math.Exp(-dist / math.Max(size.X, size.Y))
	wave := math.Sin(dist*0.06+t*5) * amplitude * falloff
	return shapestyle.Point{X: pos.X + dx/dist*wave, Y: pos.Y + dy/dist*wave}
}

func channelOffsetProgram(pos shapestyle.Point, src *Layer, p []shapestyle.Param) shapestyle.RGBA {
	at := func(off shapestyle.Point) shapestyle.RGBA {
		return src.Sample(shapestyle.Point{X: pos.X + off.X, Y: pos.Y + off.Y})
	}
	r := at(p[0].Vec2())
	g := at(p[1].Vec2())
	b := at(p[2].Vec2())
	return shapestyle.RGBA{R: r.R, G: g.G, B: b.B, A: math.Max(r.A, math.Max(g.A, b.A))}
}

type metric func(dx, dy float64) float64

func euclidean(dx, dy float64) float64 { return math.Hypot(dx, dy) }
func manhattan(dx, dy float64) float64 { return math.Abs(dx) + math.Abs(dy) }

// voronoiCell is the cell size in pixels.
const voronoiCell = 48.0

func voronoiProgram(dist metric) func(shapestyle.Point, shapestyle.RGBA, []shapestyle.Param) shapestyle.RGBA {
	return func(pos shapestyle.Point, src shapestyle.RGBA, p []shapestyle.Param) shapestyle.RGBA {
		t := p[1].Scalar()
		px, py := pos.X/voronoiCell, pos.Y/voronoiCell
		bx, by := math.Floor(px), math.Floor(py)
		best, bestID := 8.0, 0.0
		for j := -1; j <= 1; j++ {
			for i := -1; i <= 1; i++ {
				cx, cy := bx+float64(i), by+float64(j)
				h := hash21(cx, cy)
				fx := cx + 0.5 + 0.4*math.Sin(t+2*math.Pi*h)
				fy := cy + 0.5 + 0.4*math.Cos(t+2*math.Pi*h)
				if d := dist(px-fx, py-fy); d < best {
					best, bestID = d, h
				}
			}
		}
		shade := clampUnit(1 - 0.6*best)
		tone := func(off float64) float64 {
			return (0.5 + 0.5*math.Cos(2*math.Pi*(bestID+off))) * shade
		}
		return shapestyle.RGBA{R: tone(0), G: tone(0.33), B: tone(0.67), A: src.A}
	}
}

type tileShape func(u, v float64) float64

func quadLine(u, v float64) float64 { return math.Abs(u-v) * 0.70710678 }

func quadCircle(u, v float64) float64 {
	return math.Min(
		math.Abs(math.Hypot(u, v)-0.5),
		math.Abs(math.Hypot(u-1, v-1)-0.5),
	)
}

// truchetTile is the tile size in pixels.
const truchetTile = 40.0

var (
	truchetBackground = shapestyle.RGB(0.69, 0.32, 0.87)
	truchetInk        = shapestyle.RGB(1, 0.8, 0)
)

func truchetProgram(shape tileShape) func(shapestyle.Point, shapestyle.RGBA, []shapestyle.Param) shapestyle.RGBA {
	return func(pos shapestyle.Point, src shapestyle.RGBA, p []shapestyle.Param) shapestyle.RGBA {
		t := p[1].Scalar()
		px, py := pos.X/truchetTile, pos.Y/truchetTile
		cx, cy := math.Floor(px), math.Floor(py)
		u, v := fract(px), fract(py)
		epoch := math.Floor(t * 0.5)
		if hash21(cx+epoch, cy+epoch) > 0.5 {
			u = 1 - u
		}
		stroke := 1 - smoothstep(0.06, 0.1, shape(u, v))
		c := mixRGBA(truchetBackground, truchetInk, stroke)
		c.A = src.A
		return c
	}
}
