package shapestyle

import (
	"errors"
	"fmt"
)

// ParamKind is the type of a bound shader argument.
type ParamKind uint8

const (
	// ParamFloat is a single float.
	ParamFloat ParamKind = iota
	// ParamFloat2 is a two-component vector.
	ParamFloat2
	// ParamColor is an RGBA color.
	ParamColor
)

// String returns the shading-language name of the kind.
func (k ParamKind) String() string {
	switch k {
	case ParamFloat:
		return "float"
	case ParamFloat2:
		return "float2"
	case ParamColor:
		return "color"
	default:
		return fmt.Sprintf("ParamKind(%d)", uint8(k))
	}
}

// Components returns the number of float components of the kind.
func (k ParamKind) Components() int {
	switch k {
	case ParamFloat:
		return 1
	case ParamFloat2:
		return 2
	case ParamColor:
		return 4
	default:
		return 0
	}
}

// Param is one positional, typed shader argument.
type Param struct {
	Kind ParamKind
	V    [4]float64
}

// Float binds a scalar.
func Float(v float64) Param {
	return Param{Kind: ParamFloat, V: [4]float64{v}}
}

// Float2 binds a two-component vector.
func Float2(x, y float64) Param {
	return Param{Kind: ParamFloat2, V: [4]float64{x, y}}
}

// ColorParam binds a straight-alpha color.
func ColorParam(c RGBA) Param {
	return Param{Kind: ParamColor, V: [4]float64{c.R, c.G, c.B, c.A}}
}

// Scalar returns the first component.
func (p Param) Scalar() float64 { return p.V[0] }

// Vec2 returns the first two components.
func (p Param) Vec2() Point { return Point{X: p.V[0], Y: p.V[1]} }

// Color returns the four components as a color.
func (p Param) Color() RGBA { return RGBA{R: p.V[0], G: p.V[1], B: p.V[2], A: p.V[3]} }

// String formats the parameter the way a shading language literal reads.
func (p Param) String() string {
	switch p.Kind {
	case ParamFloat:
		return fmt.Sprintf("float(%g)", p.V[0])
	case ParamFloat2:
		return fmt.Sprintf("float2(%g, %g)", p.V[0], p.V[1])
	case ParamColor:
		return fmt.Sprintf("color(%g, %g, %g, %g)", p.V[0], p.V[1], p.V[2], p.V[3])
	default:
		return p.Kind.String()
	}
}

// EffectKind says how the renderer applies a shader to its surface.
type EffectKind uint8

const (
	// EffectFill uses the shader output as the surface's fill color.
	EffectFill EffectKind = iota
	// EffectColor maps each existing surface pixel to a new color.
	EffectColor
	// EffectLayer samples the rasterized surface at arbitrary offsets.
	EffectLayer
	// EffectDistortion maps each destination position to a source position.
	EffectDistortion
)

// String returns the effect name.
func (k EffectKind) String() string {
	switch k {
	case EffectFill:
		return "fill"
	case EffectColor:
		return "color"
	case EffectLayer:
		return "layer"
	case EffectDistortion:
		return "distortion"
	default:
		return fmt.Sprintf("EffectKind(%d)", uint8(k))
	}
}

// SurfaceKind is the content a shader effect is attached to.
type SurfaceKind uint8

const (
	// SurfaceRectangle is a filled square.
	SurfaceRectangle SurfaceKind = iota
	// SurfaceCircle is a filled circle inscribed in the viewport.
	SurfaceCircle
	// SurfaceText is a line of heavy display text.
	SurfaceText
	// SurfaceImage is a named sample image.
	SurfaceImage
)

// Surface names what the effect is painted onto.
type Surface struct {
	Kind  SurfaceKind
	Text  string // SurfaceText only
	Image string // SurfaceImage only
}

// Sample image names referenced by surfaces and the fill pattern.
const (
	ImageWaimea = "waimea6"
	ImagePuyo   = "puyo"
	ImageNasa   = "nasa"
)

// Invocation is a named shader plus its bound arguments. It is a plain
// value handed to a renderer; nothing here executes pixel code.
type Invocation struct {
	Program         string
	Effect          EffectKind
	Params          []Param
	MaxSampleOffset Size
	Surface         Surface
}

// Program names.
const (
	ProgramMix               = "mix"
	ProgramBilinear          = "bilinear"
	ProgramColorize          = "colorize"
	ProgramRipple            = "ripple"
	ProgramChannelOffset     = "channelOffset"
	ProgramVoronoi           = "voronoi"
	ProgramVoronoiManhattan  = "voronoiManhattan"
	ProgramTruchetQuadLine   = "truchetQuadLine"
	ProgramTruchetQuadCircle = "truchetQuadCircle"
)

var programSignatures = map[string][]ParamKind{
	ProgramMix:               {ParamColor, ParamColor, ParamFloat, ParamFloat},
	ProgramBilinear:          {ParamFloat2},
	ProgramColorize:          {ParamColor},
	ProgramRipple:            {ParamFloat2, ParamFloat2, ParamFloat, ParamFloat},
	ProgramChannelOffset:     {ParamFloat2, ParamFloat2, ParamFloat2},
	ProgramVoronoi:           {ParamFloat2, ParamFloat},
	ProgramVoronoiManhattan:  {ParamFloat2, ParamFloat},
	ProgramTruchetQuadLine:   {ParamFloat2, ParamFloat},
	ProgramTruchetQuadCircle: {ParamFloat2, ParamFloat},
}

// ProgramSignature returns the fixed parameter kinds of a program.
func ProgramSignature(program string) ([]ParamKind, bool) {
	sig, ok := programSignatures[program]
	if !ok {
		return nil, false
	}
	return append([]ParamKind(nil), sig...), true
}

// ErrSignatureMismatch is returned when an invocation's arguments do not
// match its program's declared parameters.
var ErrSignatureMismatch = errors.New("shapestyle: shader signature mismatch")

// Validate checks the arguments against the program signature.
func (inv Invocation) Validate() error {
	sig, ok := programSignatures[inv.Program]
	if !ok {
		return fmt.Errorf("%w: unknown program %q", ErrSignatureMismatch, inv.Program)
	}
	if len(sig) != len(inv.Params) {
		return fmt.Errorf("%w: %s takes %d arguments, got %d",
			ErrSignatureMismatch, inv.Program, len(sig), len(inv.Params))
	}
	for i, kind := range sig {
		if inv.Params[i].Kind != kind {
			return fmt.Errorf("%w: %s argument %d is %s, want %s",
				ErrSignatureMismatch, inv.Program, i, inv.Params[i].Kind, kind)
		}
	}
	return nil
}

// clone returns a copy that shares no parameter storage with inv.
func (inv Invocation) clone() Invocation {
	inv.Params = append([]Param(nil), inv.Params...)
	return inv
}
