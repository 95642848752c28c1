package shapestyle

import (
	"fmt"
	"math"
)

// Tuning constants bound by the shader catalog.
const (
	MixRate            = 0.1
	RippleOrigin       = 0.15
	RippleAmplitude    = 20.0
	ChannelOffsetRange = 5.0
)

// Text drawn by the text-surface shaders.
const (
	MixText     = "INTERPOLATE"
	VoronoiText = "VORNOI"
	TruchetText = "TRUCHET"
)

// Resolver maps catalog selections to styles.
//
// A Resolver holds no per-selection state; every method is a pure function
// of its arguments plus the configured pattern and clock. It is safe for
// concurrent use.
type Resolver struct {
	pattern ImagePattern
	clock   *Clock
	extend  ExtendMode
}

// NewResolver creates a resolver.
func NewResolver(opts ...ResolverOption) *Resolver {
	o := defaultResolverOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = NewClock()
	}
	return &Resolver{
		pattern: ImagePattern{Image: o.patternImage, Scale: o.patternScale},
		clock:   o.clock,
		extend:  o.extend,
	}
}

// Clock returns the animation clock used by ResolveFrame.
func (r *Resolver) Clock() *Clock { return r.clock }

// Pattern returns the image pattern used by FillImage.
func (r *Resolver) Pattern() ImagePattern { return r.pattern }

// ResolveFill maps a fill kind to its base paint and attaches the blend
// mode unchanged.
func (r *Resolver) ResolveFill(fill FillKind, mode BlendMode) (Style, error) {
	if !mode.Valid() {
		return nil, rejected(invalidOrdinal(BlendModes.Name(), uint8(mode)))
	}
	switch fill {
	case FillRed:
		return SolidStyle{Color: SystemRed, Modifiers: opaque(mode)}, nil
	case FillBlue:
		return SolidStyle{Color: SystemBlue, Modifiers: opaque(mode)}, nil
	case FillImage:
		return PatternStyle{Pattern: r.pattern, Modifiers: opaque(mode)}, nil
	default:
		return nil, rejected(invalidOrdinal(Fills.Name(), uint8(fill)))
	}
}

// FillSelection is one side of the blends page.
type FillSelection struct {
	Fill  FillKind
	Blend BlendMode
}

// ResolvePair resolves both circles of the blends page.
// Either side failing fails the pair; no partial result is returned.
func (r *Resolver) ResolvePair(left, right FillSelection) (Style, Style, error) {
	l, err := r.ResolveFill(left.Fill, left.Blend)
	if err != nil {
		return nil, nil, fmt.Errorf("left: %w", err)
	}
	rs, err := r.ResolveFill(right.Fill, right.Blend)
	if err != nil {
		return nil, nil, fmt.Errorf("right: %w", err)
	}
	return l, rs, nil
}

// ResolveColorItem maps a color item to its style. Gradient items bind
// fixed geometry and the shared six-color stops.
func (r *Resolver) ResolveColorItem(item ColorItemKind) (Style, error) {
	switch item {
	case ColorRed:
		return Solid(SystemRed), nil
	case ColorLinearGradient:
		return r.gradientStyle(Gradient{
			Kind:  GradientLinear,
			Start: UnitLeading,
			End:   UnitTrailing,
		}), nil
	case ColorRadialGradient:
		return r.gradientStyle(Gradient{
			Kind:        GradientRadial,
			Center:      UnitCenter,
			StartRadius: RadialStartRadius,
			EndRadius:   RadialEndRadius,
		}), nil
	case ColorAngularGradient:
		return r.gradientStyle(Gradient{
			Kind:       GradientAngular,
			Center:     UnitCenter,
			StartAngle: 0,
			EndAngle:   2 * math.Pi,
		}), nil
	default:
		return nil, rejected(invalidOrdinal(ColorItems.Name(), uint8(item)))
	}
}

func (r *Resolver) gradientStyle(g Gradient) GradientStyle {
	g.Stops = SixColorStops()
	g.Extend = r.extend
	return GradientStyle{Gradient: g, Modifiers: opaque(BlendNormal)}
}

// ResolveWeighted resolves a color item and applies the weight level.
func (r *Resolver) ResolveWeighted(item ColorItemKind, w Weight) (Style, error) {
	s, err := r.ResolveColorItem(item)
	if err != nil {
		return nil, err
	}
	return ApplyWeight(w, s)
}

// ResolveShader binds the shader's fixed parameter list for elapsed time t
// and the given viewport.
//
// The viewport is required for every kind, including those that do not
// bind it, because the result is only meaningful for a laid-out target.
// An empty viewport fails with ErrMissingRenderContext.
func (r *Resolver) ResolveShader(kind ShaderKind, t float64, viewport Size) (Style, error) {
	if !kind.Valid() {
		return nil, rejected(invalidOrdinal(ShaderKinds.Name(), uint8(kind)))
	}
	if viewport.Empty() {
		Logger().Warn("shader resolved without render context", "shader", kind.ID())
		return nil, fmt.Errorf("%w: shader %s", ErrMissingRenderContext, kind.ID())
	}

	size := Float2(viewport.W, viewport.H)
	animated := func(program string, surface Surface) Invocation {
		return Invocation{
			Program: program,
			Effect:  EffectColor,
			Params:  []Param{size, Float(t)},
			Surface: surface,
		}
	}
	rect := Surface{Kind: SurfaceRectangle}

	var inv Invocation
	switch kind {
	case ShaderMix:
		inv = Invocation{
			Program: ProgramMix,
			Effect:  EffectFill,
			Params: []Param{
				ColorParam(SystemYellow),
				ColorParam(SystemPurple),
				Float(t),
				Float(MixRate),
			},
			Surface: Surface{Kind: SurfaceText, Text: MixText},
		}
	case ShaderBilinear:
		inv = Invocation{
			Program: ProgramBilinear,
			Effect:  EffectColor,
			Params:  []Param{size},
			Surface: Surface{Kind: SurfaceCircle},
		}
	case ShaderColorize:
		inv = Invocation{
			Program: ProgramColorize,
			Effect:  EffectColor,
			Params:  []Param{ColorParam(SystemYellow)},
			Surface: Surface{Kind: SurfaceImage, Image: ImagePuyo},
		}
	case ShaderRipple:
		inv = Invocation{
			Program: ProgramRipple,
			Effect:  EffectDistortion,
			Params: []Param{
				size,
				Float2(RippleOrigin, RippleOrigin),
				Float(RippleAmplitude),
				Float(t),
			},
			Surface: Surface{Kind: SurfaceImage, Image: ImagePuyo},
		}
	case ShaderChannelOffset:
		red := Oscillation(ChannelOffsetRange, t)
		opposite := Oscillation(ChannelOffsetRange, t+math.Pi)
		inv = Invocation{
			Program: ProgramChannelOffset,
			Effect:  EffectLayer,
			Params: []Param{
				Float2(red.X, red.Y),
				Float2(opposite.X, opposite.Y),
				Float2(opposite.X, opposite.Y),
			},
			Surface: Surface{Kind: SurfaceImage, Image: ImageNasa},
		}
	case ShaderVoronoi:
		inv = animated(ProgramVoronoi, rect)
	case ShaderVoronoiManhattan:
		inv = animated(ProgramVoronoiManhattan, rect)
	case ShaderVoronoiText:
		inv = animated(ProgramVoronoi, Surface{Kind: SurfaceText, Text: VoronoiText})
	case ShaderTruchetQuadCircleText:
		inv = animated(ProgramTruchetQuadCircle, Surface{Kind: SurfaceText, Text: TruchetText})
	case ShaderTruchetQuadLine:
		inv = animated(ProgramTruchetQuadLine, rect)
	case ShaderTruchetQuadCircle:
		inv = animated(ProgramTruchetQuadCircle, rect)
	default:
		return nil, rejected(invalidOrdinal(ShaderKinds.Name(), uint8(kind)))
	}
	return ShaderStyle{Invocation: inv, Modifiers: opaque(BlendNormal)}, nil
}

// ResolveFrame samples the clock and the target's current size, then
// resolves the shader. Call it once per frame; results are never cached
// because both inputs change between frames.
func (r *Resolver) ResolveFrame(kind ShaderKind, target RenderTarget) (Style, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: no render target", ErrMissingRenderContext)
	}
	size, ok := target.Viewport()
	if !ok {
		return nil, fmt.Errorf("%w: render target not laid out", ErrMissingRenderContext)
	}
	return r.ResolveShader(kind, r.clock.Elapsed(), size)
}

// rejected logs a selection error at debug level and returns it.
func rejected(err error) error {
	Logger().Debug("rejected selection", "err", err)
	return err
}
