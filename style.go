package shapestyle

import "fmt"

// Style is a fully parameterized, renderer-ready paint description.
// This is a sealed interface - only types in this package implement it.
//
// Supported variants:
//   - SolidStyle: a single color
//   - GradientStyle: a linear, radial or angular gradient
//   - PatternStyle: a tiled image
//   - ShaderStyle: a named shader invocation
//
// Every variant embeds Modifiers, so Mode and Prominence are available
// without a type switch.
type Style interface {
	// styleMarker is an unexported method that seals this interface.
	styleMarker()

	// Kind returns the variant tag.
	Kind() StyleKind

	// Mode returns the attached compositing operator.
	Mode() BlendMode

	// Prominence returns the visual weight in [0, 1].
	Prominence() float64
}

// StyleKind tags the Style variants.
type StyleKind uint8

const (
	StyleSolid StyleKind = iota
	StyleGradient
	StylePattern
	StyleShader
)

// String returns the variant name.
func (k StyleKind) String() string {
	switch k {
	case StyleSolid:
		return "solid"
	case StyleGradient:
		return "gradient"
	case StylePattern:
		return "pattern"
	case StyleShader:
		return "shader"
	default:
		return fmt.Sprintf("StyleKind(%d)", uint8(k))
	}
}

// Modifiers are applied by the renderer on top of the base paint.
type Modifiers struct {
	// Blend is the compositing operator against the backdrop.
	Blend BlendMode
	// Opacity scales the paint's alpha; 1 is full strength.
	Opacity float64
}

// Mode returns the attached blend mode.
func (m Modifiers) Mode() BlendMode { return m.Blend }

// Prominence returns the opacity clamped to [0, 1].
func (m Modifiers) Prominence() float64 { return clamp01(m.Opacity) }

func opaque(mode BlendMode) Modifiers {
	return Modifiers{Blend: mode, Opacity: 1}
}

// SolidStyle paints a single color.
type SolidStyle struct {
	Color RGBA
	Modifiers
}

// GradientStyle paints a gradient.
type GradientStyle struct {
	Gradient Gradient
	Modifiers
}

// PatternStyle tiles an image.
type PatternStyle struct {
	Pattern ImagePattern
	Modifiers
}

// ShaderStyle paints with a shader invocation.
type ShaderStyle struct {
	Invocation Invocation
	Modifiers
}

func (SolidStyle) styleMarker()    {}
func (GradientStyle) styleMarker() {}
func (PatternStyle) styleMarker()  {}
func (ShaderStyle) styleMarker()   {}

// Kind implements Style.
func (SolidStyle) Kind() StyleKind { return StyleSolid }

// Kind implements Style.
func (GradientStyle) Kind() StyleKind { return StyleGradient }

// Kind implements Style.
func (PatternStyle) Kind() StyleKind { return StylePattern }

// Kind implements Style.
func (ShaderStyle) Kind() StyleKind { return StyleShader }

// Solid returns an opaque, normally blended SolidStyle.
//
// Example:
//
//	s := shapestyle.Solid(shapestyle.SystemRed)
func Solid(c RGBA) SolidStyle {
	return SolidStyle{Color: c, Modifiers: opaque(BlendNormal)}
}

// ColorAt evaluates a paint-only style at (x, y) within bounds, including
// opacity. Shader styles need a renderer and report false.
func ColorAt(s Style, x, y float64, bounds Rect) (RGBA, bool) {
	switch s := s.(type) {
	case SolidStyle:
		return s.Color.WithAlpha(s.Prominence()), true
	case GradientStyle:
		return s.Gradient.ColorAt(x, y, bounds).WithAlpha(s.Prominence()), true
	case PatternStyle:
		return s.Pattern.ColorAt(x-bounds.Min.X, y-bounds.Min.Y).WithAlpha(s.Prominence()), true
	case ShaderStyle:
		return Transparent, false
	default:
		return Transparent, false
	}
}
