// Package shapestyle resolves style selections into renderer-ready paint
// descriptions.
//
// # Overview
//
// shapestyle is the catalog engine behind a shape-style showcase: the user
// picks a fill, a blend mode, a color item, an emphasis weight or a named
// shader effect, and the engine produces a fully parameterized [Style] that
// a renderer can paint directly. The engine never rasterizes anything
// itself; see the preview package for a software renderer and the pipeline
// package for GPU program descriptions.
//
// # Quick Start
//
//	r := shapestyle.NewResolver()
//
//	// Blend page: red circle multiplied over the backdrop
//	left, err := r.ResolveFill(shapestyle.FillRed, shapestyle.BlendMultiply)
//
//	// Colors page: radial gradient at tertiary emphasis
//	grad, _ := r.ResolveColorItem(shapestyle.ColorRadialGradient)
//	dimmed, _ := shapestyle.ApplyWeight(shapestyle.WeightTertiary, grad)
//
//	// Shaders page: ripple bound for the current frame
//	ripple, err := r.ResolveShader(shapestyle.ShaderRipple, r.Clock().Elapsed(),
//	    shapestyle.Size{W: 300, H: 300})
//
// # Catalogs
//
// Every option set is a closed enumeration with a stable identifier
// ([FillKind.ID]) and a display label ([FillKind.String]). The package-level
// catalogs ([Fills], [BlendModes], [ColorItems], [Weights], [ShaderKinds],
// [Pages]) list variants in declaration order and parse identifiers back.
// Identifiers that match no variant fail with [ErrInvalidSelection].
//
// # Styles
//
// [Style] is a sealed interface. Its variants are [SolidStyle],
// [GradientStyle], [PatternStyle] and [ShaderStyle]; each carries
// [Modifiers] with the attached blend mode and opacity. Consumers switch
// over the concrete type:
//
//	switch s := style.(type) {
//	case shapestyle.SolidStyle:
//	case shapestyle.GradientStyle:
//	case shapestyle.PatternStyle:
//	case shapestyle.ShaderStyle:
//	}
//
// # Animation
//
// Time-dependent shaders consume a scalar sampled from a [Clock] once per
// frame. Styles for shaders are re-derived every frame, never cached.
//
// # Coordinate System
//
// Gradient geometry uses unit points relative to the painted bounds:
//   - (0, 0) is the top-left corner, (1, 1) the bottom-right
//   - Radii are absolute, in points
//   - Angles in radians, 0 is right, increasing clockwise on screen
package shapestyle

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
