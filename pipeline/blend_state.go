package pipeline

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/shapestyle"
)

// BlendState describes the color blending configuration.
type BlendState struct {
	// Color is the color blending configuration.
	Color BlendComponent

	// Alpha is the alpha blending configuration.
	Alpha BlendComponent
}

// BlendComponent describes a blend component (color or alpha).
type BlendComponent struct {
	// SrcFactor is the source blend factor.
	SrcFactor gputypes.BlendFactor

	// DstFactor is the destination blend factor.
	DstFactor gputypes.BlendFactor

	// Operation is the blend operation.
	Operation gputypes.BlendOperation
}

func add(src, dst gputypes.BlendFactor) BlendComponent {
	return BlendComponent{SrcFactor: src, DstFactor: dst, Operation: gputypes.BlendOperationAdd}
}

// fixedFunction lists the blend modes expressible as premultiplied
// fixed-function blending.
var fixedFunction = map[shapestyle.BlendMode]BlendState{
	shapestyle.BlendNormal: {
		Color: add(gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha),
		Alpha: add(gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha),
	},
	shapestyle.BlendSourceAtop: {
		Color: add(gputypes.BlendFactorDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha),
		Alpha: add(gputypes.BlendFactorZero, gputypes.BlendFactorOne),
	},
	shapestyle.BlendDestinationOver: {
		Color: add(gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOne),
		Alpha: add(gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOne),
	},
	shapestyle.BlendDestinationOut: {
		Color: add(gputypes.BlendFactorZero, gputypes.BlendFactorOneMinusSrcAlpha),
		Alpha: add(gputypes.BlendFactorZero, gputypes.BlendFactorOneMinusSrcAlpha),
	},
	shapestyle.BlendPlusLighter: {
		Color: add(gputypes.BlendFactorOne, gputypes.BlendFactorOne),
		Alpha: add(gputypes.BlendFactorOne, gputypes.BlendFactorOne),
	},
}

// BlendStateFor returns the fixed-function blend state for mode, assuming
// premultiplied source and target. It reports false for modes that need a
// blend shader reading the backdrop.
func BlendStateFor(mode shapestyle.BlendMode) (BlendState, bool) {
	s, ok := fixedFunction[mode]
	return s, ok
}

// NeedsBackdrop reports whether mode must be composited in a shader.
func NeedsBackdrop(mode shapestyle.BlendMode) bool {
	_, ok := fixedFunction[mode]
	return mode.Valid() && !ok
}
