package shapestyle

import "fmt"

// ShaderKind selects a named pixel-shader effect and its parameter binding.
type ShaderKind uint8

const (
	// ShaderMix interpolates two colors over time as a text foreground.
	ShaderMix ShaderKind = iota
	// ShaderBilinear shades by normalized position.
	ShaderBilinear
	// ShaderColorize tints an image.
	ShaderColorize
	// ShaderRipple distorts an image with an expanding ring.
	ShaderRipple
	// ShaderChannelOffset splits color channels along rotating offsets.
	ShaderChannelOffset
	// ShaderVoronoi draws animated Euclidean Voronoi cells.
	ShaderVoronoi
	// ShaderVoronoiManhattan draws animated Manhattan-distance cells.
	ShaderVoronoiManhattan
	// ShaderVoronoiText fills text with Voronoi cells.
	ShaderVoronoiText
	// ShaderTruchetQuadCircleText fills text with quarter-circle Truchet tiles.
	ShaderTruchetQuadCircleText
	// ShaderTruchetQuadLine draws diagonal-line Truchet tiles.
	ShaderTruchetQuadLine
	// ShaderTruchetQuadCircle draws quarter-circle Truchet tiles.
	ShaderTruchetQuadCircle
)

var (
	shaderIDs = []string{
		"mix", "bilinear", "colorize", "ripple", "channelOffset", "voronoi",
		"voronoiManhattan", "voronoiText", "truchetQuadCircleText",
		"truchetQuadLine", "truchetQuadCircle",
	}
	shaderLabels = titleLabels(shaderIDs)
)

// ShaderKinds lists every ShaderKind in declaration order.
// Parse also accepts the "vornoi" spellings written by earlier releases.
var ShaderKinds = newCatalog("shader",
	ShaderMix, ShaderBilinear, ShaderColorize, ShaderRipple,
	ShaderChannelOffset, ShaderVoronoi, ShaderVoronoiManhattan,
	ShaderVoronoiText, ShaderTruchetQuadCircleText, ShaderTruchetQuadLine,
	ShaderTruchetQuadCircle,
).
	withAlias("vornoi", ShaderVoronoi).
	withAlias("vornoiManhattan", ShaderVoronoiManhattan).
	withAlias("vornoiText", ShaderVoronoiText)

// ID returns the stable identifier, or "" for an unknown value.
func (k ShaderKind) ID() string {
	if !k.Valid() {
		return ""
	}
	return shaderIDs[k]
}

// String returns the display label.
func (k ShaderKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("ShaderKind(%d)", uint8(k))
	}
	return shaderLabels[k]
}

// Valid reports whether k is a member of the catalog.
func (k ShaderKind) Valid() bool {
	return int(k) < len(shaderIDs)
}

// Animated reports whether the shader binds a time sample.
func (k ShaderKind) Animated() bool {
	switch k {
	case ShaderBilinear, ShaderColorize:
		return false
	}
	return k.Valid()
}

// MarshalText implements encoding.TextMarshaler.
func (k ShaderKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, invalidOrdinal(ShaderKinds.Name(), uint8(k))
	}
	return []byte(k.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ShaderKind) UnmarshalText(text []byte) error {
	v, err := ShaderKinds.Parse(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
