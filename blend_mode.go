package shapestyle

import "fmt"

// BlendMode is the compositing operator applied when a styled shape is
// layered over its backdrop.
//
// The first sixteen modes follow the W3C Compositing and Blending Level 1
// definitions; the remaining five are Porter-Duff operators and the two
// additive "plus" modes.
type BlendMode uint8

const (
	// BlendNormal paints the source over the backdrop.
	BlendNormal BlendMode = iota
	// BlendMultiply multiplies source and backdrop: S * D.
	BlendMultiply
	// BlendScreen complements the product of the complements.
	BlendScreen
	// BlendOverlay multiplies or screens depending on the backdrop.
	BlendOverlay
	// BlendDarken keeps the darker channel.
	BlendDarken
	// BlendLighten keeps the lighter channel.
	BlendLighten
	// BlendColorDodge brightens the backdrop to reflect the source.
	BlendColorDodge
	// BlendColorBurn darkens the backdrop to reflect the source.
	BlendColorBurn
	// BlendSoftLight darkens or lightens like a diffused spotlight.
	BlendSoftLight
	// BlendHardLight multiplies or screens depending on the source.
	BlendHardLight
	// BlendDifference subtracts the darker from the lighter channel.
	BlendDifference
	// BlendExclusion is a lower-contrast difference.
	BlendExclusion
	// BlendHue takes the hue of the source.
	BlendHue
	// BlendSaturation takes the saturation of the source.
	BlendSaturation
	// BlendColor takes hue and saturation of the source.
	BlendColor
	// BlendLuminosity takes the luminosity of the source.
	BlendLuminosity
	// BlendSourceAtop paints the source only where the backdrop is opaque.
	BlendSourceAtop
	// BlendDestinationOver paints the backdrop over the source.
	BlendDestinationOver
	// BlendDestinationOut erases the backdrop where the source is opaque.
	BlendDestinationOut
	// BlendPlusDarker adds complements: max(0, 1 - ((1-D) + (1-S))).
	BlendPlusDarker
	// BlendPlusLighter adds channels: min(1, S + D).
	BlendPlusLighter
)

// blendNames holds both the identifier and the hand-authored label of each
// mode; for blend modes the two coincide.
var blendNames = []string{
	"normal", "multiply", "screen", "overlay", "darken", "lighten",
	"colorDodge", "colorBurn", "softLight", "hardLight", "difference",
	"exclusion", "hue", "saturation", "color", "luminosity", "sourceAtop",
	"destinationOver", "destinationOut", "plusDarker", "plusLighter",
}

// BlendModes lists every BlendMode in declaration order.
var BlendModes = newCatalog("blend mode",
	BlendNormal, BlendMultiply, BlendScreen, BlendOverlay, BlendDarken,
	BlendLighten, BlendColorDodge, BlendColorBurn, BlendSoftLight,
	BlendHardLight, BlendDifference, BlendExclusion, BlendHue,
	BlendSaturation, BlendColor, BlendLuminosity, BlendSourceAtop,
	BlendDestinationOver, BlendDestinationOut, BlendPlusDarker,
	BlendPlusLighter,
)

// ID returns the stable identifier, or "" for an unknown value.
func (m BlendMode) ID() string {
	if !m.Valid() {
		return ""
	}
	return blendNames[m]
}

// String returns the display label.
func (m BlendMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("BlendMode(%d)", uint8(m))
	}
	return blendNames[m]
}

// Valid reports whether m is a member of the catalog.
func (m BlendMode) Valid() bool {
	return int(m) < len(blendNames)
}

// IsSeparable reports whether the mode blends each channel independently.
func (m BlendMode) IsSeparable() bool {
	return m >= BlendMultiply && m <= BlendExclusion
}

// IsNonSeparable reports whether the mode works on the whole RGB triplet
// (hue, saturation, color, luminosity).
func (m BlendMode) IsNonSeparable() bool {
	return m >= BlendHue && m <= BlendLuminosity
}

// MarshalText implements encoding.TextMarshaler.
func (m BlendMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, invalidOrdinal(BlendModes.Name(), uint8(m))
	}
	return []byte(m.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *BlendMode) UnmarshalText(text []byte) error {
	v, err := BlendModes.Parse(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
