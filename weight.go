package shapestyle

import "fmt"

// Weight is an ordinal emphasis level. Primary is full strength; each
// following level is strictly less prominent than the one before.
type Weight uint8

const (
	WeightPrimary Weight = iota
	WeightSecondary
	WeightTertiary
	WeightQuaternary
	WeightQuinary
)

var (
	weightIDs       = []string{"primary", "secondary", "tertiary", "quaternary", "quinary"}
	weightLabels    = titleLabels(weightIDs)
	weightOpacities = []float64{1, 0.6, 0.4, 0.25, 0.12}
)

// Weights lists every Weight from most to least prominent.
var Weights = newCatalog("weight",
	WeightPrimary, WeightSecondary, WeightTertiary, WeightQuaternary, WeightQuinary)

// ID returns the stable identifier, or "" for an unknown value.
func (w Weight) ID() string {
	if !w.Valid() {
		return ""
	}
	return weightIDs[w]
}

// String returns the display label.
func (w Weight) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weight(%d)", uint8(w))
	}
	return weightLabels[w]
}

// Valid reports whether w is a member of the catalog.
func (w Weight) Valid() bool {
	return int(w) < len(weightIDs)
}

// Opacity returns the opacity factor of the level, or 0 for an unknown
// value.
func (w Weight) Opacity() float64 {
	if !w.Valid() {
		return 0
	}
	return weightOpacities[w]
}

// MarshalText implements encoding.TextMarshaler.
func (w Weight) MarshalText() ([]byte, error) {
	if !w.Valid() {
		return nil, invalidOrdinal(Weights.Name(), uint8(w))
	}
	return []byte(w.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Weight) UnmarshalText(text []byte) error {
	v, err := Weights.Parse(string(text))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// ApplyWeight returns s with its prominence reduced by the weight level.
// The variant and its base parameters are never changed: a gradient stays
// the same gradient, only its opacity drops. Primary returns s unchanged.
//
// Example:
//
//	dim, err := shapestyle.ApplyWeight(shapestyle.WeightQuaternary, shapestyle.Solid(shapestyle.SystemRed))
func ApplyWeight(w Weight, s Style) (Style, error) {
	if !w.Valid() {
		return nil, invalidOrdinal(Weights.Name(), uint8(w))
	}
	if s == nil {
		return nil, fmt.Errorf("shapestyle: cannot weight style %T", s)
	}
	if w == WeightPrimary {
		return s, nil
	}
	f := w.Opacity()
	switch s := s.(type) {
	case SolidStyle:
		s.Opacity *= f
		return s, nil
	case GradientStyle:
		s.Gradient = s.Gradient.clone()
		s.Opacity *= f
		return s, nil
	case PatternStyle:
		s.Opacity *= f
		return s, nil
	case ShaderStyle:
		s.Invocation = s.Invocation.clone()
		s.Opacity *= f
		return s, nil
	default:
		return nil, fmt.Errorf("shapestyle: cannot weight style %T", s)
	}
}

// Prominence reports the visual weight of s in [0, 1]: its opacity after
// any weight has been applied. A nil style has no weight.
func Prominence(s Style) float64 {
	if s == nil {
		return 0
	}
	return s.Prominence()
}
