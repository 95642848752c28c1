package shapestyle

import "fmt"

// ColorItemKind selects a color-producing style on the colors page.
type ColorItemKind uint8

const (
	// ColorRed is the solid system red.
	ColorRed ColorItemKind = iota
	// ColorLinearGradient runs the six colors from leading to trailing.
	ColorLinearGradient
	// ColorRadialGradient radiates the six colors from the center.
	ColorRadialGradient
	// ColorAngularGradient sweeps the six colors around the center.
	ColorAngularGradient
)

var (
	colorItemIDs    = []string{"red", "linearGradient", "radialGradient", "angularGradient"}
	colorItemLabels = titleLabels(colorItemIDs)
)

// ColorItems lists every ColorItemKind in declaration order.
var ColorItems = newCatalog("color item",
	ColorRed, ColorLinearGradient, ColorRadialGradient, ColorAngularGradient)

// ID returns the stable identifier, or "" for an unknown value.
func (k ColorItemKind) ID() string {
	if !k.Valid() {
		return ""
	}
	return colorItemIDs[k]
}

// String returns the display label.
func (k ColorItemKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("ColorItemKind(%d)", uint8(k))
	}
	return colorItemLabels[k]
}

// Valid reports whether k is a member of the catalog.
func (k ColorItemKind) Valid() bool {
	return int(k) < len(colorItemIDs)
}

// MarshalText implements encoding.TextMarshaler.
func (k ColorItemKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, invalidOrdinal(ColorItems.Name(), uint8(k))
	}
	return []byte(k.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ColorItemKind) UnmarshalText(text []byte) error {
	v, err := ColorItems.Parse(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
