package shapestyle

import "fmt"

// FillKind selects the base paint source of a blend-page circle.
type FillKind uint8

const (
	// FillRed paints the system red.
	FillRed FillKind = iota
	// FillBlue paints the system blue.
	FillBlue
	// FillImage tiles the sample image.
	FillImage
)

var (
	fillIDs    = []string{"red", "blue", "image"}
	fillLabels = titleLabels(fillIDs)
)

// Fills lists every FillKind in declaration order.
var Fills = newCatalog("fill", FillRed, FillBlue, FillImage)

// ID returns the stable identifier, or "" for an unknown value.
func (f FillKind) ID() string {
	if !f.Valid() {
		return ""
	}
	return fillIDs[f]
}

// String returns the display label.
func (f FillKind) String() string {
	if !f.Valid() {
		return fmt.Sprintf("FillKind(%d)", uint8(f))
	}
	return fillLabels[f]
}

// Valid reports whether f is a member of the catalog.
func (f FillKind) Valid() bool {
	return int(f) < len(fillIDs)
}

// MarshalText implements encoding.TextMarshaler.
func (f FillKind) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, invalidOrdinal(Fills.Name(), uint8(f))
	}
	return []byte(f.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FillKind) UnmarshalText(text []byte) error {
	v, err := Fills.Parse(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
