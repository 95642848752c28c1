package shapestyle

import "fmt"

// Page is a top-level section of the showcase.
type Page uint8

const (
	// PageColors shows color items at a chosen weight.
	PageColors Page = iota
	// PageBlends shows two blended circles over the sample image.
	PageBlends
	// PageShaders shows every shader effect.
	PageShaders
)

var (
	pageIDs    = []string{"colors", "blends", "shaders"}
	pageLabels = titleLabels(pageIDs)
)

// Pages lists every Page in sidebar order.
var Pages = newCatalog("page", PageColors, PageBlends, PageShaders)

// ID returns the stable identifier, or "" for an unknown value.
func (p Page) ID() string {
	if !p.Valid() {
		return ""
	}
	return pageIDs[p]
}

// String returns the display label.
func (p Page) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Page(%d)", uint8(p))
	}
	return pageLabels[p]
}

// Valid reports whether p is a member of the catalog.
func (p Page) Valid() bool {
	return int(p) < len(pageIDs)
}

// MarshalText implements encoding.TextMarshaler.
func (p Page) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, invalidOrdinal(Pages.Name(), uint8(p))
	}
	return []byte(p.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Page) UnmarshalText(text []byte) error {
	v, err := Pages.Parse(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
