package shapestyle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSelection is returned when a value outside a closed catalog
	// is supplied, for example when decoding a stale saved selection.
	ErrInvalidSelection = errors.New("shapestyle: invalid selection")

	// ErrMissingRenderContext is returned when a resolution needs the
	// viewport size before a render target exists.
	ErrMissingRenderContext = errors.New("shapestyle: missing render context")
)

// SelectionError describes a rejected catalog value.
// It unwraps to ErrInvalidSelection.
type SelectionError struct {
	// Catalog is the name of the catalog the value was checked against.
	Catalog string
	// Value is the offending identifier or ordinal.
	Value string
}

// Error implements the error interface.
func (e *SelectionError) Error() string {
	return fmt.Sprintf("shapestyle: invalid %s selection %q", e.Catalog, e.Value)
}

// Unwrap returns ErrInvalidSelection.
func (e *SelectionError) Unwrap() error {
	return ErrInvalidSelection
}

func invalidOrdinal(catalog string, v uint8) error {
	return &SelectionError{Catalog: catalog, Value: fmt.Sprintf("#%d", v)}
}
