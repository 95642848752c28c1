package shapestyle

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Option is implemented by every catalog enumeration.
type Option interface {
	comparable
	// ID returns the stable machine-readable identifier used as a
	// selection key.
	ID() string
	// String returns the human-readable display label.
	String() string
}

// Catalog is a closed, ordered set of options.
//
// Catalogs are immutable after package initialization and safe for
// concurrent use.
type Catalog[T Option] struct {
	name    string
	values  []T
	byID    map[string]T
	aliases map[string]T
}

func newCatalog[T Option](name string, values ...T) *Catalog[T] {
	c := &Catalog[T]{
		name:   name,
		values: values,
		byID:   make(map[string]T, len(values)),
	}
	for _, v := range values {
		c.byID[v.ID()] = v
	}
	return c
}

// withAlias registers an extra identifier accepted by Parse only.
func (c *Catalog[T]) withAlias(id string, v T) *Catalog[T] {
	if c.aliases == nil {
		c.aliases = make(map[string]T)
	}
	c.aliases[id] = v
	return c
}

// Name returns the catalog name used in error messages.
func (c *Catalog[T]) Name() string { return c.name }

// Len returns the number of variants.
func (c *Catalog[T]) Len() int { return len(c.values) }

// All returns every variant in declaration order.
// The returned slice is a fresh copy.
func (c *Catalog[T]) All() []T {
	out := make([]T, len(c.values))
	copy(out, c.values)
	return out
}

// Labels returns the display labels in declaration order.
func (c *Catalog[T]) Labels() []string {
	out := make([]string, len(c.values))
	for i, v := range c.values {
		out[i] = v.String()
	}
	return out
}

// Parse returns the variant with the given identifier.
// Unknown identifiers fail with a *SelectionError wrapping
// ErrInvalidSelection.
func (c *Catalog[T]) Parse(id string) (T, error) {
	if v, ok := c.byID[id]; ok {
		return v, nil
	}
	if v, ok := c.aliases[id]; ok {
		return v, nil
	}
	var zero T
	Logger().Debug("rejected selection", "catalog", c.name, "id", id)
	return zero, &SelectionError{Catalog: c.name, Value: id}
}

// Index returns the position of v in declaration order, or -1.
func (c *Catalog[T]) Index(v T) int {
	for i, x := range c.values {
		if x == v {
			return i
		}
	}
	return -1
}

// Step returns the variant delta positions away from v, wrapping around
// both ends. Unknown values step from the first variant.
func (c *Catalog[T]) Step(v T, delta int) T {
	n := len(c.values)
	i := c.Index(v)
	if i < 0 {
		i = 0
	}
	i = ((i+delta)%n + n) % n
	return c.values[i]
}

// titleLabels builds display labels by title-casing each identifier.
// The caser is not safe for concurrent use, so labels are computed once.
func titleLabels(ids []string) []string {
	caser := cases.Title(language.English)
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = caser.String(id)
	}
	return out
}
