package state

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/gogpu/shapestyle"
)

// Change is delivered to subscribers after a field changes.
type Change struct {
	Field Field
	// Selection is the store's value after the change.
	Selection Selection
}

// Store holds a Selection. It is safe for concurrent use.
//
// Subscribers run on the goroutine that made the change, after the store's
// lock is released, so they may read or modify the store.
type Store struct {
	mu     sync.RWMutex
	sel    Selection
	subs   map[int]func(Change)
	nextID int
}

// NewStore creates a store holding Default().
func NewStore() *Store {
	return &Store{sel: Default(), subs: make(map[int]func(Change))}
}

// Snapshot returns a copy of the current selection.
func (s *Store) Snapshot() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sel
}

// Subscribe registers fn for every later change. The returned function
// removes the subscription; calling it more than once is harmless.
func (s *Store) Subscribe(fn func(Change)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// SetPage selects the visible page.
func (s *Store) SetPage(p shapestyle.Page) error {
	return s.update(p, func(sel *Selection) { sel.Page = p })
}

// SetLeftFill selects the left circle's fill.
func (s *Store) SetLeftFill(f shapestyle.FillKind) error {
	return s.update(f, func(sel *Selection) { sel.Left.Fill = f })
}

// SetLeftBlend selects the left circle's blend mode.
func (s *Store) SetLeftBlend(m shapestyle.BlendMode) error {
	return s.update(m, func(sel *Selection) { sel.Left.Blend = m })
}

// SetRightFill selects the right circle's fill.
func (s *Store) SetRightFill(f shapestyle.FillKind) error {
	return s.update(f, func(sel *Selection) { sel.Right.Fill = f })
}

// SetRightBlend selects the right circle's blend mode.
func (s *Store) SetRightBlend(m shapestyle.BlendMode) error {
	return s.update(m, func(sel *Selection) { sel.Right.Blend = m })
}

// SetSeparation sets the circle offset, clamped to the slider range.
func (s *Store) SetSeparation(v float64) {
	_ = s.update(nil, func(sel *Selection) { sel.Separation = ClampSeparation(v) })
}

// SetWeight selects the colors page weight.
func (s *Store) SetWeight(w shapestyle.Weight) error {
	return s.update(w, func(sel *Selection) { sel.Weight = w })
}

// SetShader selects the focused shader.
func (s *Store) SetShader(k shapestyle.ShaderKind) error {
	return s.update(k, func(sel *Selection) { sel.Shader = k })
}

// Replace swaps in a whole selection after validating it.
func (s *Store) Replace(next Selection) error {
	if err := next.Validate(); err != nil {
		return err
	}
	next.Separation = ClampSeparation(next.Separation)
	return s.update(nil, func(sel *Selection) { *sel = next })
}

// Encode returns the selection as key/value strings.
func (s *Store) Encode() map[string]string {
	return Encode(s.Snapshot())
}

// Restore decodes pairs produced by Encode into the store. Missing keys
// keep their current value and unknown keys are ignored. On any invalid
// value the store is left unchanged.
func (s *Store) Restore(pairs map[string]string) error {
	next, err := Decode(s.Snapshot(), pairs)
	if err != nil {
		shapestyle.Logger().Debug("restore rejected", "err", err)
		return err
	}
	return s.Replace(next)
}

type validator interface {
	MarshalText() ([]byte, error)
}

// update validates v (when non-nil), applies mutate under the lock and
// notifies subscribers of every field that changed.
func (s *Store) update(v validator, mutate func(*Selection)) error {
	if v != nil {
		if _, err := v.MarshalText(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	prev := s.sel
	mutate(&s.sel)
	cur := s.sel
	changed := diff(prev, cur)
	var subs []func(Change)
	if len(changed) > 0 {
		subs = s.subscribers()
	}
	s.mu.Unlock()

	for _, f := range changed {
		c := Change{Field: f, Selection: cur}
		for _, fn := range subs {
			fn(c)
		}
	}
	return nil
}

// subscribers returns the callbacks in registration order. The caller
// holds mu.
func (s *Store) subscribers() []func(Change) {
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]func(Change), len(ids))
	for i, id := range ids {
		out[i] = s.subs[id]
	}
	return out
}

// Encode returns sel as key/value strings keyed by Field.Key.
func Encode(sel Selection) map[string]string {
	return map[string]string{
		FieldPage.Key():       sel.Page.ID(),
		FieldLeftFill.Key():   sel.Left.Fill.ID(),
		FieldLeftBlend.Key():  sel.Left.Blend.ID(),
		FieldRightFill.Key():  sel.Right.Fill.ID(),
		FieldRightBlend.Key(): sel.Right.Blend.ID(),
		FieldSeparation.Key(): strconv.FormatFloat(sel.Separation, 'g', -1, 64),
		FieldWeight.Key():     sel.Weight.ID(),
		FieldShader.Key():     sel.Shader.ID(),
	}
}

// Decode applies pairs on top of base. Unknown ids fail with
// shapestyle.ErrInvalidSelection.
func Decode(base Selection, pairs map[string]string) (Selection, error) {
	sel := base
	for key, value := range pairs {
		var err error
		switch key {
		case FieldPage.Key():
			sel.Page, err = shapestyle.Pages.Parse(value)
		case FieldLeftFill.Key():
			sel.Left.Fill, err = shapestyle.Fills.Parse(value)
		case FieldLeftBlend.Key():
			sel.Left.Blend, err = shapestyle.BlendModes.Parse(value)
		case FieldRightFill.Key():
			sel.Right.Fill, err = shapestyle.Fills.Parse(value)
		case FieldRightBlend.Key():
			sel.Right.Blend, err = shapestyle.BlendModes.Parse(value)
		case FieldSeparation.Key():
			var f float64
			f, err = strconv.ParseFloat(value, 64)
			if err != nil {
				err = fmt.Errorf("%w: %v", &shapestyle.SelectionError{Catalog: "separation", Value: value}, err)
			}
			sel.Separation = ClampSeparation(f)
		case FieldWeight.Key():
			sel.Weight, err = shapestyle.Weights.Parse(value)
		case FieldShader.Key():
			sel.Shader, err = shapestyle.ShaderKinds.Parse(value)
		default:
			shapestyle.Logger().Debug("ignoring unknown selection key", "key", key)
		}
		if err != nil {
			return base, fmt.Errorf("state: %s: %w", key, err)
		}
	}
	return sel, nil
}
