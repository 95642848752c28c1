// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"fmt"
	"image"

	"github.com/gogpu/shapestyle"
)

// Page layout constants in pixels.
const (
	pagePadding  = 16
	cellPadding  = 12
	labelHeight  = 28
	colorColumns = 3
	shaderColumn = 2
)

// Renderer lays out and paints the demo pages.
type Renderer struct {
	resolver *shapestyle.Resolver
	painter  *Painter
}

// NewRenderer creates a page renderer drawing styles from resolver.
func NewRenderer(resolver *shapestyle.Resolver, opts ...PainterOption) (*Renderer, error) {
	if resolver == nil {
		resolver = shapestyle.NewResolver()
	}
	p, err := NewPainter(opts...)
	if err != nil {
		return nil, err
	}
	return &Renderer{resolver: resolver, painter: p}, nil
}

// Painter returns the painter used for every page.
func (r *Renderer) Painter() *Painter { return r.painter }

// RenderColors draws every color item at weight w in a three-column grid.
// Each cell shows the item in a circle over the background image with its
// label underneath.
func (r *Renderer) RenderColors(target *PixmapTarget, w shapestyle.Weight) error {
	items := shapestyle.ColorItems.All()
	cells := grid(target.Bounds(), len(items), colorColumns)
	for i, item := range items {
		s, err := r.resolver.ResolveWeighted(item, w)
		if err != nil {
			return err
		}
		cell := cells[i]
		if err := r.painter.Background(target, shapestyle.ImageWaimea, cell); err != nil {
			return err
		}
		inner := cell.Inset(cellPadding)
		if inner.Empty() {
			continue
		}
		shapeArea := inner
		shapeArea.Max.Y -= labelHeight + cellPadding
		r.painter.Fill(target, s, CircleMask(square(shapeArea)))

		label := image.Rect(inner.Min.X, inner.Max.Y-labelHeight, inner.Max.X, inner.Max.Y)
		if err := r.painter.Label(target, item.String(), label); err != nil {
			return err
		}
	}
	shapestyle.Logger().Debug("rendered colors page", "weight", w.ID(), "items", len(items))
	return nil
}

// RenderBlends draws the two blend circles over the background image.
// The left circle is painted first and moved left by separation; the right
// circle is blended over it and moved right by the same amount.
func (r *Renderer) RenderBlends(target *PixmapTarget, left, right shapestyle.FillSelection, separation float64) error {
	ls, rs, err := r.resolver.ResolvePair(left, right)
	if err != nil {
		return err
	}
	tb := target.Bounds()
	if err := r.painter.Background(target, shapestyle.ImageWaimea, tb); err != nil {
		return err
	}
	circle := square(tb.Inset(pagePadding))
	if circle.Empty() {
		return nil
	}
	off := int(separation)
	if err := r.painter.Paint(target, ls, CircleMask(circle.Add(image.Pt(-off, 0)))); err != nil {
		return err
	}
	if err := r.painter.Paint(target, rs, CircleMask(circle.Add(image.Pt(off, 0)))); err != nil {
		return err
	}
	shapestyle.Logger().Debug("rendered blends page",
		"left", left.Fill.ID(), "left_blend", left.Blend.ID(),
		"right", right.Fill.ID(), "right_blend", right.Blend.ID(),
		"separation", separation)
	return nil
}

// RenderShaders draws every shader kind at elapsed time t as square cards
// in a two-column grid.
func (r *Renderer) RenderShaders(target *PixmapTarget, t float64) error {
	target.Clear(shapestyle.White.Color())
	kinds := shapestyle.ShaderKinds.All()
	cells := grid(target.Bounds(), len(kinds), shaderColumn)
	for i, kind := range kinds {
		card := square(cells[i].Inset(cellPadding))
		if card.Empty() {
			continue
		}
		if err := r.renderCard(target, kind, t, card); err != nil {
			return err
		}
	}
	shapestyle.Logger().Debug("rendered shaders page", "time", t, "kinds", len(kinds))
	return nil
}

// RenderShader draws a single shader kind filling the target.
func (r *Renderer) RenderShader(target *PixmapTarget, kind shapestyle.ShaderKind, t float64) error {
	target.Clear(shapestyle.White.Color())
	return r.renderCard(target, kind, t, target.Bounds())
}

func (r *Renderer) renderCard(target *PixmapTarget, kind shapestyle.ShaderKind, t float64, card image.Rectangle) error {
	viewport := shapestyle.Size{W: float64(card.Dx()), H: float64(card.Dy())}
	s, err := r.resolver.ResolveShader(kind, t, viewport)
	if err != nil {
		return fmt.Errorf("preview: %s: %w", kind.ID(), err)
	}
	ss, ok := s.(shapestyle.ShaderStyle)
	if !ok {
		return fmt.Errorf("preview: %s resolved to a %s style", kind.ID(), s.Kind())
	}
	return r.painter.Shade(target, ss, card)
}

// grid splits bounds into n cells laid out in rows of cols.
func grid(bounds image.Rectangle, n, cols int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	cols = min(cols, n)
	rows := (n + cols - 1) / cols
	cw := bounds.Dx() / cols
	ch := bounds.Dy() / rows
	cells := make([]image.Rectangle, n)
	for i := range cells {
		x := bounds.Min.X + (i%cols)*cw
		y := bounds.Min.Y + (i/cols)*ch
		cells[i] = image.Rect(x, y, x+cw, y+ch)
	}
	return cells
}

// square returns the largest square centered in r.
func square(r image.Rectangle) image.Rectangle {
	side := min(r.Dx(), r.Dy())
	if side <= 0 {
		return image.Rectangle{}
	}
	x := r.Min.X + (r.Dx()-side)/2
	y := r.Min.Y + (r.Dy()-side)/2
	return image.Rect(x, y, x+side, y+side)
}
