// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/shapestyle"
	"github.com/gogpu/shapestyle/internal/blend"
)

// PainterOption configures a Painter during creation.
//
// Example:
//
//	// Default painter: Go Bold text, procedural samples
//	p, err := preview.NewPainter()
//
//	// Shared sample set loaded from disk
//	samples := preview.NewSamples()
//	samples.LoadDir("assets")
//	p, err := preview.NewPainter(preview.WithSamples(samples))
type PainterOption func(*painterOptions)

type painterOptions struct {
	text    *TextRenderer
	samples *Samples
}

// WithTextRenderer sets the renderer used for text surfaces and labels.
func WithTextRenderer(r *TextRenderer) PainterOption {
	return func(o *painterOptions) {
		o.text = r
	}
}

// WithSamples sets the images used for image surfaces and backgrounds.
func WithSamples(s *Samples) PainterOption {
	return func(o *painterOptions) {
		o.samples = s
	}
}

// Painter paints resolved styles onto a PixmapTarget.
type Painter struct {
	text    *TextRenderer
	samples *Samples
}

// NewPainter creates a painter.
func NewPainter(opts ...PainterOption) (*Painter, error) {
	var o painterOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.text == nil {
		tr, err := NewTextRenderer()
		if err != nil {
			return nil, err
		}
		o.text = tr
	}
	if o.samples == nil {
		o.samples = NewSamples()
	}
	return &Painter{text: o.text, samples: o.samples}, nil
}

// Text returns the painter's text renderer.
func (p *Painter) Text() *TextRenderer { return p.text }

// Samples returns the painter's sample images.
func (p *Painter) Samples() *Samples { return p.samples }

// Paint paints s into the area covered by mask, which is given in target
// coordinates. Shader styles are drawn over the mask bounds with their own
// surface.
func (p *Painter) Paint(target *PixmapTarget, s shapestyle.Style, mask *image.Alpha) error {
	if s == nil {
		return errors.New("preview: nil style")
	}
	if ss, ok := s.(shapestyle.ShaderStyle); ok {
		return p.Shade(target, ss, mask.Bounds())
	}
	p.Fill(target, s, mask)
	return nil
}

// Fill composites a paint style through a coverage mask. Gradients and
// patterns are evaluated relative to the mask bounds. Shader styles paint
// nothing.
func (p *Painter) Fill(target *PixmapTarget, s shapestyle.Style, mask *image.Alpha) {
	mb := mask.Bounds()
	area := mb.Intersect(target.Bounds())
	frame := rectOf(mb)
	mode := s.Mode()
	if solid, ok := s.(shapestyle.SolidStyle); ok {
		fillSolid(target, solid, mask, area)
		return
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			cov := float64(mask.AlphaAt(x, y).A) / 255
			if cov <= 0 {
				continue
			}
			c, ok := shapestyle.ColorAt(s, float64(x)+0.5, float64(y)+0.5, frame)
			if !ok {
				return
			}
			target.set(x, y, blend.Composite(c.WithAlpha(cov), target.at(x, y), mode))
		}
	}
}

// fillSolid composites a constant color row by row.
func fillSolid(target *PixmapTarget, s shapestyle.SolidStyle, mask *image.Alpha, area image.Rectangle) {
	src, _ := shapestyle.ColorAt(s, 0, 0, shapestyle.Rect{})
	row := make([]shapestyle.RGBA, area.Dx())
	cov := make([]float64, area.Dx())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for i := range row {
			x := area.Min.X + i
			row[i] = target.at(x, y)
			cov[i] = float64(mask.AlphaAt(x, y).A) / 255
		}
		blend.Span(row, src, cov, s.Mode())
		for i, c := range row {
			if cov[i] > 0 {
				target.set(area.Min.X+i, y, c)
			}
		}
	}
}

// Shade runs a shader style's program over its surface sized to bounds and
// composites the result at bounds.Min.
func (p *Painter) Shade(target *PixmapTarget, s shapestyle.ShaderStyle, bounds image.Rectangle) error {
	surface, err := p.Surface(s.Invocation.Surface, bounds.Dx(), bounds.Dy())
	if err != nil {
		return err
	}
	out, err := Run(s.Invocation, surface)
	if err != nil {
		return err
	}
	p.Composite(target, out, bounds.Min, s.Mode(), s.Prominence())
	return nil
}

// Surface builds the w x h input layer a program draws on.
func (p *Painter) Surface(sf shapestyle.Surface, w, h int) (*Layer, error) {
	local := image.Rect(0, 0, w, h)
	switch sf.Kind {
	case shapestyle.SurfaceRectangle:
		return LayerFromMask(RectMask(local), shapestyle.Black), nil
	case shapestyle.SurfaceCircle:
		return LayerFromMask(CircleMask(local), shapestyle.Black), nil
	case shapestyle.SurfaceText:
		m, err := p.text.Mask(sf.Text, w, h)
		if err != nil {
			return nil, err
		}
		return LayerFromMask(m, shapestyle.Black), nil
	case shapestyle.SurfaceImage:
		img, err := p.samples.Fill(sf.Image, w, h)
		if err != nil {
			return nil, err
		}
		return LayerFromImage(img), nil
	default:
		return nil, fmt.Errorf("preview: unknown surface kind %d", sf.Kind)
	}
}

// Composite blends a layer onto the target with its top-left corner at at.
func (p *Painter) Composite(target *PixmapTarget, l *Layer, at image.Point, mode shapestyle.BlendMode, opacity float64) {
	tb := target.Bounds()
	for y := 0; y < l.H; y++ {
		for x := 0; x < l.W; x++ {
			tx, ty := at.X+x, at.Y+y
			if !(image.Point{X: tx, Y: ty}).In(tb) {
				continue
			}
			c := l.Pix[y*l.W+x].WithAlpha(opacity)
			if c.A <= 0 {
				continue
			}
			target.set(tx, ty, blend.Composite(c, target.at(tx, ty), mode))
		}
	}
}

// Background covers bounds with the named sample image.
func (p *Painter) Background(target *PixmapTarget, name string, bounds image.Rectangle) error {
	img, err := p.samples.Fill(name, bounds.Dx(), bounds.Dy())
	if err != nil {
		return err
	}
	xdraw.Draw(target.Image(), bounds, img, image.Point{}, xdraw.Src)
	return nil
}

// Label draws text centered on a translucent white plate filling bounds.
func (p *Painter) Label(target *PixmapTarget, text string, bounds image.Rectangle) error {
	p.Fill(target, shapestyle.Solid(shapestyle.White.WithAlpha(0.7)), RectMask(bounds))
	m, err := p.text.MaskAt(text, bounds.Dx(), bounds.Dy(), float64(bounds.Dy())*0.6)
	if err != nil {
		return err
	}
	p.Composite(target, LayerFromMask(m, shapestyle.Black), bounds.Min, shapestyle.BlendNormal, 1)
	return nil
}

func rectOf(r image.Rectangle) shapestyle.Rect {
	return shapestyle.Rect{
		Min: shapestyle.Pt(float64(r.Min.X), float64(r.Min.Y)),
		Max: shapestyle.Pt(float64(r.Max.X), float64(r.Max.Y)),
	}
}
