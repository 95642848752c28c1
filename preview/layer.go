// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"image"
	"math"

	"github.com/gogpu/shapestyle"
)

// Layer is an offscreen straight-alpha float raster. Shader programs read
// and write layers; the painter composites them onto a target.
type Layer struct {
	W, H int
	Pix  []shapestyle.RGBA
}

// NewLayer creates a transparent layer.
func NewLayer(w, h int) *Layer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Layer{W: w, H: h, Pix: make([]shapestyle.RGBA, w*h)}
}

// LayerFromImage converts an image into a layer of the same size.
func LayerFromImage(img image.Image) *Layer {
	b := img.Bounds()
	l := NewLayer(b.Dx(), b.Dy())
	for y := 0; y < l.H; y++ {
		for x := 0; x < l.W; x++ {
			l.Pix[y*l.W+x] = shapestyle.FromColor(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return l
}

// LayerFromMask converts a coverage mask into a layer of c scaled by
// coverage.
func LayerFromMask(mask *image.Alpha, c shapestyle.RGBA) *Layer {
	b := mask.Bounds()
	l := NewLayer(b.Dx(), b.Dy())
	for y := 0; y < l.H; y++ {
		for x := 0; x < l.W; x++ {
			cov := float64(mask.AlphaAt(b.Min.X+x, b.Min.Y+y).A) / 255
			if cov > 0 {
				l.Pix[y*l.W+x] = c.WithAlpha(cov)
			}
		}
	}
	return l
}

// At returns the pixel at (x, y), or transparent outside the layer.
func (l *Layer) At(x, y int) shapestyle.RGBA {
	if x < 0 || y < 0 || x >= l.W || y >= l.H {
		return shapestyle.Transparent
	}
	return l.Pix[y*l.W+x]
}

// Sample returns the pixel containing the point p.
func (l *Layer) Sample(p shapestyle.Point) shapestyle.RGBA {
	return l.At(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// Set stores a pixel; writes outside the layer are ignored.
func (l *Layer) Set(x, y int, c shapestyle.RGBA) {
	if x < 0 || y < 0 || x >= l.W || y >= l.H {
		return
	}
	l.Pix[y*l.W+x] = c
}
