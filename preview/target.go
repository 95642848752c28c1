// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shapestyle"
)

// PixmapTarget is a CPU-backed render target using *image.RGBA.
//
// Example:
//
//	target := preview.NewPixmapTarget(800, 600)
//	renderer.RenderColors(target, shapestyle.WeightPrimary)
//	img := target.Image()
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a new CPU-backed render target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA as a render target.
// The image is used directly without copying.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Viewport implements shapestyle.RenderTarget. A zero-sized target has
// not been laid out.
func (t *PixmapTarget) Viewport() (shapestyle.Size, bool) {
	s := shapestyle.Size{W: float64(t.Width()), H: float64(t.Height())}
	return s, !s.Empty()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	return t.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// Bounds returns the target rectangle.
func (t *PixmapTarget) Bounds() image.Rectangle {
	return t.img.Bounds()
}

// Clear fills the entire target with the given color.
func (t *PixmapTarget) Clear(c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	bounds := t.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			t.img.SetRGBA(x, y, rgba)
		}
	}
}

// Resize replaces the backing image with one of the given dimensions.
// The contents are not preserved.
func (t *PixmapTarget) Resize(width, height int) {
	t.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// at returns the straight-alpha color of a pixel.
func (t *PixmapTarget) at(x, y int) shapestyle.RGBA {
	return shapestyle.FromColor(t.img.RGBAAt(x, y))
}

// set stores a straight-alpha color.
func (t *PixmapTarget) set(x, y int, c shapestyle.RGBA) {
	t.img.Set(x, y, c.Color())
}

var _ shapestyle.RenderTarget = (*PixmapTarget)(nil)
