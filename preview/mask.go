// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"image"
	"image/color"
	"math"
)

// CircleMask returns an anti-aliased disc inscribed in bounds.
func CircleMask(bounds image.Rectangle) *image.Alpha {
	m := image.NewAlpha(bounds)
	cx := float64(bounds.Min.X+bounds.Max.X) / 2
	cy := float64(bounds.Min.Y+bounds.Max.Y) / 2
	r := math.Min(float64(bounds.Dx()), float64(bounds.Dy())) / 2
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			cov := clampUnit(r - d + 0.5)
			if cov > 0 {
				m.SetAlpha(x, y, color.Alpha{A: uint8(cov*255 + 0.5)})
			}
		}
	}
	return m
}

// RectMask returns full coverage over bounds.
func RectMask(bounds image.Rectangle) *image.Alpha {
	m := image.NewAlpha(bounds)
	for i := range m.Pix {
		m.Pix[i] = 0xff
	}
	return m
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
