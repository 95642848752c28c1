// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/shapestyle/internal/cache"
)

// textMaskCacheSize bounds the number of rasterized text masks kept.
const textMaskCacheSize = 64

// TextRenderer rasterizes single lines of heavy display text into
// coverage masks. Layout uses HarfBuzz shaping; rasterization uses the
// OpenType rasterizer from x/image. It is safe for concurrent use.
type TextRenderer struct {
	raster *opentype.Font
	shape  *gtfont.Font

	mu     sync.Mutex
	shaper shaping.HarfbuzzShaper

	masks *cache.Cache[textKey, *image.Alpha]
}

type textKey struct {
	text string
	w, h int
	size float64
}

// NewTextRenderer creates a renderer using the Go Bold font.
func NewTextRenderer() (*TextRenderer, error) {
	return NewTextRendererFromTTF(gobold.TTF)
}

// NewTextRendererFromTTF creates a renderer from TrueType or OpenType data.
func NewTextRendererFromTTF(data []byte) (*TextRenderer, error) {
	raster, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("preview: parse font: %w", err)
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("preview: parse font for shaping: %w", err)
	}
	return &TextRenderer{
		raster: raster,
		shape:  face.Font,
		masks:  cache.New[textKey, *image.Alpha](textMaskCacheSize),
	}, nil
}

// Advance returns the shaped width of text at the given size in pixels.
func (r *TextRenderer) Advance(text string, size float64) float64 {
	if text == "" || size <= 0 {
		return 0
	}
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(r.shape),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	r.mu.Lock()
	out := r.shaper.Shape(input)
	r.mu.Unlock()

	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	return float64(adv) / 64
}

// FitSize returns the largest size, capped at a fraction of h, at which
// text fits in w with a margin.
func (r *TextRenderer) FitSize(text string, w, h int) float64 {
	const probe = 100.0
	size := float64(h) * 0.7
	if adv := r.Advance(text, probe); adv > 0 {
		size = math.Min(size, float64(w)*0.9*probe/adv)
	}
	return size
}

// Mask renders text centered in a w x h mask at the fitted size.
func (r *TextRenderer) Mask(text string, w, h int) (*image.Alpha, error) {
	return r.MaskAt(text, w, h, r.FitSize(text, w, h))
}

// MaskAt renders text centered in a w x h mask at a fixed size.
// Masks are cached; callers must not modify the result.
func (r *TextRenderer) MaskAt(text string, w, h int, size float64) (*image.Alpha, error) {
	if w <= 0 || h <= 0 || size <= 0 {
		return image.NewAlpha(image.Rect(0, 0, max(w, 0), max(h, 0))), nil
	}
	key := textKey{text: text, w: w, h: h, size: size}
	return r.masks.GetOrCreate(key, func() (*image.Alpha, error) {
		face, err := opentype.NewFace(r.raster, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("preview: text face: %w", err)
		}
		defer face.Close()

		m := face.Metrics()
		ascent := float64(m.Ascent) / 64
		descent := float64(m.Descent) / 64
		x := (float64(w) - r.Advance(text, size)) / 2
		baseline := (float64(h) + ascent - descent) / 2

		dst := image.NewAlpha(image.Rect(0, 0, w, h))
		d := font.Drawer{
			Dst:  dst,
			Src:  image.Opaque,
			Face: face,
			Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(baseline * 64)},
		}
		d.DrawString(text)
		return dst, nil
	})
}

func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
