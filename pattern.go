package shapestyle

import (
	"image"
	"math"
)

// DefaultPatternScale is the tile scale used when no WithPatternScale
// option is given.
const DefaultPatternScale = 0.5

// ImagePattern tiles an image across the painted area.
// Each tile is the source image scaled by Scale.
//
// Example:
//
//	p := shapestyle.ImagePattern{Image: img, Scale: 0.25}
//	c := p.ColorAt(10, 10)
type ImagePattern struct {
	Image image.Image
	Scale float64
}

// TileSize returns the size of one tile in points.
func (p ImagePattern) TileSize() Size {
	if p.Image == nil {
		return Size{}
	}
	b := p.Image.Bounds()
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	return Size{W: float64(b.Dx()) * scale, H: float64(b.Dy()) * scale}
}

// ColorAt samples the pattern with nearest-neighbor lookup.
// A pattern without an image is transparent.
func (p ImagePattern) ColorAt(x, y float64) RGBA {
	if p.Image == nil {
		return Transparent
	}
	b := p.Image.Bounds()
	if b.Empty() {
		return Transparent
	}
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	ix := wrapIndex(int(math.Floor(x/scale)), b.Dx())
	iy := wrapIndex(int(math.Floor(y/scale)), b.Dy())
	return FromColor(p.Image.At(b.Min.X+ix, b.Min.Y+iy))
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
