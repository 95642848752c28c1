// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"fmt"
	"image"
	_ "image/jpeg" // sample photos
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/shapestyle"
	"github.com/gogpu/shapestyle/internal/cache"
)

// SampleSize is the edge length of the procedural sample images.
const SampleSize = 512

// Samples holds the named images shader surfaces and the image fill draw
// from. Missing names fall back to procedural stand-ins. It is safe for
// concurrent use.
type Samples struct {
	mu     sync.RWMutex
	images map[string]image.Image
	scaled *cache.Cache[scaledKey, *image.RGBA]
}

type scaledKey struct {
	name string
	w, h int
}

// NewSamples creates a sample set with only the procedural images.
func NewSamples() *Samples {
	return &Samples{
		images: make(map[string]image.Image),
		scaled: cache.New[scaledKey, *image.RGBA](32),
	}
}

// Set replaces a named image.
func (s *Samples) Set(name string, img image.Image) {
	s.mu.Lock()
	s.images[name] = img
	s.mu.Unlock()
	s.scaled.Clear()
}

// LoadDir replaces every sample that has a matching name.png, name.jpg or
// name.jpeg file in dir. Missing files are not an error.
func (s *Samples) LoadDir(dir string) error {
	for _, name := range []string{shapestyle.ImageWaimea, shapestyle.ImagePuyo, shapestyle.ImageNasa} {
		for _, ext := range []string{".png", ".jpg", ".jpeg"} {
			path := filepath.Join(dir, name+ext)
			img, err := decodeFile(path)
			if os.IsNotExist(err) {
				continue
			}
			if err != nil {
				return err
			}
			s.Set(name, img)
			break
		}
	}
	return nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("preview: decode %s: %w", path, err)
	}
	return img, nil
}

// Image returns the named image at its own size.
func (s *Samples) Image(name string) (image.Image, error) {
	s.mu.RLock()
	img, ok := s.images[name]
	s.mu.RUnlock()
	if ok {
		return img, nil
	}
	gen, ok := procedural[name]
	if !ok {
		return nil, fmt.Errorf("preview: unknown sample image %q", name)
	}
	img = gen(SampleSize)
	s.mu.Lock()
	if prev, ok := s.images[name]; ok {
		img = prev
	} else {
		s.images[name] = img
	}
	s.mu.Unlock()
	return img, nil
}

// Fill returns the named image scaled to cover w x h, cropped to center
// (aspect fill).
func (s *Samples) Fill(name string, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{}), nil
	}
	src, err := s.Image(name)
	if err != nil {
		return nil, err
	}
	return s.scaled.GetOrCreate(scaledKey{name, w, h}, func() (*image.RGBA, error) {
		return aspectFill(src, w, h), nil
	})
}

func aspectFill(src image.Image, w, h int) *image.RGBA {
	sb := src.Bounds()
	scale := math.Max(float64(w)/float64(sb.Dx()), float64(h)/float64(sb.Dy()))
	cw := int(math.Round(float64(w) / scale))
	ch := int(math.Round(float64(h) / scale))
	cx := sb.Min.X + (sb.Dx()-cw)/2
	cy := sb.Min.Y + (sb.Dy()-ch)/2
	crop := image.Rect(cx, cy, cx+cw, cy+ch).Intersect(sb)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, xdraw.Src, nil)
	return dst
}

var procedural = map[string]func(n int) image.Image{
	shapestyle.ImageWaimea: waimea,
	shapestyle.ImagePuyo:   puyo,
	shapestyle.ImageNasa:   nasa,
}

func put(img *image.RGBA, x, y int, c shapestyle.RGBA) {
	img.Set(x, y, c.Color())
}

// waimea paints a sunset over a bay: a warm sky gradient above banded
// water.
func waimea(n int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	sky := []shapestyle.ColorStop{
		{Offset: 0, Color: shapestyle.Hex("#2B3A67")},
		{Offset: 0.45, Color: shapestyle.Hex("#E0607E")},
		{Offset: 1, Color: shapestyle.Hex("#FFB347")},
	}
	g := shapestyle.Gradient{
		Kind:  shapestyle.GradientLinear,
		Stops: sky,
		Start: shapestyle.UnitPoint{X: 0.5, Y: 0},
		End:   shapestyle.UnitPoint{X: 0.5, Y: 0.6},
	}
	bounds := shapestyle.RectFromSize(shapestyle.Size{W: float64(n), H: float64(n)})
	horizon := int(float64(n) * 0.6)
	sea := shapestyle.Hex("#1B6F8A")
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			if y < horizon {
				put(img, x, y, g.ColorAt(fx, fy, bounds))
				continue
			}
			depth := (fy - float64(horizon)) / float64(n-horizon)
			wave := 0.5 + 0.5*math.Sin(fx*0.05+depth*40)
			glint := math.Exp(-math.Abs(fx-float64(n)/2)/(float64(n)*0.08)) * (1 - depth) * wave
			c := sea.Lerp(shapestyle.Hex("#0B2A3A"), depth)
			put(img, x, y, c.Lerp(shapestyle.Hex("#FFD27F"), glint*0.8))
		}
	}
	return img
}

// puyo paints a grid of glossy colored blobs.
func puyo(n int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	palette := []shapestyle.RGBA{
		shapestyle.SystemRed,
		shapestyle.Hex("#34C759"),
		shapestyle.SystemBlue,
		shapestyle.SystemYellow,
		shapestyle.SystemPurple,
	}
	bg := shapestyle.Hex("#1C1C1E")
	const cells = 6
	cell := float64(n) / cells
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			i, j := int(fx/cell), int(fy/cell)
			lx := fx - (float64(i)+0.5)*cell
			ly := fy - (float64(j)+0.5)*cell
			r := cell * 0.45
			d := math.Hypot(lx, ly)
			cov := clampUnit(r - d + 0.5)
			if cov == 0 {
				put(img, x, y, bg)
				continue
			}
			base := palette[(i*7+j*3)%len(palette)]
			hl := math.Exp(-math.Hypot(lx+r*0.35, ly+r*0.35) / (r * 0.25))
			c := base.Lerp(shapestyle.White, hl*0.7).Lerp(shapestyle.Black, clampUnit(d/r)*0.3)
			put(img, x, y, bg.Lerp(c, cov))
		}
	}
	return img
}

// nasa paints a starfield with a lit planet.
func nasa(n int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	fn := float64(n)
	cx, cy, r := fn*0.62, fn*0.58, fn*0.28
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			c := shapestyle.Hex("#05060F")
			if h := hash21(float64(x), float64(y)); h > 0.996 {
				c = shapestyle.White.Lerp(c, (1-h)*200)
			}
			dx, dy := fx-cx, fy-cy
			if d := math.Hypot(dx, dy); d < r+1 {
				light := clampUnit(0.25 + 0.75*(-dx-dy)/(r*1.4))
				band := 0.5 + 0.5*math.Sin(dy/r*9)
				planet := shapestyle.Hex("#2E6FD8").Lerp(shapestyle.Hex("#9BD3F5"), band*0.4)
				planet = shapestyle.Black.Lerp(planet, light)
				c = c.Lerp(planet, clampUnit(r-d+0.5))
			}
			put(img, x, y, c)
		}
	}
	return img
}

// hash21 is the pseudo-random cell hash shared with the WGSL programs.
func hash21(x, y float64) float64 {
	v := math.Sin(x*127.1+y*311.7) * 43758.5453
	return v - math.Floor(v)
}
