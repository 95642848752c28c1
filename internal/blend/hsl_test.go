package blend

import (
	"math"
	"testing"

	"github.com/gogpu/shapestyle"
)

func TestLumSat(t *testing.T) {
	tests := []struct {
		name     string
		c        rgb
		lum, sat float64
	}{
		{"black", rgb{0, 0, 0}, 0, 0},
		{"white", rgb{1, 1, 1}, 1, 0},
		{"red", rgb{1, 0, 0}, 0.30, 1},
		{"green", rgb{0, 1, 0}, 0.59, 1},
		{"blue", rgb{0, 0, 1}, 0.11, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lum(tt.c); math.Abs(got-tt.lum) > 1e-9 {
				t.Errorf("lum() = %v, want %v", got, tt.lum)
			}
			if got := sat(tt.c); math.Abs(got-tt.sat) > 1e-9 {
				t.Errorf("sat() = %v, want %v", got, tt.sat)
			}
		})
	}
}

func TestSetSat_KeepsOrder(t *testing.T) {
	got := setSat(rgb{0.2, 0.8, 0.5}, 0.3)
	want := rgb{0, 0.3, 0.15}
	if math.Abs(got.r-want.r) > 1e-9 || math.Abs(got.g-want.g) > 1e-9 || math.Abs(got.b-want.b) > 1e-9 {
		t.Errorf("setSat() = %+v, want %+v", got, want)
	}
	if g := setSat(rgb{0.4, 0.4, 0.4}, 0.5); g != (rgb{}) {
		t.Errorf("setSat(gray) = %+v, want zero", g)
	}
}

func TestSetLum_ClipsIntoRange(t *testing.T) {
	got := setLum(rgb{1, 0, 0}, 0.5)
	if math.Abs(lum(got)-0.5) > 1e-9 {
		t.Errorf("lum(setLum()) = %v, want 0.5", lum(got))
	}
	for _, v := range []float64{got.r, got.g, got.b} {
		if v < 0 || v > 1 {
			t.Errorf("setLum() = %+v out of range", got)
		}
	}
}

func TestNonSeparableModes(t *testing.T) {
	tests := []struct {
		name     string
		src, dst shapestyle.RGBA
		mode     shapestyle.BlendMode
		wantLum  float64
	}{
		// Hue and Saturation take luminosity from the backdrop.
		{"hue", blue, red, shapestyle.BlendHue, 0.30},
		{"saturation", gray, red, shapestyle.BlendSaturation, 0.30},
		// Color keeps the backdrop luminosity, Luminosity takes the source's.
		{"color", red, gray, shapestyle.BlendColor, 0.5},
		{"luminosity", gray, red, shapestyle.BlendLuminosity, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Composite(tt.src, tt.dst, tt.mode)
			l := lum(rgb{got.R, got.G, got.B})
			if math.Abs(l-tt.wantLum) > 1e-6 {
				t.Errorf("Composite() = %+v, luminance %v, want %v", got, l, tt.wantLum)
			}
		})
	}

	// A gray source carries no saturation: the backdrop turns gray.
	got := Composite(gray, red, shapestyle.BlendSaturation)
	if math.Abs(got.R-got.G) > 1e-6 || math.Abs(got.G-got.B) > 1e-6 {
		t.Errorf("saturation(gray, red) = %+v, want gray", got)
	}
}
