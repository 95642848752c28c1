// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package preview

import (
	"testing"

	"github.com/gogpu/shapestyle"
)

func covered(pix []uint8) int {
	n := 0
	for _, a := range pix {
		if a > 0 {
			n++
		}
	}
	return n
}

func TestTextRenderer_Advance(t *testing.T) {
	tr := testPainter(t).Text()
	if got := tr.Advance("", 40); got != 0 {
		t.Errorf("Advance(empty) = %v, want 0", got)
	}
	short := tr.Advance("AB", 40)
	long := tr.Advance("ABCD", 40)
	if short <= 0 || long <= short {
		t.Errorf("Advance(AB) = %v, Advance(ABCD) = %v, want increasing positive widths", short, long)
	}
	if double := tr.Advance("AB", 80); double < short*1.9 || double > short*2.1 {
		t.Errorf("Advance at twice the size = %v, want about %v", double, 2*short)
	}
}

func TestTextRenderer_FitSize(t *testing.T) {
	tr := testPainter(t).Text()
	tests := []struct {
		name string
		w, h int
	}{
		{"wide", 800, 100},
		{"narrow", 120, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size := tr.FitSize(shapestyle.MixText, tt.w, tt.h)
			if size > float64(tt.h)*0.7+1e-9 {
				t.Errorf("FitSize() = %v, exceeds height cap", size)
			}
			if adv := tr.Advance(shapestyle.MixText, size); adv > float64(tt.w) {
				t.Errorf("text at fitted size is %v wide, want <= %d", adv, tt.w)
			}
		})
	}
}

func TestTextRenderer_Mask(t *testing.T) {
	tr := testPainter(t).Text()
	m, err := tr.Mask(shapestyle.VoronoiText, 200, 80)
	if err != nil {
		t.Fatalf("Mask() error = %v", err)
	}
	if b := m.Bounds(); b.Dx() != 200 || b.Dy() != 80 {
		t.Fatalf("bounds = %v, want 200x80", b)
	}
	if n := covered(m.Pix); n == 0 {
		t.Error("mask has no coverage")
	}
	// Centered text leaves the corners clear.
	for _, p := range [][2]int{{0, 0}, {199, 0}, {0, 79}, {199, 79}} {
		if a := m.AlphaAt(p[0], p[1]).A; a != 0 {
			t.Errorf("corner %v coverage = %d, want 0", p, a)
		}
	}

	again, err := tr.Mask(shapestyle.VoronoiText, 200, 80)
	if err != nil || again != m {
		t.Error("Mask() did not reuse the cached mask")
	}

	empty, err := tr.MaskAt("X", 0, 10, 12)
	if err != nil || empty.Bounds().Dx() != 0 {
		t.Errorf("MaskAt(w=0) = %v, %v; want empty mask", empty.Bounds(), err)
	}
}

func TestNewTextRendererFromTTF_Invalid(t *testing.T) {
	if _, err := NewTextRendererFromTTF([]byte("not a font")); err == nil {
		t.Error("NewTextRendererFromTTF(garbage) error = nil, want error")
	}
}
