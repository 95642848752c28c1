package shapestyle

import (
	"math"
	"testing"
	"time"
)

func fakeNow(t *time.Time) func() time.Time {
	return func() time.Time { return *t }
}

func TestClock_IntervalSinceNow(t *testing.T) {
	now := time.Unix(1000, 0)
	c := NewClock(WithNow(fakeNow(&now)))

	if got := c.Elapsed(); got != 0 {
		t.Errorf("Elapsed() at start = %v, want 0", got)
	}
	now = now.Add(2 * time.Second)
	if got := c.Elapsed(); got != -2 {
		t.Errorf("Elapsed() after 2s = %v, want -2", got)
	}

	prev := math.Abs(c.Elapsed())
	for i := 0; i < 5; i++ {
		now = now.Add(16 * time.Millisecond)
		mag := math.Abs(c.Elapsed())
		if mag < prev {
			t.Fatalf("magnitude decreased: %v < %v", mag, prev)
		}
		prev = mag
	}
}

func TestClock_SinceStart(t *testing.T) {
	start := time.Unix(50, 0)
	now := start.Add(750 * time.Millisecond)
	c := NewClock(WithStart(start), WithNow(fakeNow(&now)), WithSignConvention(SinceStart))

	if got := c.Elapsed(); got != 0.75 {
		t.Errorf("Elapsed() = %v, want 0.75", got)
	}
	if c.Start() != start || c.Convention() != SinceStart {
		t.Errorf("Start() = %v, Convention() = %v", c.Start(), c.Convention())
	}
	if got := c.At(start.Add(3 * time.Second)); got != 3 {
		t.Errorf("At(+3s) = %v, want 3", got)
	}
}

func TestOscillation(t *testing.T) {
	tests := []struct {
		radius, theta float64
		want          Point
	}{
		{5, 0, Point{X: 0, Y: 5}},
		{5, math.Pi / 2, Point{X: 5, Y: 0}},
		{2, math.Pi, Point{X: 0, Y: -2}},
	}
	for _, tt := range tests {
		got := Oscillation(tt.radius, tt.theta)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("Oscillation(%v, %v) = %+v, want %+v", tt.radius, tt.theta, got, tt.want)
		}
	}
}
