package shapestyle

import (
	"math"
	"time"
)

// SignConvention selects how Clock.Elapsed signs the interval.
type SignConvention uint8

const (
	// IntervalSinceNow reports start minus now: zero at the start instant
	// and increasingly negative afterwards. Shader phases were tuned
	// against this convention, so it is the default.
	IntervalSinceNow SignConvention = iota
	// SinceStart reports now minus start, a non-negative growing value.
	SinceStart
)

// Clock is the animation time source. It is anchored at a fixed start
// instant and sampled once per frame; no smoothing, easing or clamping is
// applied. A Clock is immutable and safe for concurrent use.
type Clock struct {
	start      time.Time
	now        func() time.Time
	convention SignConvention
}

// ClockOption configures a Clock.
type ClockOption func(*Clock)

// WithNow replaces the wall clock, for tests and offline rendering.
// The start instant is taken from now at construction unless WithStart
// is also given.
func WithNow(now func() time.Time) ClockOption {
	return func(c *Clock) {
		c.now = now
	}
}

// WithStart anchors the clock at a specific instant.
func WithStart(start time.Time) ClockOption {
	return func(c *Clock) {
		c.start = start
	}
}

// WithSignConvention selects the sign of Elapsed.
func WithSignConvention(sc SignConvention) ClockOption {
	return func(c *Clock) {
		c.convention = sc
	}
}

// NewClock creates a clock anchored at the current instant.
//
// Example:
//
//	clock := shapestyle.NewClock()
//	theta := clock.Elapsed() // sampled once per frame
func NewClock(opts ...ClockOption) *Clock {
	c := &Clock{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	if c.start.IsZero() {
		c.start = c.now()
	}
	return c
}

// Start returns the anchor instant.
func (c *Clock) Start() time.Time { return c.start }

// Convention returns the sign convention.
func (c *Clock) Convention() SignConvention { return c.convention }

// Elapsed returns the signed seconds between the start instant and now.
// Its magnitude never decreases while the underlying clock is monotonic.
func (c *Clock) Elapsed() float64 {
	return c.At(c.now())
}

// At returns the elapsed value the clock would report at instant t.
func (c *Clock) At(t time.Time) float64 {
	d := t.Sub(c.start).Seconds()
	if c.convention == IntervalSinceNow {
		return -d
	}
	return d
}

// Oscillation returns the offset pair (r*sin θ, r*cos θ) consumers use for
// circular motion, with θ taken directly from an elapsed sample.
func Oscillation(radius, theta float64) Point {
	return Point{X: radius * math.Sin(theta), Y: radius * math.Cos(theta)}
}
