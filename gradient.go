package shapestyle

import (
	"fmt"
	"math"
	"sort"
)

// GradientKind selects the geometry of a Gradient.
type GradientKind uint8

const (
	// GradientLinear interpolates along an axis between two unit points.
	GradientLinear GradientKind = iota
	// GradientRadial interpolates between two radii around a center.
	GradientRadial
	// GradientAngular interpolates around a center (a conic gradient).
	GradientAngular
)

// String returns the gradient kind name.
func (k GradientKind) String() string {
	switch k {
	case GradientLinear:
		return "linear"
	case GradientRadial:
		return "radial"
	case GradientAngular:
		return "angular"
	default:
		return fmt.Sprintf("GradientKind(%d)", uint8(k))
	}
}

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

var extendNames = [...]string{"pad", "repeat", "reflect"}

// String returns the extend mode name.
func (m ExtendMode) String() string {
	if m >= 0 && int(m) < len(extendNames) {
		return extendNames[m]
	}
	return fmt.Sprintf("ExtendMode(%d)", int(m))
}

// ParseExtendMode returns the extend mode with the given name.
func ParseExtendMode(name string) (ExtendMode, error) {
	for i, n := range extendNames {
		if n == name {
			return ExtendMode(i), nil
		}
	}
	return ExtendPad, &SelectionError{Catalog: "extend", Value: name}
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Radial geometry used by the colors page.
const (
	RadialStartRadius = 0
	RadialEndRadius   = 150
)

// sixColors is the stop sequence shared by every catalog gradient.
// It is never handed out directly; see SixColors and SixColorStops.
var sixColors = [6]RGBA{
	RGB(0.3824993372, 0.7338115573, 0.2725535631),
	RGB(0.9938793778, 0.7221048474, 0.1543448567),
	RGB(0.9527568221, 0.5061939955, 0.1218801513),
	RGB(0.872074008, 0.2261180282, 0.2434217036),
	RGB(0.5873757005, 0.2372255325, 0.5935613513),
	RGB(0, 0.6172699332, 0.8605360389),
}

// SixColors returns a copy of the shared gradient color sequence.
func SixColors() []RGBA {
	out := make([]RGBA, len(sixColors))
	copy(out, sixColors[:])
	return out
}

// SixColorStops returns the shared colors as evenly spaced stops.
func SixColorStops() []ColorStop {
	return EvenStops(sixColors[:]...)
}

// EvenStops distributes colors evenly over [0, 1].
func EvenStops(colors ...RGBA) []ColorStop {
	stops := make([]ColorStop, len(colors))
	for i, c := range colors {
		offset := 0.0
		if len(colors) > 1 {
			offset = float64(i) / float64(len(colors)-1)
		}
		stops[i] = ColorStop{Offset: offset, Color: c}
	}
	return stops
}

// Gradient describes a gradient independently of where it is painted.
// Positions are unit points relative to the painted bounds; radii are
// absolute.
//
// Example:
//
//	g := shapestyle.Gradient{
//	    Kind:      shapestyle.GradientRadial,
//	    Stops:     shapestyle.SixColorStops(),
//	    Center:    shapestyle.UnitCenter,
//	    EndRadius: 150,
//	}
//	c := g.ColorAt(120, 80, shapestyle.RectFromSize(shapestyle.Size{W: 300, H: 300}))
type Gradient struct {
	Kind  GradientKind
	Stops []ColorStop

	// Linear axis.
	Start, End UnitPoint

	// Radial and angular center.
	Center UnitPoint

	// Radial extent, in points.
	StartRadius, EndRadius float64

	// Angular sweep, in radians.
	StartAngle, EndAngle float64

	Extend ExtendMode
}

// ColorAt returns the gradient color at (x, y) when painted into bounds.
func (g Gradient) ColorAt(x, y float64, bounds Rect) RGBA {
	var t float64
	switch g.Kind {
	case GradientLinear:
		s, e := g.Start.In(bounds), g.End.In(bounds)
		dx, dy := e.X-s.X, e.Y-s.Y
		lengthSq := dx*dx + dy*dy
		if lengthSq == 0 {
			return firstStopColor(g.Stops)
		}
		// t = dot(P - Start, End - Start) / |End - Start|^2
		t = ((x-s.X)*dx + (y-s.Y)*dy) / lengthSq
	case GradientRadial:
		diff := g.EndRadius - g.StartRadius
		if diff == 0 {
			return firstStopColor(g.Stops)
		}
		c := g.Center.In(bounds)
		t = (math.Hypot(x-c.X, y-c.Y) - g.StartRadius) / diff
	case GradientAngular:
		c := g.Center.In(bounds)
		dx, dy := x-c.X, y-c.Y
		sweep := g.EndAngle - g.StartAngle
		if (dx == 0 && dy == 0) || sweep == 0 {
			return firstStopColor(g.Stops)
		}
		t = normalizeAngle(math.Atan2(dy, dx)-g.StartAngle, sweep) / sweep
	default:
		return Transparent
	}
	return colorAtOffset(g.Stops, t, g.Extend)
}

// clone returns a copy that shares no stop storage with g.
func (g Gradient) clone() Gradient {
	g.Stops = append([]ColorStop(nil), g.Stops...)
	return g
}

// sortStops sorts a copy of the color stops by offset.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// colorAtOffset returns the interpolated color at a given offset.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) RGBA {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = applyExtendMode(t, mode)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	s1, s2 := sorted[idx-1], sorted[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	return s1.Color.LerpLinear(s2.Color, (t-s1.Offset)/(s2.Offset-s1.Offset))
}

// firstStopColor returns the lowest-offset stop color or Transparent.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return sortStops(stops)[0].Color
}

// normalizeAngle wraps angle into the sweep direction's first turn.
func normalizeAngle(angle, sweep float64) float64 {
	twoPi := 2 * math.Pi
	angle = math.Mod(angle, twoPi)
	if sweep > 0 && angle < 0 {
		angle += twoPi
	}
	if sweep < 0 && angle > 0 {
		angle -= twoPi
	}
	return angle
}
