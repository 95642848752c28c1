package shapestyle

// Point represents a 2D point or vector in points.
type Point struct {
	X, Y float64
}

// Pt is a shorthand constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Size is a width/height pair in floating-point pixels.
type Size struct {
	W, H float64
}

// Empty reports whether either dimension is not positive.
// An empty size cannot serve as a viewport.
func (s Size) Empty() bool {
	return !(s.W > 0 && s.H > 0)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Point
}

// RectFromSize returns the rectangle at the origin with the given size.
func RectFromSize(s Size) Rect {
	return Rect{Max: Point{X: s.W, Y: s.H}}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{W: r.Width(), H: r.Height()} }

// UnitPoint is a position relative to some bounds: (0, 0) is the top-left
// corner and (1, 1) the bottom-right.
type UnitPoint struct {
	X, Y float64
}

// Unit points used by the gradient catalog.
var (
	UnitLeading  = UnitPoint{X: 0, Y: 0.5}
	UnitTrailing = UnitPoint{X: 1, Y: 0.5}
	UnitCenter   = UnitPoint{X: 0.5, Y: 0.5}
)

// In maps the unit point into absolute coordinates within r.
func (u UnitPoint) In(r Rect) Point {
	return Point{
		X: r.Min.X + u.X*r.Width(),
		Y: r.Min.Y + u.Y*r.Height(),
	}
}

// RenderTarget is anything that can report the size of the surface a
// style will be painted into. Targets that have not been laid out yet
// report false.
type RenderTarget interface {
	Viewport() (Size, bool)
}

// FixedViewport is a RenderTarget with a constant size.
type FixedViewport Size

// Viewport implements RenderTarget.
func (v FixedViewport) Viewport() (Size, bool) {
	s := Size(v)
	return s, !s.Empty()
}
