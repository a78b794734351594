package gooey

import "math"

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// RectXYWH creates a rectangle from its origin and size.
func RectXYWH(x, y, w, h float64) Rect {
	return NewRect(Pt(x, y), Pt(x+w, y+h))
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return r.Min
}

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Point {
	return Point{X: r.Min.X, Y: r.Max.Y}
}

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point {
	return r.Max
}

// Translate returns the rectangle moved by dx, dy. The size is unchanged.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Min: r.Min.Translate(dx, dy), Max: r.Max.Translate(dx, dy)}
}

// MoveTo returns a rectangle of the same size with its origin at p.
func (r Rect) MoveTo(p Point) Rect {
	return r.Translate(p.X-r.Min.X, p.Y-r.Min.Y)
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// -------------------------------------------------------------------
// Circle
// -------------------------------------------------------------------

// Circle is a center and a radius.
type Circle struct {
	Center Point
	Radius float64
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Apex returns the curve midpoint, Eval(0.5).
func (c CubicBez) Apex() Point {
	return c.Eval(0.5)
}

// Sample evaluates the curve at each parameter in ts.
func (c CubicBez) Sample(ts []float64) []Point {
	pts := make([]Point, len(ts))
	for i, t := range ts {
		pts[i] = c.Eval(t)
	}
	return pts
}

// BoundingBox returns the bounding box of the control polygon, which
// contains the curve.
func (c CubicBez) BoundingBox() Rect {
	return NewRect(c.P0, c.P3).
		Union(NewRect(c.P1, c.P2))
}
