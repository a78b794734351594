package gooey

import (
	"math"
	"strconv"
	"strings"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
	// End returns the point the element leaves the pen at.
	End() Point
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// End returns the target point.
func (e MoveTo) End() Point { return e.Point }

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// End returns the target point.
func (e LineTo) End() Point { return e.Point }

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// End returns the target point.
func (e CubicTo) End() Point { return e.Point }

// Close closes the current subpath. Its End is undefined (zero) because
// the subpath start is held by the Path, not the element.
type Close struct{}

func (Close) isPathElement() {}

// End returns the zero Point.
func (Close) End() Point { return Point{} }

// Path is an ordered list of segments describing one contour.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 8),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve to pt.
func (p *Path) CubicTo(pt, ctrl1, ctrl2 Point) {
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Bounds returns the bounding box of every point and control point in the
// path. An empty path has an empty Rect.
func (p *Path) Bounds() Rect {
	if len(p.elements) == 0 {
		return Rect{}
	}
	first := true
	var r Rect
	add := func(pt Point) {
		if first {
			r = Rect{Min: pt, Max: pt}
			first = false
			return
		}
		r = r.Union(Rect{Min: pt, Max: pt})
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	return r
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(c Point, r float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := r * k
	cx, cy := c.X, c.Y

	p.MoveTo(Pt(cx+r, cy))
	p.CubicTo(Pt(cx, cy+r), Pt(cx+r, cy+offset), Pt(cx+offset, cy+r))
	p.CubicTo(Pt(cx-r, cy), Pt(cx-offset, cy+r), Pt(cx-r, cy+offset))
	p.CubicTo(Pt(cx, cy-r), Pt(cx-r, cy-offset), Pt(cx-offset, cy-r))
	p.CubicTo(Pt(cx+r, cy), Pt(cx+offset, cy-r), Pt(cx+r, cy-offset))
	p.Close()
}

// RoundedRectangle adds a rectangle with rounded corners.
func (p *Path) RoundedRectangle(rect Rect, r float64) {
	x, y, w, h := rect.Min.X, rect.Min.Y, rect.Width(), rect.Height()
	// Clamp radius to half of the smaller dimension
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	k := 0.5522847498307936 * r

	p.MoveTo(Pt(x+r, y))
	p.LineTo(Pt(x+w-r, y))
	p.CubicTo(Pt(x+w, y+r), Pt(x+w-r+k, y), Pt(x+w, y+r-k))
	p.LineTo(Pt(x+w, y+h-r))
	p.CubicTo(Pt(x+w-r, y+h), Pt(x+w, y+h-r+k), Pt(x+w-r+k, y+h))
	p.LineTo(Pt(x+r, y+h))
	p.CubicTo(Pt(x, y+h-r), Pt(x+r-k, y+h), Pt(x, y+h-r+k))
	p.LineTo(Pt(x, y+r))
	p.CubicTo(Pt(x+r, y), Pt(x, y+r-k), Pt(x+r-k, y))
	p.Close()
}

// SVG returns the path as SVG path data ("M x y C ... L ... Z").
func (p *Path) SVG() string {
	var b strings.Builder
	num := func(v float64) {
		b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	pt := func(v Point) {
		num(v.X)
		b.WriteByte(' ')
		num(v.Y)
	}
	for i, elem := range p.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch e := elem.(type) {
		case MoveTo:
			b.WriteString("M ")
			pt(e.Point)
		case LineTo:
			b.WriteString("L ")
			pt(e.Point)
		case CubicTo:
			b.WriteString("C ")
			pt(e.Control1)
			b.WriteByte(' ')
			pt(e.Control2)
			b.WriteByte(' ')
			pt(e.Point)
		case Close:
			b.WriteString("Z")
		}
	}
	return b.String()
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
