package gooey

import "math"

// Concavity of the neck grows 5% faster than the travel distance.
const concavityGain = 1.05

// geometry is the immutable per-frame input to the neck computations:
// fixed shape parameters plus the current blob bottom corners.
type geometry struct {
	radius float64
	width  float64
	height float64

	a, b Point // blob bottom-left, bottom-right

	// travel is the signed lift of the blob above its rest position.
	travel float64
}

// aspectDivisor softens how far control points are pushed toward the
// blob corner: tall blobs use 1.05, wide blobs 1.3.
func (g geometry) aspectDivisor() float64 {
	if g.width <= g.height {
		return 1.05
	}
	return 1.3
}

// controlPoints returns the two control points of the neck curve that
// starts at anchor. dir is Right for the left side of the neck (control
// points pulled inward, toward +X) and Left for the right side.
func (g geometry) controlPoints(anchor Point, dir Direction) (Point, Point) {
	k := g.aspectDivisor()
	concavity := math.Max(0, g.travel*concavityGain)

	cp1 := anchor
	switch dir {
	case Right:
		deltaX := math.Abs(anchor.X-g.a.X) / k
		cp1 = cp1.Move(Right, concavity)
		cp1.X = math.Max(anchor.X+deltaX, cp1.X)
	case Left:
		deltaX := math.Abs(anchor.X-g.b.X) / k
		cp1 = cp1.Move(Left, concavity)
		cp1.X = math.Min(anchor.X-deltaX, cp1.X)
	}
	cp1.Y = math.Min(anchor.Y, cp1.Y)

	cp2 := g.a.Move(Down, g.travel/4)
	cp2.X = cp1.X
	cp2.Y = math.Min(anchor.Y, cp2.Y)

	return cp1, cp2
}

// cornerCircle returns the rounded-corner circle at corner. The center sits
// R inside the corner, at least R above the anchor and at least R below the
// blob's top edge.
func (g geometry) cornerCircle(corner Point, inward float64, anchor Point) Circle {
	c := Point{X: corner.X + inward*g.radius, Y: corner.Y - g.radius}
	if anchor.Y-c.Y < g.radius {
		c.Y = anchor.Y - g.radius
	}
	c.Y = math.Max(c.Y, g.a.Y+g.radius-g.height)
	return Circle{Center: c, Radius: g.radius}
}

// fallback is the point used when the tangent construction degenerates.
func (g geometry) fallback(c Circle) Point {
	return Point{X: c.Center.X - g.radius, Y: c.Center.Y}
}

// topLeft returns the tangent point where the left neck curve, arriving
// through control point cp, meets the blob's bottom-left corner circle.
func (g geometry) topLeft(cp, anchor Point) Point {
	c := g.cornerCircle(g.a, 1, anchor)
	_, p := tangentPoints(c, c.Center.Midpoint(cp))
	if p.IsZero() {
		return g.fallback(c)
	}
	return p
}

// topRight is the mirror of topLeft on the bottom-right corner circle.
func (g geometry) topRight(cp, anchor Point) Point {
	c := g.cornerCircle(g.b, -1, anchor)
	p, _ := tangentPoints(c, c.Center.Midpoint(cp))
	if p.IsZero() {
		return g.fallback(c)
	}
	return p
}

// minGap is the narrowest horizontal distance allowed between the two
// top corner points.
func (g geometry) minGap() float64 {
	return g.width - 2*g.radius
}

// neck is one frame's worth of curve geometry between the two baseline
// anchors.
type neck struct {
	cpLeft1, cpLeft2   Point
	cpRight1, cpRight2 Point
	topLeft, topRight  Point
}

// newNeck computes the unconstrained neck for the given anchors.
func (g geometry) newNeck(p0, p3 Point) neck {
	var n neck
	n.cpLeft1, n.cpLeft2 = g.controlPoints(p0, Right)
	n.cpRight1, n.cpRight2 = g.controlPoints(p3, Left)
	n.topLeft = g.topLeft(n.cpLeft2, p0)
	n.topRight = g.topRight(n.cpRight2, p3)
	return n
}

// leftCurve runs from the left anchor up to the top-left corner.
func (n neck) leftCurve(p0 Point) CubicBez {
	return NewCubicBez(p0, n.cpLeft1, n.cpLeft2, n.topLeft)
}

// rightCurve runs from the top-right corner down to the right anchor.
func (n neck) rightCurve(p3 Point) CubicBez {
	return NewCubicBez(n.topRight, n.cpRight2, n.cpRight1, p3)
}

// flatten collapses the neck onto the baseline: both curves degenerate to
// points on the anchors and the top edge lies on the baseline.
func (g geometry) flatten(p0, p3 Point) neck {
	return neck{
		cpLeft1:  p0,
		cpLeft2:  p0,
		cpRight1: p3,
		cpRight2: p3,
		topLeft:  p0,
		topRight: Point{X: p0.X + g.width, Y: p0.Y},
	}
}

// path assembles the closed-along-the-baseline contour.
func (n neck) path(p0, p3 Point) *Path {
	p := NewPath()
	p.MoveTo(p0)
	p.CubicTo(n.topLeft, n.cpLeft1, n.cpLeft2)
	p.LineTo(n.topRight)
	p.CubicTo(p3, n.cpRight2, n.cpRight1)
	return p
}
