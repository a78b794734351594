package gooey

import "math"

// IntersectCircles returns the intersection points of two circles.
//
// Two crossing circles yield two distinct points. Externally touching
// circles yield the touching point and a zero Point. Disjoint circles,
// one circle inside the other, and identical circles yield two zero
// Points: callers treat (zero, zero) as "no usable intersection" and fall
// back to a default point. The result never contains NaN.
//
// Swapping c1 and c2 returns the same pair of points in the other order.
//
// See http://paulbourke.net/geometry/circlesphere/ for the derivation.
func IntersectCircles(c1, c2 Circle) (Point, Point) {
	r1, r2 := c1.Radius, c2.Radius
	d := c1.Center.Distance(c2.Center)

	// No solutions
	if d > r1+r2 {
		return Point{}, Point{}
	}
	// One circle contained within the other
	if d < math.Abs(r1-r2) {
		return Point{}, Point{}
	}
	// Coincident
	if d == 0 {
		return Point{}, Point{}
	}
	if math.IsNaN(d) {
		return Point{}, Point{}
	}

	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h2 := r1*r1 - a*a
	h := 0.0
	if h2 > 0 {
		h = math.Sqrt(h2)
	}

	// p is where the chord through the intersections crosses the center line.
	dx := c2.Center.X - c1.Center.X
	dy := c2.Center.Y - c1.Center.Y
	p := Point{
		X: c1.Center.X + (a/d)*dx,
		Y: c1.Center.Y + (a/d)*dy,
	}

	// Touching from outside
	if d == r1+r2 {
		return p, Point{}
	}

	off := Point{X: (h / d) * dy, Y: -(h / d) * dx}
	return p.Add(off), p.Sub(off)
}

// tangentPoints returns the points where the tangents from an external
// point touch circle c. mid is the midpoint between c.Center and that
// external point; by Thales' theorem the tangent points lie on the circle
// through c.Center centered at mid.
func tangentPoints(c Circle, mid Point) (Point, Point) {
	return IntersectCircles(c, Circle{Center: mid, Radius: c.Center.Distance(mid)})
}
