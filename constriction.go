package gooey

import "math"

// crossSamples are the curve parameters compared when looking for a
// crossing between the two sides of the neck.
var crossSamples = []float64{0.3, 0.4, 0.5, 0.6}

// crossTolerance is how close (in X) a right-side sample may come to a
// left-side sample before the neck counts as crossed.
const crossTolerance = 1.0

// ConstrictionState reports whether the self-intersection guard is holding
// the neck's control points.
type ConstrictionState uint8

const (
	// Open means the last candidate neck did not cross itself.
	Open ConstrictionState = iota
	// Constricted means the candidate crossed and the last known-good
	// control points were used instead.
	Constricted
)

// String returns the state name.
func (s ConstrictionState) String() string {
	switch s {
	case Open:
		return "open"
	case Constricted:
		return "constricted"
	}
	return "unknown"
}

// crosses reports whether any sampled point of right lies within
// crossTolerance of, or to the left of, any sampled point of left.
// This is a sampling heuristic, not an exact intersection test.
func crosses(left, right CubicBez) bool {
	lps := left.Sample(crossSamples)
	rps := right.Sample(crossSamples)
	for _, lp := range lps {
		for _, rp := range rps {
			if rp.X-lp.X <= crossTolerance {
				return true
			}
		}
	}
	return false
}

// reconcile checks the candidate neck for a crossing. If it crosses, the
// returned neck has every control point pinned to the X of the last
// known-good apex control points, with tangent points recomputed from
// them. Otherwise the candidate is returned unchanged.
func (g geometry) reconcile(p0, p3 Point, candidate neck, lastLeft, lastRight Point) (neck, bool) {
	if !crosses(candidate.leftCurve(p0), candidate.rightCurve(p3)) {
		return candidate, false
	}

	n := candidate
	n.cpLeft1.X = lastLeft.X
	n.cpLeft2.X = lastLeft.X
	n.cpRight1.X = lastRight.X
	n.cpRight2.X = lastRight.X
	n.topLeft = g.topLeft(n.cpLeft2, p0)
	n.topRight = g.topRight(n.cpRight2, p3)
	return n, true
}

// keepGap replaces the top corner points with their fallback points when
// they are closer together than minGap. The fallbacks end up minGap apart,
// rounded up to the next representable gap.
func (g geometry) keepGap(n neck, p0, p3 Point) neck {
	if n.topRight.X-n.topLeft.X >= g.minGap() {
		return n
	}
	n.topLeft = g.fallback(g.cornerCircle(g.a, 1, p0))
	n.topRight = g.fallback(g.cornerCircle(g.b, -1, p3))
	// Place the right point from the left one; rounding must not shrink the gap.
	x := n.topLeft.X + g.minGap()
	for x-n.topLeft.X < g.minGap() {
		x = math.Nextafter(x, math.Inf(1))
	}
	n.topRight.X = x
	return n
}
