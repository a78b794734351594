package gooey

import (
	"fmt"
	"math"
)

// DefaultAvulsionDistance is the snap threshold used by sessions when the
// blob is at least this wide.
const DefaultAvulsionDistance = 140.0

// DefaultAvulsion returns the snap threshold for a blob of the given width:
// DefaultAvulsionDistance, or the width itself for narrower blobs.
func DefaultAvulsion(width float64) float64 {
	return math.Min(DefaultAvulsionDistance, width)
}

// AvulsionState reports whether the neck has snapped.
type AvulsionState uint8

const (
	// Armed means the travel threshold has not been crossed.
	Armed AvulsionState = iota
	// Latched means the threshold was crossed and the neck is flattened.
	Latched
)

// String returns the state name.
func (s AvulsionState) String() string {
	switch s {
	case Armed:
		return "armed"
	case Latched:
		return "latched"
	}
	return "unknown"
}

// Engine computes the outline of a gooey blob anchored to a fixed baseline.
//
// An Engine is created once per drag session and fed the current blob
// rectangle on every position change. It keeps the minimal state needed
// for frame-to-frame stability: the previous baseline anchors, the last
// known-good control points, the constriction state and the avulsion
// latch.
//
// Engine is not safe for concurrent use; serialize calls to Recompute.
type Engine struct {
	radius       float64
	avulsionDist float64
	width        float64
	height       float64
	baseline     Rect
	rest         Rect
	debug        bool

	restBaseLeft  Point
	restBaseRight Point

	// Mutable per-frame state.
	baseLeft     Point
	baseRight    Point
	apexLeft     Point
	apexRight    Point
	constriction ConstrictionState
	latch        AvulsionState
	guarded      bool

	initial Frame
}

// NewEngine creates an engine for a blob resting at rest above (or inside)
// the baseline region. radius is the blob's corner radius and avulsion the
// travel distance at which the neck snaps.
//
// NewEngine panics if radius or avulsion is negative or NaN, if the blob
// has no area, or if the baseline is narrower than 2*radius. These are
// programming errors in the caller.
func NewEngine(rest, baseline Rect, radius, avulsion float64, opts ...Option) *Engine {
	switch {
	case math.IsNaN(radius) || radius < 0:
		panic(fmt.Sprintf("gooey: corner radius must be >= 0, got %v", radius))
	case math.IsNaN(avulsion) || avulsion < 0:
		panic(fmt.Sprintf("gooey: avulsion distance must be >= 0, got %v", avulsion))
	case !(rest.Width() > 0) || !(rest.Height() > 0):
		panic(fmt.Sprintf("gooey: blob must have positive size, got %vx%v", rest.Width(), rest.Height()))
	case !(baseline.Width() >= 2*radius):
		panic(fmt.Sprintf("gooey: baseline width %v is narrower than 2*radius (%v)", baseline.Width(), 2*radius))
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		radius:       radius,
		avulsionDist: avulsion,
		width:        rest.Width(),
		height:       rest.Height(),
		baseline:     baseline,
		rest:         rest,
		debug:        o.debugUnlatched,
	}

	a := rest.BottomLeft()
	b := rest.BottomRight()
	e.restBaseLeft = Point{X: math.Max(baseline.Min.X, a.X), Y: baseline.Min.Y}
	e.restBaseRight = Point{X: math.Min(baseline.Max.X, b.X), Y: baseline.Min.Y}
	e.baseLeft = e.restBaseLeft
	e.baseRight = e.restBaseRight

	e.initial = e.Recompute(rest)
	return e
}

// Initial returns the frame computed for the rest position at construction.
func (e *Engine) Initial() Frame {
	return e.initial
}

// Constriction returns the current constriction state.
func (e *Engine) Constriction() ConstrictionState {
	return e.constriction
}

// Avulsion returns the current avulsion state.
func (e *Engine) Avulsion() AvulsionState {
	return e.latch
}

// Rest returns the blob rectangle the engine was created with.
func (e *Engine) Rest() Rect {
	return e.rest
}

// Baseline returns the fixed baseline rectangle.
func (e *Engine) Baseline() Rect {
	return e.baseline
}

// Recompute returns the outline for the blob at its new position. Only the
// origin of blob is used; the blob keeps the size it had at construction.
func (e *Engine) Recompute(blob Rect) Frame {
	a := Point{X: blob.Min.X, Y: blob.Min.Y + e.height}
	b := Point{X: a.X + e.width, Y: a.Y}
	g := geometry{
		radius: e.radius,
		width:  e.width,
		height: e.height,
		a:      a,
		b:      b,
		travel: e.rest.Max.Y - a.Y,
	}
	lift := math.Max(0, g.travel)

	p0, p3 := e.baselinePoints(a, lift)
	e.baseLeft, e.baseRight = p0, p3

	n, crossed := g.reconcile(p0, p3, g.newNeck(p0, p3), e.apexLeft, e.apexRight)
	e.setConstriction(crossed, lift)
	if !crossed {
		e.apexLeft = n.cpLeft2
		e.apexRight = n.cpRight2
	}
	if e.guarded {
		n = g.keepGap(n, p0, p3)
	}

	e.setLatch(lift)
	below := a.Y-e.height >= e.baseline.Min.Y
	flat := below || e.latch == Latched
	if flat {
		n = g.flatten(p0, p3)
	}

	return Frame{
		Path: n.path(p0, p3),
		Points: Points{
			BaseLeft:      p0,
			BaseRight:     p3,
			ControlLeft1:  n.cpLeft1,
			ControlLeft2:  n.cpLeft2,
			ControlRight1: n.cpRight1,
			ControlRight2: n.cpRight2,
			TopLeft:       n.topLeft,
			TopRight:      n.topRight,
			CornerA:       a,
			CornerB:       b,
			ApexLeft:      n.leftCurve(p0).Apex(),
			ApexRight:     n.rightCurve(p3).Apex(),
		},
		Travel:       g.travel,
		Constriction: e.constriction,
		Avulsion:     e.latch,
		Flattened:    flat,
	}
}

// baselinePoints returns the left and right anchors for a blob whose
// bottom-left corner is a, lifted lift above rest. The anchors slide from
// R outside the rest anchors toward R inside them as lift approaches the
// avulsion distance, following the blob's horizontal drift. While
// constricted, or when the anchors would come closer than width-2R, the
// previous anchors are kept.
func (e *Engine) baselinePoints(a Point, lift float64) (Point, Point) {
	frac := 1.0
	if e.avulsionDist > 0 {
		frac = math.Min(1, lift/e.avulsionDist)
	} else if lift == 0 {
		frac = 0
	}

	lo, hi := e.baseline.Min.X, e.baseline.Max.X
	drift := a.X - e.rest.Min.X
	r := e.radius

	x0start := clamp(e.restBaseLeft.X-r+drift, lo, hi)
	x0finish := clamp(e.restBaseLeft.X+r+drift, lo, hi)
	x3start := clamp(e.restBaseRight.X+r+drift, lo, hi)
	x3finish := clamp(e.restBaseRight.X-r+drift, lo, hi)

	y := e.baseline.Min.Y
	p0 := Point{X: x0start + (x0finish-x0start)*frac, Y: y}
	p3 := Point{X: x3start + (x3finish-x3start)*frac, Y: y}

	if e.constriction == Constricted || p3.X-p0.X < e.width-2*r {
		return e.baseLeft, e.baseRight
	}
	return p0, p3
}

func (e *Engine) setConstriction(crossed bool, lift float64) {
	next := Open
	if crossed {
		next = Constricted
		e.guarded = true
	}
	if next != e.constriction {
		logTransition("constriction", e.constriction, next, "travel", lift)
	}
	e.constriction = next
}

func (e *Engine) setLatch(lift float64) {
	next := Armed
	switch {
	case e.latch == Latched && !e.debug:
		next = Latched
	case lift > e.avulsionDist:
		next = Latched
	}
	if next != e.latch {
		logTransition("avulsion", e.latch, next, "travel", lift, "threshold", e.avulsionDist)
	}
	e.latch = next
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
