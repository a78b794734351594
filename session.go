package gooey

// Session hosts one blob being dragged away from its baseline. It turns
// gesture translations into blob positions and rebuilds the engine when a
// drag ends, which re-arms the avulsion latch.
//
// Session is not safe for concurrent use.
type Session struct {
	rest     Rect
	baseline Rect
	radius   float64
	avulsion float64
	opts     []Option

	engine *Engine
	blob   Rect
}

// NewSession creates a session using DefaultAvulsion for the blob width.
func NewSession(rest, baseline Rect, radius float64, opts ...Option) *Session {
	return NewSessionWithAvulsion(rest, baseline, radius, DefaultAvulsion(rest.Width()), opts...)
}

// NewSessionWithAvulsion creates a session with an explicit avulsion
// distance. It panics under the same conditions as NewEngine.
func NewSessionWithAvulsion(rest, baseline Rect, radius, avulsion float64, opts ...Option) *Session {
	s := &Session{
		rest:     rest,
		baseline: baseline,
		radius:   radius,
		avulsion: avulsion,
		opts:     opts,
		blob:     rest,
	}
	s.engine = NewEngine(rest, baseline, radius, avulsion, opts...)
	return s
}

// Move places the blob at rest translated by the cumulative gesture
// translation (dx, dy) and returns the new frame.
func (s *Session) Move(dx, dy float64) Frame {
	s.blob = s.rest.Translate(dx, dy)
	return s.engine.Recompute(s.blob)
}

// End finishes the drag: the blob returns to rest and a fresh engine is
// built. The returned frame is the fresh engine's rest frame.
func (s *Session) End() Frame {
	was := s.engine.Avulsion()
	s.blob = s.rest
	s.engine = NewEngine(s.rest, s.baseline, s.radius, s.avulsion, s.opts...)
	Logger().Info("gooey: drag ended", "avulsion", was)
	return s.engine.Initial()
}

// Blob returns the current blob rectangle.
func (s *Session) Blob() Rect {
	return s.blob
}

// Baseline returns the baseline rectangle.
func (s *Session) Baseline() Rect {
	return s.baseline
}

// Radius returns the blob corner radius.
func (s *Session) Radius() float64 {
	return s.radius
}

// Engine returns the engine serving the current drag.
func (s *Session) Engine() *Engine {
	return s.engine
}
