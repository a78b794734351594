package gooey

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

// -------------------------------------------------------------------
// Point Tests
// -------------------------------------------------------------------

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("Sub() = %v, want (2, 3)", got)
	}
	if got := p.Translate(-3, 1); got != Pt(0, 5) {
		t.Errorf("Translate() = %v, want (0, 5)", got)
	}
	if got := p.Midpoint(Pt(5, 0)); got != Pt(4, 2) {
		t.Errorf("Midpoint() = %v, want (4, 2)", got)
	}
	if got := Pt(0, 0).Distance(p); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
	if !(Point{}).IsZero() || p.IsZero() {
		t.Error("IsZero() misreports")
	}
}

func TestPoint_Move(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Point
	}{
		{Left, Pt(8, 10)},
		{LeftUp, Pt(8, 8)},
		{Up, Pt(10, 8)},
		{RightUp, Pt(12, 8)},
		{Right, Pt(12, 10)},
		{RightDown, Pt(12, 12)},
		{Down, Pt(10, 12)},
		{LeftDown, Pt(8, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := Pt(10, 10).Move(tt.dir, 2); got != tt.want {
				t.Errorf("Move(%v, 2) = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
	if got := Direction(99).String(); got != "unknown" {
		t.Errorf("Direction(99).String() = %q", got)
	}
}

// -------------------------------------------------------------------
// Rect Tests
// -------------------------------------------------------------------

func TestRect_NewRect(t *testing.T) {
	tests := []struct {
		name      string
		p1, p2    Point
		expectMin Point
		expectMax Point
	}{
		{
			name: "normal order",
			p1:   Pt(0, 0), p2: Pt(10, 10),
			expectMin: Pt(0, 0), expectMax: Pt(10, 10),
		},
		{
			name: "reversed order",
			p1:   Pt(10, 10), p2: Pt(0, 0),
			expectMin: Pt(0, 0), expectMax: Pt(10, 10),
		},
		{
			name: "mixed",
			p1:   Pt(5, 0), p2: Pt(0, 5),
			expectMin: Pt(0, 0), expectMax: Pt(5, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(tt.p1, tt.p2)
			if !pointsEqual(r.Min, tt.expectMin, epsilon) {
				t.Errorf("Min = %v, want %v", r.Min, tt.expectMin)
			}
			if !pointsEqual(r.Max, tt.expectMax, epsilon) {
				t.Errorf("Max = %v, want %v", r.Max, tt.expectMax)
			}
		})
	}
}

func TestRect_XYWH(t *testing.T) {
	r := RectXYWH(100, 400, 100, 60)
	if r.Width() != 100 || r.Height() != 60 {
		t.Errorf("size = %vx%v, want 100x60", r.Width(), r.Height())
	}
	if got := r.BottomLeft(); got != Pt(100, 460) {
		t.Errorf("BottomLeft() = %v, want (100, 460)", got)
	}
	if got := r.BottomRight(); got != Pt(200, 460) {
		t.Errorf("BottomRight() = %v, want (200, 460)", got)
	}
	moved := r.MoveTo(Pt(0, 0))
	if moved.Origin() != Pt(0, 0) || moved.Width() != 100 || moved.Height() != 60 {
		t.Errorf("MoveTo() = %v", moved)
	}
	if !r.Contains(Pt(150, 430)) || r.Contains(Pt(50, 430)) {
		t.Error("Contains() misreports")
	}
}

// -------------------------------------------------------------------
// CubicBez Tests
// -------------------------------------------------------------------

func TestCubicBez_Eval(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
	tests := []struct {
		t    float64
		want Point
	}{
		{0, Pt(0, 0)},
		{1, Pt(10, 0)},
		{0.5, Pt(5, 7.5)},
	}
	for _, tt := range tests {
		if got := c.Eval(tt.t); !pointsEqual(got, tt.want, epsilon) {
			t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
	if got := c.Apex(); !pointsEqual(got, Pt(5, 7.5), epsilon) {
		t.Errorf("Apex() = %v, want (5, 7.5)", got)
	}
}

func TestCubicBez_Sample(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0))
	pts := c.Sample([]float64{0.3, 0.4, 0.5, 0.6})
	if len(pts) != 4 {
		t.Fatalf("Sample() returned %d points, want 4", len(pts))
	}
	for i, want := range []float64{9, 12, 15, 18} {
		if math.Abs(pts[i].X-want) > 1e-9 {
			t.Errorf("pts[%d].X = %v, want %v", i, pts[i].X, want)
		}
	}
}
