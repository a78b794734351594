package gooey

import (
	"testing"
)

func TestPath_Basic(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(10, 10), Pt(0, 5), Pt(5, 10))
	p.LineTo(Pt(20, 10))
	p.Close()

	if p.Len() != 4 {
		t.Fatalf("expected 4 elements, got %d", p.Len())
	}
	if got := p.CurrentPoint(); got != Pt(0, 0) {
		t.Errorf("CurrentPoint() after Close = %v, want start", got)
	}
	c, ok := p.Elements()[1].(CubicTo)
	if !ok {
		t.Fatalf("element 1 is %T, want CubicTo", p.Elements()[1])
	}
	if c.Point != Pt(10, 10) || c.Control1 != Pt(0, 5) || c.Control2 != Pt(5, 10) {
		t.Errorf("CubicTo = %+v", c)
	}
	if c.End() != Pt(10, 10) {
		t.Errorf("End() = %v", c.End())
	}
}

func TestPath_Bounds(t *testing.T) {
	if b := NewPath().Bounds(); b != (Rect{}) {
		t.Errorf("empty Bounds() = %v", b)
	}
	p := NewPath()
	p.MoveTo(Pt(10, 10))
	p.CubicTo(Pt(30, 10), Pt(-5, 40), Pt(35, -2))
	b := p.Bounds()
	if b.Min != Pt(-5, -2) || b.Max != Pt(35, 40) {
		t.Errorf("Bounds() = %v", b)
	}
}

func TestPath_SVG(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(10, 10), Pt(0, 5), Pt(5, 10))
	p.LineTo(Pt(20, 10.5))
	p.Close()

	want := "M 0 0 C 0 5 5 10 10 10 L 20 10.5 Z"
	if got := p.SVG(); got != want {
		t.Errorf("SVG() = %q, want %q", got, want)
	}
}

func TestPath_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Path)
		elems int
	}{
		{"Circle", func(p *Path) { p.Circle(Pt(50, 50), 25) }, 6},
		{"RoundedRectangle", func(p *Path) { p.RoundedRectangle(RectXYWH(0, 0, 100, 60), 30) }, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			tt.build(p)
			if p.Len() != tt.elems {
				t.Errorf("expected %d elements, got %d", tt.elems, p.Len())
			}
		})
	}
}

func TestPath_RoundedRectangleBounds(t *testing.T) {
	p := NewPath()
	p.RoundedRectangle(RectXYWH(100, 400, 100, 60), 30)
	b := p.Bounds()
	if !pointsEqual(b.Min, Pt(100, 400), 1e-9) || !pointsEqual(b.Max, Pt(200, 460), 1e-9) {
		t.Errorf("Bounds() = %v", b)
	}
}

func TestPath_Clone(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(1, 2))
	c := p.Clone()
	c.LineTo(Pt(3, 4))
	if p.Len() != 1 || c.Len() != 2 {
		t.Errorf("Clone() shares elements: %d, %d", p.Len(), c.Len())
	}
}
