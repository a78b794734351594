package gooey

import "testing"

// BenchmarkRecompute measures one frame of a drag.
func BenchmarkRecompute(b *testing.B) {
	cases := []struct {
		name string
		dy   float64
	}{
		{"rest", 0},
		{"stretched", -60},
		{"snapped", -200},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			e := NewEngine(liftedRest, scenarioBaseline, 30, 140, WithDebugUnlatched())
			blob := liftedRest.Translate(0, c.dy)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e.Recompute(blob)
			}
		})
	}
}

func BenchmarkIntersectCircles(b *testing.B) {
	c1 := Circle{Center: Pt(130, 330), Radius: 30}
	c2 := Circle{Center: Pt(111.5, 355), Radius: 31}
	for i := 0; i < b.N; i++ {
		IntersectCircles(c1, c2)
	}
}
