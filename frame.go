package gooey

// Frame is the result of one Recompute: the outline to fill plus a
// read-only snapshot of the intermediate points.
type Frame struct {
	// Path is the outline: baseline-left, curve up, top edge, curve down
	// to baseline-right. It is not explicitly closed.
	Path *Path

	Points Points

	// Travel is the signed lift of the blob above its rest position.
	Travel float64

	Constriction ConstrictionState
	Avulsion     AvulsionState

	// Flattened is true when the neck was collapsed onto the baseline,
	// either after avulsion or because the blob sank below the baseline.
	Flattened bool
}

// Points holds every intermediate point of a frame.
//
//	TopLeft  |-------------------------------| TopRight
//	         |                               |
//	         |-ControlLeft2     ControlRight2-|
//	         |                               |
//	         |-ControlLeft1     ControlRight1-|
//	BaseLeft |_______________________________| BaseRight
type Points struct {
	BaseLeft, BaseRight Point

	ControlLeft1, ControlLeft2   Point
	ControlRight1, ControlRight2 Point

	// TopLeft and TopRight are the tangent points on the blob's corner
	// circles.
	TopLeft, TopRight Point

	// CornerA and CornerB are the blob's bottom-left and bottom-right
	// corners.
	CornerA, CornerB Point

	// ApexLeft and ApexRight are the t=0.5 points of the two neck curves.
	ApexLeft, ApexRight Point
}

// PrimitiveKind selects how an overlay primitive is drawn.
type PrimitiveKind uint8

const (
	// Dots draws a small circle around each point.
	Dots PrimitiveKind = iota
	// Segment draws a line through the points in order.
	Segment
)

// Primitive is one named debug-overlay element.
type Primitive struct {
	Name   string
	Kind   PrimitiveKind
	Points []Point
	// Radius is the dot radius for Dots and zero for Segment.
	Radius float64
}

// Overlay returns the debug-overlay primitives for the frame. Colour and
// stroke style are left to the renderer, keyed by Name.
func (f Frame) Overlay() []Primitive {
	p := f.Points
	dots := func(name string, r float64, pts ...Point) Primitive {
		return Primitive{Name: name, Kind: Dots, Points: pts, Radius: r}
	}
	line := func(name string, from, to Point) Primitive {
		return Primitive{Name: name, Kind: Segment, Points: []Point{from, to}}
	}
	return []Primitive{
		dots("cpLeft1", 2, p.ControlLeft1),
		dots("cpLeft2", 2, p.ControlLeft2),
		dots("cpRight1", 2, p.ControlRight1),
		dots("cpRight2", 2, p.ControlRight2),
		dots("baseline", 2, p.BaseLeft, p.BaseRight),
		dots("figure", 3, p.TopLeft, p.TopRight),
		dots("corners", 3, p.CornerA, p.CornerB),
		line("neckLeft", p.ControlLeft2, p.TopLeft),
		line("neckRight", p.ControlRight2, p.TopRight),
		dots("apexLeft", 2, p.ApexLeft),
		dots("apexRight", 2, p.ApexRight),
	}
}
