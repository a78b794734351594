package gooey

// Direction is one of the eight compass directions used to nudge points.
// Screen coordinates: Up decreases Y, Down increases it.
type Direction uint8

const (
	Left Direction = iota
	LeftUp
	Up
	RightUp
	Right
	RightDown
	Down
	LeftDown
)

var directionNames = [...]string{
	Left:      "left",
	LeftUp:    "left-up",
	Up:        "up",
	RightUp:   "right-up",
	Right:     "right",
	RightDown: "right-down",
	Down:      "down",
	LeftDown:  "left-down",
}

// String returns the direction name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

func (d Direction) unit() (dx, dy float64) {
	switch d {
	case Left:
		return -1, 0
	case LeftUp:
		return -1, -1
	case Up:
		return 0, -1
	case RightUp:
		return 1, -1
	case Right:
		return 1, 0
	case RightDown:
		return 1, 1
	case Down:
		return 0, 1
	case LeftDown:
		return -1, 1
	}
	return 0, 0
}
