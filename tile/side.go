package tile

// Side names one edge of a tile.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Sides lists every side once.
var Sides = [4]Side{Top, Right, Bottom, Left}

// Opposite returns the side facing s across a shared edge.
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}
