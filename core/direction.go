package core

// Direction is a unit step on the grid
type Direction struct {
	X int
	Y int
}

var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Opposite reports whether the two directions cancel out
func (d Direction) Opposite(other Direction) bool {
	return d.X+other.X == 0 && d.Y+other.Y == 0
}

// IsZero reports whether d is the zero value (no direction)
func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
