package core

import "fmt"

// Cell addresses one tile of the board
// X grows to the right, Y grows downward (screen coordinates)
type Cell struct {
	X int
	Y int
}

// Add returns the cell one step away in direction d
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// InBounds reports whether the cell lies on a square board of tileCount tiles per side
func (c Cell) InBounds(tileCount int) bool {
	return c.X >= 0 && c.X < tileCount && c.Y >= 0 && c.Y < tileCount
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
