package engine

import "github.com/lixenwraith/vi-snake/core"

// WallCollision reports whether c lies outside a board of tileCount tiles per side
func WallCollision(c core.Cell, tileCount int) bool {
	return c.X < 0 || c.X >= tileCount || c.Y < 0 || c.Y >= tileCount
}

// SelfCollision reports whether c hits any current snake cell
// The tail is included even though it would be vacated this step
func SelfCollision(c core.Cell, snake []core.Cell) bool {
	for _, segment := range snake {
		if segment == c {
			return true
		}
	}
	return false
}

// AteFood reports whether the new head lands on the food cell
func AteFood(head, food core.Cell) bool {
	return head == food
}
