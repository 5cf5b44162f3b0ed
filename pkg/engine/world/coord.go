// Package world provides generic 2D grid primitives shared by the engine and
// the game: coordinates, directions and bounds checks.
package world

import "fmt"

// Coord is a cell position on a level grid.
type Coord struct {
	X int
	Y int
}

// At is shorthand for Coord{X: x, Y: y}.
func At(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Step returns the coordinate one cell away in the given direction.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Less orders coordinates row-major, which keeps map iteration deterministic.
func (c Coord) Less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// String returns "(x, y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Bounds is the rectangle [0, Width) x [0, Height).
type Bounds struct {
	Width  int
	Height int
}

// Contains checks if a coordinate is within bounds
func (b Bounds) Contains(c Coord) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Valid returns true when both dimensions are positive
func (b Bounds) Valid() bool {
	return b.Width > 0 && b.Height > 0
}
