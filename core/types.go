// Package core contains the fundamental types shared by the rangoli renderer.
package core

// Point represents a 2D coordinate in a canvas.
type Point struct {
	X, Y int
}

// Canvas is a 2D grid of character cells.
type Canvas interface {
	Size() (width, height int)
	Get(p Point) rune
	Set(p Point, char rune) error
}
