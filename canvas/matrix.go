package canvas

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"

	"rangoli/core"
)

// Common errors
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid canvas size")
)

// MatrixCanvas is a rune matrix with simple text drawing.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward
//   - Y increases downward
//   - All coordinates are in character cells
//
// MatrixCanvas is not safe for concurrent writes.
type MatrixCanvas struct {
	matrix [][]rune
	width  int
	height int
	blank  rune
}

// NewMatrixCanvas creates a canvas filled with spaces.
func NewMatrixCanvas(width, height int) (*MatrixCanvas, error) {
	return NewFilledCanvas(width, height, ' ')
}

// NewFilledCanvas creates a canvas with every cell set to blank.
func NewFilledCanvas(width, height int, blank rune) (*MatrixCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}

	matrix := make([][]rune, height)
	for y := range matrix {
		matrix[y] = make([]rune, width)
		for x := range matrix[y] {
			matrix[y][x] = blank
		}
	}

	return &MatrixCanvas{
		matrix: matrix,
		width:  width,
		height: height,
		blank:  blank,
	}, nil
}

// Size returns the width and height of the canvas.
func (c *MatrixCanvas) Size() (width, height int) {
	return c.width, c.height
}

// Get returns the character at the given position.
// Returns the blank character if position is out of bounds.
func (c *MatrixCanvas) Get(p core.Point) rune {
	if !c.inBounds(p.X, p.Y) {
		return c.blank
	}
	return c.matrix[p.Y][p.X]
}

// Set places a character at the given position.
func (c *MatrixCanvas) Set(p core.Point, char rune) error {
	if !c.inBounds(p.X, p.Y) {
		return ErrOutOfBounds
	}
	c.matrix[p.Y][p.X] = char
	return nil
}

// Clear resets the canvas to its blank character.
func (c *MatrixCanvas) Clear() {
	for y := range c.matrix {
		for x := range c.matrix[y] {
			c.matrix[y][x] = c.blank
		}
	}
}

// Row returns line y of the canvas, or "" when y is out of bounds.
func (c *MatrixCanvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var sb strings.Builder
	for _, r := range c.matrix[y] {
		if r == '\x00' {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// String returns the canvas as a string with newlines between rows.
func (c *MatrixCanvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))

	for y := 0; y < c.height; y++ {
		sb.WriteString(c.Row(y))
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}

// DrawText renders text starting at (x, y), clipping at the right edge.
// Wide characters take two cells; the second is marked with a null rune.
func (c *MatrixCanvas) DrawText(x, y int, text string) error {
	if y < 0 || y >= c.height {
		return ErrOutOfBounds
	}

	currentX := x
	for _, r := range text {
		width := runewidth.RuneWidth(r)
		if width == 0 {
			continue
		}

		// Wide character doesn't fully fit
		if width == 2 && currentX >= 0 && currentX+1 >= c.width {
			break
		}

		if currentX >= 0 && currentX < c.width {
			c.matrix[y][currentX] = r
			if width == 2 {
				c.matrix[y][currentX+1] = '\x00'
			}
		}

		currentX += width
		if currentX >= c.width {
			break
		}
	}

	return nil
}

// DrawCenteredText renders text horizontally centered on row y. Odd
// leftover space goes to the right.
func (c *MatrixCanvas) DrawCenteredText(y int, text string) error {
	return c.DrawText((c.width-MeasureText(text))/2, y, text)
}

func (c *MatrixCanvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}
