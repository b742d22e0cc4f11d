package pattern

import (
	"fmt"
	"io"
	"strings"

	"rangoli/canvas"
)

// Pattern is a fully assembled rangoli.
type Pattern struct {
	// Size is the number of distinct letters, N.
	Size int
	// Rows holds the uncentered rows from the tip down to the equator.
	Rows []string
	// Width is the display width of the equator, which every line is
	// centered to.
	Width int
}

// Build assembles the rangoli of the given size.
func Build(size int) (*Pattern, error) {
	if size < LowerBound || size > UpperBound {
		return nil, fmt.Errorf("%w: %d (must be between %d and %d)",
			ErrInvalidSize, size, LowerBound, UpperBound)
	}

	n := size - 1
	rows := make([]string, 0, size)
	for i := n - 1; i >= -1; i-- {
		rows = append(rows, Line(n, i))
	}

	return &Pattern{
		Size:  size,
		Rows:  rows,
		Width: canvas.MeasureText(rows[len(rows)-1]),
	}, nil
}

// Equator returns the widest row.
func (p *Pattern) Equator() string {
	return p.Rows[len(p.Rows)-1]
}

// Height returns the number of printed lines.
func (p *Pattern) Height() int {
	return 2*len(p.Rows) - 1
}

// Lines returns every printed line, centered with Filler. The rows are
// emitted tip to equator and then mirrored back up, skipping the equator.
func (p *Pattern) Lines() []string {
	lines := make([]string, 0, p.Height())
	for _, row := range p.Rows {
		lines = append(lines, canvas.CenterText(row, p.Width, Filler))
	}
	for i := len(p.Rows) - 2; i >= 0; i-- {
		lines = append(lines, lines[i])
	}
	return lines
}

// String returns the pattern with every line newline-terminated.
func (p *Pattern) String() string {
	var sb strings.Builder
	sb.Grow(p.Height() * (p.Width + 1))
	for _, line := range p.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Print writes the rangoli of the given size to w. Nothing is written when
// the size is invalid.
func Print(w io.Writer, size int) error {
	p, err := Build(size)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, p.String())
	return err
}
