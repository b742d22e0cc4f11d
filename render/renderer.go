// Package render composes rangoli patterns into terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"rangoli/canvas"
	"rangoli/pattern"
)

// Renderer draws a pattern onto a character canvas.
type Renderer struct {
	colorize bool
	letter   *color.Color
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor enables or disables ANSI coloring of the letters. The filler is
// never colored.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		r.colorize = enabled
	}
}

// NewRenderer creates a renderer. Output is plain text unless WithColor is
// given.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		letter: color.New(color.FgCyan, color.Bold),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.colorize {
		r.letter.EnableColor()
	}
	return r
}

// Render returns the pattern as newline-terminated lines.
func (r *Renderer) Render(p *pattern.Pattern) (string, error) {
	if p == nil {
		return "", fmt.Errorf("pattern is nil")
	}

	c, err := r.Draw(p)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	_, height := c.Size()
	for y := 0; y < height; y++ {
		sb.WriteString(r.paint(c.Row(y)))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// Draw lays the pattern out on a canvas pre-filled with the filler
// character, one centered row per line.
func (r *Renderer) Draw(p *pattern.Pattern) (*canvas.MatrixCanvas, error) {
	c, err := canvas.NewFilledCanvas(p.Width, p.Height(), pattern.Filler)
	if err != nil {
		return nil, fmt.Errorf("failed to create canvas: %w", err)
	}

	last := len(p.Rows) - 1
	for i, row := range p.Rows {
		if err := c.DrawCenteredText(i, row); err != nil {
			return nil, err
		}
		if i == last {
			continue
		}
		if err := c.DrawCenteredText(p.Height()-1-i, row); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (r *Renderer) paint(line string) string {
	if !r.colorize {
		return line
	}

	var sb strings.Builder
	for _, ch := range line {
		if ch >= 'a' && ch <= 'z' {
			sb.WriteString(r.letter.Sprint(string(ch)))
			continue
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}
