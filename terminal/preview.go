// Package terminal shows a rangoli in a full-screen terminal preview.
package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"rangoli/canvas"
	"rangoli/core"
	"rangoli/pattern"
)

const statusHelp = "q/esc: quit"

var (
	letterStyle = tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
	fillerStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle  = tcell.StyleDefault.Bold(true)
	statusStyle = tcell.StyleDefault.Reverse(true)
)

// Run opens the terminal, shows the pattern until the user quits and
// restores the terminal.
func Run(p *pattern.Pattern) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	return Preview(screen, p)
}

// Preview draws the pattern on an initialized screen and handles events
// until a quit key is pressed or the screen is finalized.
func Preview(screen tcell.Screen, p *pattern.Pattern) error {
	if p == nil {
		return fmt.Errorf("pattern is nil")
	}

	screen.HideCursor()
	if err := Draw(screen, p); err != nil {
		return err
	}

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			if err := Draw(screen, p); err != nil {
				return err
			}
		case *tcell.EventKey:
			if isQuit(ev) {
				return nil
			}
		}
	}
}

// Draw renders one frame: a title, the pattern centered on the screen and a
// status line.
func Draw(screen tcell.Screen, p *pattern.Pattern) error {
	width, height := screen.Size()
	screen.Clear()
	if width <= 0 || height <= 0 {
		return nil
	}

	frame, err := compose(p, width, height)
	if err != nil {
		return err
	}

	paint(screen, frame)
	screen.Show()
	return nil
}

// paint copies every cell of the canvas onto the screen.
func paint(screen tcell.Screen, frame canvas.Canvas) {
	width, height := frame.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := frame.Get(core.Point{X: x, Y: y})
			if r == '\x00' {
				continue
			}
			screen.SetContent(x, y, r, nil, styleFor(y, height, r))
		}
	}
}

// compose lays out the frame on a canvas the size of the screen.
func compose(p *pattern.Pattern, width, height int) (*canvas.MatrixCanvas, error) {
	frame, err := canvas.NewMatrixCanvas(width, height)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Alphabet Rangoli (N=%d)", p.Size)
	frame.DrawCenteredText(0, canvas.FitText(title, width, "…"))

	status := canvas.FitText(statusHelp, width, "")
	if height > 1 {
		frame.DrawText(0, height-1, status+strings.Repeat(" ", width-canvas.MeasureText(status)))
	}

	// Rows between the title and the status line.
	top, bottom := 1, height-1
	lines := p.Lines()
	start := top + (bottom-top-len(lines))/2
	if start < top {
		start = top
	}
	for i, line := range lines {
		y := start + i
		if y >= bottom {
			break
		}
		frame.DrawCenteredText(y, canvas.FitText(line, width, ""))
	}
	return frame, nil
}

func styleFor(y, height int, r rune) tcell.Style {
	switch {
	case y == 0:
		return titleStyle
	case y == height-1 && height > 1:
		return statusStyle
	case r == pattern.Filler:
		return fillerStyle
	case r >= 'a' && r <= 'z':
		return letterStyle
	default:
		return tcell.StyleDefault
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
