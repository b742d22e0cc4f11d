package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// MeasureText returns the display width of a string in terminal cells.
func MeasureText(text string) int {
	return runewidth.StringWidth(text)
}

// CenterText pads text on both sides with fill until it is width cells
// wide. When the padding is odd the extra cell goes on the right. Text that
// is already at least width wide is returned unchanged. fill is assumed to
// be a single-cell character.
func CenterText(text string, width int, fill rune) string {
	pad := width - MeasureText(text)
	if pad <= 0 {
		return text
	}

	left := pad / 2
	filler := string(fill)
	return strings.Repeat(filler, left) + text + strings.Repeat(filler, pad-left)
}

// FitText truncates text to maxWidth cells, ending it with ellipsis when
// something was cut.
func FitText(text string, maxWidth int, ellipsis string) string {
	if maxWidth <= 0 {
		return ""
	}
	if MeasureText(text) <= maxWidth {
		return text
	}
	if MeasureText(ellipsis) >= maxWidth {
		return runewidth.Truncate(text, maxWidth, "")
	}
	return runewidth.Truncate(text, maxWidth, ellipsis)
}
