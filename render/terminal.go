package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// ColorMode selects when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode converts a flag value to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case ColorAuto, ColorAlways, ColorNever:
		return ColorMode(s), nil
	default:
		return "", fmt.Errorf("unknown color mode: %s", s)
	}
}

// TerminalCapabilities represents the features supported by the output terminal.
type TerminalCapabilities struct {
	Name          string
	SupportsColor bool
	ColorDepth    int // 0, 8, 256, or 24-bit
}

// DetectCapabilities detects the current terminal's capabilities.
func DetectCapabilities() TerminalCapabilities {
	return detectCapabilities(os.Getenv, !color.NoColor)
}

// UseColor resolves a mode against the detected capabilities.
func (caps TerminalCapabilities) UseColor(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return caps.SupportsColor
	}
}

func detectCapabilities(getenv func(string) string, isTerminal bool) TerminalCapabilities {
	term := getenv("TERM")
	caps := TerminalCapabilities{Name: term}

	if !isTerminal || term == "" || strings.Contains(term, "dumb") {
		return caps
	}

	caps.SupportsColor = true
	caps.ColorDepth = 8
	if strings.Contains(term, "256color") || strings.HasPrefix(term, "xterm") || strings.HasPrefix(term, "screen") {
		caps.ColorDepth = 256
	}
	if colorterm := getenv("COLORTERM"); colorterm == "truecolor" || colorterm == "24bit" {
		caps.ColorDepth = 24
	}

	// https://no-color.org/
	if getenv("NO_COLOR") != "" {
		caps.SupportsColor = false
		caps.ColorDepth = 0
	}

	return caps
}
