// Package validation checks rendered rangoli text for structural errors.
package validation

import (
	"fmt"
	"strings"

	"rangoli/pattern"
)

// PatternValidator validates that rendered output is a well-formed rangoli.
type PatternValidator struct {
	errors []ValidationError
}

// ValidationError represents a validation error with location information.
// X is -1 for errors that concern a whole line.
type ValidationError struct {
	X, Y    int
	Char    rune
	Context string
	Message string
}

// NewPatternValidator creates a new validator.
func NewPatternValidator() *PatternValidator {
	return &PatternValidator{}
}

// Validate checks rendered rangoli text. A single trailing newline is
// allowed.
func (v *PatternValidator) Validate(output string) []ValidationError {
	v.errors = nil

	output = strings.TrimSuffix(output, "\n")
	if output == "" {
		v.addError(-1, 0, 0, "shape", "pattern is empty")
		return v.errors
	}

	lines := strings.Split(output, "\n")
	height := len(lines)
	if height%2 == 0 {
		v.addError(-1, height-1, 0, "shape", "pattern has %d lines, want an odd count", height)
		return v.errors
	}

	size := (height + 1) / 2
	if size > pattern.UpperBound {
		v.addError(-1, 0, 0, "shape", "pattern has %d lines, more than %d letters allow", height, pattern.UpperBound)
		return v.errors
	}

	width := 4*size - 3
	for y, line := range lines {
		if len(line) != width {
			v.addError(-1, y, 0, "width", "line is %d wide, want %d", len(line), width)
			continue
		}
		v.checkLine(y, line, size)
	}

	for y := 0; y < height/2; y++ {
		if lines[y] != lines[height-1-y] {
			v.addError(-1, y, 0, "symmetry", "line differs from its mirror at line %d", height-1-y)
		}
	}

	v.checkEquator(lines[size-1], size)

	return v.errors
}

// checkLine validates the characters of a single line.
func (v *PatternValidator) checkLine(y int, line string, size int) {
	highest := rune(pattern.Alphabet[size-1])

	for x, char := range line {
		switch {
		case x%2 == 1:
			if char != '-' {
				v.addError(x, y, char, "separator", "odd columns hold '-'")
			}
		case char == pattern.Filler:
		case char < 'a' || char > highest:
			v.addError(x, y, char, "letter", "letter outside a-%c", highest)
		}
	}

	for i, j := 0, len(line)-1; i < j; i, j = i+1, j-1 {
		if line[i] != line[j] {
			v.addError(i, y, rune(line[i]), "palindrome", "does not match column %d", j)
			return
		}
	}
}

// checkEquator validates that the middle line walks the full alphabet down
// to 'a' and back.
func (v *PatternValidator) checkEquator(equator string, size int) {
	expected := pattern.Line(size-1, -1)
	if equator != expected {
		v.addError(-1, size-1, 0, "equator", "equator is %q, want %q", equator, expected)
	}
}

// addError adds a validation error.
func (v *PatternValidator) addError(x, y int, char rune, context, format string, args ...interface{}) {
	v.errors = append(v.errors, ValidationError{
		X:       x,
		Y:       y,
		Char:    char,
		Context: context,
		Message: fmt.Sprintf(format, args...),
	})
}

// String formats validation errors as a string.
func (e ValidationError) String() string {
	if e.X < 0 {
		return fmt.Sprintf("line %d [%s]: %s", e.Y, e.Context, e.Message)
	}
	return fmt.Sprintf("(%d,%d) '%c' [%s]: %s", e.X, e.Y, e.Char, e.Context, e.Message)
}
