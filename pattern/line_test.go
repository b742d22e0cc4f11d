package pattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name     string
		n, m     int
		expected string
	}{
		{"single letter equator", 0, -1, "a"},
		{"tip of size 2", 1, 0, "b"},
		{"equator of size 2", 1, -1, "b-a-b"},
		{"tip of size 3", 2, 1, "c"},
		{"middle of size 3", 2, 0, "c-b-c"},
		{"equator of size 3", 2, -1, "c-b-a-b-c"},
		{"second row of size 5", 4, 2, "e-d-e"},
		{"tip of size 26", 25, 24, "z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Line(tt.n, tt.m))
		})
	}
}

func TestLineIsPalindrome(t *testing.T) {
	for n := 0; n < UpperBound; n++ {
		for m := -1; m < n; m++ {
			line := Line(n, m)
			runes := []rune(line)
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
			assert.Equal(t, line, string(runes), "Line(%d, %d)", n, m)
		}
	}
}

func TestLinePivotAppearsOnce(t *testing.T) {
	for n := 0; n < UpperBound; n++ {
		for m := -1; m < n; m++ {
			letters := strings.Split(Line(n, m), Separator)
			assert.Len(t, letters, 2*(n-m)-1, "Line(%d, %d)", n, m)

			pivot := string(Alphabet[m+1])
			assert.Equal(t, 1, strings.Count(Line(n, m), pivot), "pivot %s in Line(%d, %d)", pivot, n, m)
			assert.Equal(t, pivot, letters[len(letters)/2])
		}
	}
}

func TestLineIsPure(t *testing.T) {
	assert.Equal(t, Line(10, 3), Line(10, 3))
}

func TestLineOutsideAlphabetPanics(t *testing.T) {
	assert.Panics(t, func() { Line(UpperBound, -1) })
}
