package canvas

import (
	"testing"
)

func TestMeasureText(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"", 0},
		{"a", 1},
		{"c-b-a-b-c", 9},
		{"世界", 4},
	}

	for _, tt := range tests {
		if got := MeasureText(tt.text); got != tt.expected {
			t.Errorf("MeasureText(%q) = %d, want %d", tt.text, got, tt.expected)
		}
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{"Even padding", "b", 5, "--b--"},
		{"Exact width", "b-a-b", 5, "b-a-b"},
		{"Narrower than text", "c-b-a-b-c", 5, "c-b-a-b-c"},
		{"Odd padding goes right", "ab", 5, "-ab--"},
		{"Single odd cell", "a", 2, "a-"},
		{"Empty text", "", 3, "---"},
		{"Wide characters", "世", 4, "-世-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenterText(tt.text, tt.width, '-'); got != tt.expected {
				t.Errorf("CenterText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.expected)
			}
		})
	}
}

func TestFitText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{"Fits", "rangoli", 10, "rangoli"},
		{"Truncated with ellipsis", "alphabet rangoli", 8, "alphab.."},
		{"Ellipsis too wide", "rangoli", 2, "ra"},
		{"Zero width", "rangoli", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitText(tt.text, tt.width, ".."); got != tt.expected {
				t.Errorf("FitText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.expected)
			}
		})
	}
}
