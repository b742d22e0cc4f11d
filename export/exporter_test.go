package export

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangoli/pattern"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"text", FormatText, false},
		{"txt", FormatText, false},
		{"ascii", FormatText, false},
		{"json", FormatJSON, false},
		{"mermaid", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "ParseFormat(%q)", tt.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}
}

func TestNewExporter(t *testing.T) {
	for _, format := range GetAvailableFormats() {
		exp, err := NewExporter(format, false)
		require.NoError(t, err, "format %s", format)
		assert.NotEmpty(t, exp.GetFileExtension())
		assert.NotEmpty(t, exp.GetFormatName())
	}

	_, err := NewExporter(Format("svg"), false)
	assert.Error(t, err)
}

func TestTextExporter(t *testing.T) {
	p, err := pattern.Build(3)
	require.NoError(t, err)

	out, err := NewTextExporter(false).Export(p)
	require.NoError(t, err)
	assert.Equal(t, "----c----\n--c-b-c--\nc-b-a-b-c\n--c-b-c--\n----c----\n", out)

	_, err = NewTextExporter(false).Export(nil)
	assert.Error(t, err)
}

func TestJSONExporter(t *testing.T) {
	p, err := pattern.Build(2)
	require.NoError(t, err)

	out, err := NewJSONExporter().Export(p)
	require.NoError(t, err)

	var decoded jsonPattern
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 2, decoded.Size)
	assert.Equal(t, 5, decoded.Width)
	assert.Equal(t, []string{"b", "b-a-b"}, decoded.Rows)
	assert.Equal(t, []string{"--b--", "b-a-b", "--b--"}, decoded.Lines)
}
