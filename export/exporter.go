// Package export provides functionality to export rangoli patterns to text-based formats
package export

import (
	"fmt"

	"rangoli/pattern"
)

// Format represents an export format
type Format string

const (
	// FormatText exports the rendered diamond (default)
	FormatText Format = "text"
	// FormatJSON exports the rows and centered lines as JSON
	FormatJSON Format = "json"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export converts a pattern to the target format
	Export(p *pattern.Pattern) (string, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format. colorize only
// affects the text format.
func NewExporter(format Format, colorize bool) (Exporter, error) {
	switch format {
	case FormatText:
		return NewTextExporter(colorize), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "txt", "ascii":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{
		FormatText,
		FormatJSON,
	}
}
