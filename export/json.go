package export

import (
	"encoding/json"
	"fmt"

	"rangoli/pattern"
)

// JSONExporter exports patterns to JSON format
type JSONExporter struct{}

type jsonPattern struct {
	Size  int      `json:"size"`
	Width int      `json:"width"`
	Rows  []string `json:"rows"`
	Lines []string `json:"lines"`
}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts a pattern to JSON
func (e *JSONExporter) Export(p *pattern.Pattern) (string, error) {
	if p == nil {
		return "", fmt.Errorf("pattern is nil")
	}

	data, err := json.MarshalIndent(jsonPattern{
		Size:  p.Size,
		Width: p.Width,
		Rows:  p.Rows,
		Lines: p.Lines(),
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// GetFileExtension returns the file extension for JSON
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}
