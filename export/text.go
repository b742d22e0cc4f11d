package export

import (
	"fmt"

	"rangoli/pattern"
	"rangoli/render"
)

// TextExporter exports patterns as the plain rangoli diamond
type TextExporter struct {
	renderer *render.Renderer
}

// NewTextExporter creates a new text exporter
func NewTextExporter(colorize bool) *TextExporter {
	return &TextExporter{
		renderer: render.NewRenderer(render.WithColor(colorize)),
	}
}

// Export renders the pattern
func (e *TextExporter) Export(p *pattern.Pattern) (string, error) {
	if p == nil {
		return "", fmt.Errorf("pattern is nil")
	}

	output, err := e.renderer.Render(p)
	if err != nil {
		return "", fmt.Errorf("failed to render pattern: %w", err)
	}

	return output, nil
}

// GetFileExtension returns the recommended file extension
func (e *TextExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name
func (e *TextExporter) GetFormatName() string {
	return "Text"
}
