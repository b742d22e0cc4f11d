// Package canvas provides a 2D character grid and text helpers for
// composing rangoli output.
package canvas

import "rangoli/core"

// Canvas represents a 2D grid for drawing.
// Re-exported from core package for convenience.
type Canvas = core.Canvas
