// SPDX-License-Identifier: MIT
// Package: paraxial/plot
//
// surface.go — the drawing capability consumed by the tracers.
//
// Contract:
//   • Coordinates are world units (the optical axis is y = 0, the element x = 0).
//   • Draw* calls only record intent; nothing is displayed before Show.
//   • A Surface is not safe for concurrent use; callers serialise access.

package plot

import "image/color"

// LineStyle selects how a line is stroked.
type LineStyle uint8

const (
	// Solid marks a physically travelled light path.
	Solid LineStyle = iota
	// Dashed marks a virtual backward extension.
	Dashed
	// Dotted marks an auxiliary construction line.
	Dotted
)

// String implements fmt.Stringer.
func (l LineStyle) String() string {
	switch l {
	case Solid:
		return "solid"
	case Dashed:
		return "dashed"
	case Dotted:
		return "dotted"
	default:
		return "unknown"
	}
}

// Style is the stroke of one drawing call.
type Style struct {
	Color color.RGBA
	Line  LineStyle
	Width float64 // in points; 0 means DefaultWidth
}

// DefaultWidth is the stroke width used when Style.Width is zero.
const DefaultWidth = 1.5

// StrokeWidth resolves a zero width to DefaultWidth.
func (s Style) StrokeWidth() float64 {
	if s.Width <= 0 {
		return DefaultWidth
	}
	return s.Width
}

// Surface is the minimal 2D drawing interface.
type Surface interface {
	// DrawSegment draws a straight line from (x0, y0) to (x1, y1).
	DrawSegment(x0, y0, x1, y1 float64, s Style)
	// DrawHorizontal draws a line at height y from x0 to x1.
	DrawHorizontal(y, x0, x1 float64, s Style)
	// DrawVertical draws a line at abscissa x from y0 to y1.
	DrawVertical(x, y0, y1 float64, s Style)
	// DrawPoint draws a filled marker at (x, y).
	DrawPoint(x, y float64, s Style)
	// XTicks returns the x tick positions for the content drawn so far.
	XTicks() []float64
	// SetXTicks pins tick positions and their labels; len(labels) == len(ticks).
	SetXTicks(ticks []float64, labels []string)
	// Show flushes the drawing to its output, blocking if the output does.
	Show() error
}
