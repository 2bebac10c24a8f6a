// SPDX-License-Identifier: MIT
// Package: paraxial/rays
//
// types.go — ray descriptors produced by the classifiers.

package rays

import "github.com/katalvlaran/paraxial/plot"

// Kind names the construction a ray follows.
type Kind uint8

const (
	// ThroughCentre passes through the element centre (lens) or the pole
	// (mirror).
	ThroughCentre Kind = iota + 1
	// ThroughFocus goes through the object-side focus before the element.
	ThroughFocus
	// ParallelToAxis leaves the object parallel to the optical axis.
	ParallelToAxis
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case ThroughCentre:
		return "centre"
	case ThroughFocus:
		return "focus"
	case ParallelToAxis:
		return "parallel"
	default:
		return "unknown"
	}
}

// Shape selects the Surface call a segment maps onto.
type Shape uint8

const (
	// Line is a free segment (X0,Y0)->(X1,Y1).
	Line Shape = iota + 1
	// Horizontal is a line at height Y0 == Y1 from X0 to X1.
	Horizontal
	// Vertical is a line at abscissa X0 == X1 from Y0 to Y1.
	Vertical
)

// Segment is one stroke of a ray construction.
type Segment struct {
	Shape  Shape
	X0, Y0 float64
	X1, Y1 float64
	Line   plot.LineStyle
}

// Case is the ordering of {x_obj, x_im, focus} against 0 that selected a
// construction branch. It reads as the inequality that held.
type Case string

// CaseNone means no branch ordering held (a boundary equality); only the
// unconditional strokes are emitted.
const CaseNone Case = ""

// Ray is a classified construction ray, ready for rendering.
type Ray struct {
	Kind     Kind
	Case     Case
	Segments []Segment
}

func seg(x0, y0, x1, y1 float64, l plot.LineStyle) Segment {
	return Segment{Shape: Line, X0: x0, Y0: y0, X1: x1, Y1: y1, Line: l}
}

// hseg mirrors an hlines(y, x0, x1) call.
func hseg(y, x0, x1 float64, l plot.LineStyle) Segment {
	return Segment{Shape: Horizontal, X0: x0, Y0: y, X1: x1, Y1: y, Line: l}
}

func vseg(x, y0, y1 float64, l plot.LineStyle) Segment {
	return Segment{Shape: Vertical, X0: x, Y0: y0, X1: x, Y1: y1, Line: l}
}
