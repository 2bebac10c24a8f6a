// SPDX-License-Identifier: MIT
// Package: paraxial/rays

package rays

import (
	"math"

	"github.com/katalvlaran/paraxial/optics"
	"github.com/katalvlaran/paraxial/plot"
)

// OutlineWidth is the stroke width of the dashed element outline.
const OutlineWidth = .7

// Outline is the element drawn as a dashed vertical line at x = 0 over
// [b.Down, b.Up].
func Outline(b optics.Bounds) Segment {
	return vseg(0, b.Down, b.Up, plot.Dashed)
}

// Axis spans the optical axis over every abscissa of interest:
// min/max of {x_obj, x_im, f, −f}.
func Axis(xObj, xIm, f float64) Segment {
	lo := math.Min(math.Min(xObj, xIm), math.Min(f, -f))
	hi := math.Max(math.Max(xObj, xIm), math.Max(f, -f))
	return hseg(0, lo, hi, plot.Solid)
}

// DegenerateAxis is Axis without an image: it spans x_obj and ±f only.
func DegenerateAxis(xObj, f float64) Segment {
	lo := math.Min(xObj, math.Min(f, -f))
	hi := math.Max(xObj, math.Max(f, -f))
	return hseg(0, lo, hi, plot.Solid)
}

// Marker is the vertical arrow-less stick from the axis to height y at x,
// used for both the object and the image.
func Marker(x, y float64) Segment {
	return vseg(x, 0, y, plot.Solid)
}
