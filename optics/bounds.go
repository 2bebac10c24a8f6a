// SPDX-License-Identifier: MIT
// Package: paraxial/optics

package optics

import "math"

// ElementBounds returns the vertical extent of the element so that it spans
// both the object and the image.
//
//   - both heights > 0:     Up = max(yObj, yIm), Down = 0
//   - both heights < 0:     Up = 0,              Down = min(yObj, yIm)
//   - yObj > 0 > yIm:       Up = yObj,           Down = yIm
//   - yIm > 0 > yObj:       Up = yIm,            Down = yObj
//
// The cases are exhaustive for non-zero heights. Any other input (a NaN
// image height from a degenerate result, or a zero) yields ok == false.
func ElementBounds(yObj, yIm float64) (b Bounds, ok bool) {
	switch {
	case yObj > 0 && yIm > 0:
		return Bounds{Up: math.Max(yObj, yIm), Down: 0}, true
	case yObj < 0 && yIm < 0:
		return Bounds{Up: 0, Down: math.Min(yObj, yIm)}, true
	case yObj > 0 && 0 > yIm:
		return Bounds{Up: yObj, Down: yIm}, true
	case yIm > 0 && 0 > yObj:
		return Bounds{Up: yIm, Down: yObj}, true
	}

	return Bounds{}, false
}

// DegenerateBounds is the element extent used when no image is formed:
// the span between the axis and the object tip.
func DegenerateBounds(yObj float64) Bounds {
	return Bounds{Up: math.Max(0, yObj), Down: math.Min(0, yObj)}
}
