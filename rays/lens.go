// SPDX-License-Identifier: MIT
// Package: paraxial/rays
//
// lens.go — construction rays for the thin lens.
//
// Light crosses the lens at x = 0 and keeps travelling towards positive x, so
// a real image has x_im > 0 and a virtual one x_im < 0. f1 is the principal
// (object-side) focus, f2 = −f1 the secondary one.
// Draw order in a diagram: LensCentre, LensParallel, LensFocus.

package rays

import "github.com/katalvlaran/paraxial/plot"

// Lens branch orderings.
const (
	// LensCentre
	CaseLensCentreVirtualNear Case = "x_obj < x_im < 0"
	CaseLensCentreVirtualFar  Case = "x_im < x_obj < 0"
	CaseLensCentreReal        Case = "x_obj < 0 < x_im"

	// LensParallel (secondary focus f2)
	CaseLensParallelBeyondFocus Case = "0 < f2 < x_im"
	CaseLensParallelInsideFocus Case = "0 < x_im < f2"
	CaseLensParallelDiverging   Case = "f2 < x_im < 0"
	CaseLensParallelFarVirtual  Case = "x_im < f2 < 0"
	CaseLensParallelVirtual     Case = "x_im < 0 < f2"

	// LensFocus (principal focus f1)
	CaseLensFocusBeyondFocus Case = "x_obj < f1 < 0"
	CaseLensFocusInsideFocus Case = "f1 < x_obj < 0"
	CaseLensFocusDiverging   Case = "x_obj < 0 < f1"
)

// LensCentre builds the undeviated ray through the lens centre.
//
//   - always:               object -> image
//   - x_obj < x_im < 0:     object -> (0,0)
//   - x_im < x_obj < 0:     image -> (0,0)
//   - x_obj < 0 < x_im:     object -> image (drawn again)
func LensCentre(xObj, yObj, xIm, yIm float64) Ray {
	r := Ray{Kind: ThroughCentre}
	r.Segments = append(r.Segments, seg(xObj, yObj, xIm, yIm, plot.Solid))

	switch {
	case xObj < xIm && xIm < 0:
		r.Case = CaseLensCentreVirtualNear
		r.Segments = append(r.Segments, seg(xObj, yObj, 0, 0, plot.Solid))
	case xIm < xObj && xObj < 0:
		r.Case = CaseLensCentreVirtualFar
		r.Segments = append(r.Segments, seg(xIm, yIm, 0, 0, plot.Solid))
	case xObj < 0 && 0 < xIm:
		r.Case = CaseLensCentreReal
		r.Segments = append(r.Segments, seg(xObj, yObj, xIm, yIm, plot.Solid))
	}

	return r
}

// LensParallel builds the ray entering parallel to the axis and refracted
// through (or away from) the secondary focus f2.
//
//   - always:             horizontal y_obj from x_obj to 0
//   - 0 < f2 < x_im:      (0,y_obj) -> image
//   - 0 < x_im < f2:      (0,y_obj) -> (f2,0)
//   - f2 < x_im < 0:      dashed (0,y_obj) -> (f2,0), (0,y_obj) -> (−f2/2, 1.5·y_obj)
//   - x_im < f2 < 0:      dashed (0,y_obj) -> image
//   - x_im < 0 < f2:      (0,y_obj) -> (f2,0), dashed (0,y_obj) -> image
func LensParallel(xObj, yObj, xIm, yIm, f2 float64) Ray {
	r := Ray{Kind: ParallelToAxis}
	r.Segments = append(r.Segments, hseg(yObj, xObj, 0, plot.Solid))

	switch {
	case 0 < f2 && f2 < xIm:
		r.Case = CaseLensParallelBeyondFocus
		r.Segments = append(r.Segments, seg(0, yObj, xIm, yIm, plot.Solid))
	case 0 < xIm && xIm < f2:
		r.Case = CaseLensParallelInsideFocus
		r.Segments = append(r.Segments, seg(0, yObj, f2, 0, plot.Solid))
	case f2 < xIm && xIm < 0:
		r.Case = CaseLensParallelDiverging
		r.Segments = append(r.Segments,
			seg(0, yObj, f2, 0, plot.Dashed),
			seg(0, yObj, -.5*f2, 1.5*yObj, plot.Solid),
		)
	case xIm < f2 && f2 < 0:
		r.Case = CaseLensParallelFarVirtual
		r.Segments = append(r.Segments, seg(0, yObj, xIm, yIm, plot.Dashed))
	case xIm < 0 && 0 < f2:
		r.Case = CaseLensParallelVirtual
		r.Segments = append(r.Segments,
			seg(0, yObj, f2, 0, plot.Solid),
			seg(0, yObj, xIm, yIm, plot.Dashed),
		)
	}

	return r
}

// LensFocus builds the ray through the principal focus f1 that leaves the
// lens parallel to the axis at the image height. Its branch is keyed on the
// object position, not the image.
//
//   - x_obj < f1 < 0:   object -> (0,y_im), horizontal y_im 0..x_im
//   - f1 < x_obj < 0:   (f1,0) -> (0,y_im), horizontal 0..−f1/2,
//     dashed horizontal 0..x_im
//   - x_obj < 0 < f1:   object -> (0,y_im), horizontal 0..f1,
//     dotted (0,y_im) -> (f1,0), dashed horizontal 0..x_im
func LensFocus(xObj, yObj, xIm, yIm, f1 float64) Ray {
	r := Ray{Kind: ThroughFocus}

	switch {
	case xObj < f1 && f1 < 0:
		r.Case = CaseLensFocusBeyondFocus
		r.Segments = append(r.Segments,
			seg(xObj, yObj, 0, yIm, plot.Solid),
			hseg(yIm, 0, xIm, plot.Solid),
		)
	case f1 < xObj && xObj < 0:
		r.Case = CaseLensFocusInsideFocus
		r.Segments = append(r.Segments,
			seg(f1, 0, 0, yIm, plot.Solid),
			hseg(yIm, 0, -.5*f1, plot.Solid),
			hseg(yIm, 0, xIm, plot.Dashed),
		)
	case xObj < 0 && 0 < f1:
		r.Case = CaseLensFocusDiverging
		r.Segments = append(r.Segments,
			seg(xObj, yObj, 0, yIm, plot.Solid),
			hseg(yIm, 0, f1, plot.Solid),
			seg(0, yIm, f1, 0, plot.Dotted),
			hseg(yIm, 0, xIm, plot.Dashed),
		)
	}

	return r
}
