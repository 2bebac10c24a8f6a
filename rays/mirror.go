// SPDX-License-Identifier: MIT
// Package: paraxial/rays
//
// mirror.go — construction rays for the spherical mirror.
//
// The mirror sits at x = 0 and reflects back towards negative x, so a real
// image has x_im < 0 and a virtual one (behind the mirror) x_im > 0.
// Draw order in a diagram: MirrorCentre, MirrorFocus, MirrorParallel.

package rays

import "github.com/katalvlaran/paraxial/plot"

// Mirror branch orderings.
const (
	// MirrorCentre
	CaseMirrorCentreVirtual Case = "x_im > 0"
	CaseMirrorCentreReal    Case = "x_im < 0"

	// MirrorFocus
	CaseMirrorFocusReal         Case = "x_im < 0"
	CaseMirrorFocusConcaveInner Case = "f < 0 < x_im"
	CaseMirrorFocusConvex       Case = "0 < x_im < f"

	// MirrorParallel
	CaseMirrorParallelBeyondFocus Case = "x_im < f < 0"
	CaseMirrorParallelInsideFocus Case = "f < x_im < 0"
	CaseMirrorParallelVirtual     Case = "f < 0 < x_im"
	CaseMirrorParallelConvex      Case = "0 < x_im < f"
)

// MirrorCentre builds the ray aimed at the mirror pole (0, 0).
//
//   - always:        object -> (0,0)
//   - x_im > 0:      dashed (0,0) -> image, solid (0,0) -> (−x_im/2, −y_im/2)
//   - x_im < 0:      solid (0,0) -> image
func MirrorCentre(xObj, yObj, xIm, yIm float64) Ray {
	r := Ray{Kind: ThroughCentre}
	r.Segments = append(r.Segments, seg(xObj, yObj, 0, 0, plot.Solid))

	switch {
	case xIm > 0:
		r.Case = CaseMirrorCentreVirtual
		r.Segments = append(r.Segments,
			seg(0, 0, xIm, yIm, plot.Dashed),
			seg(0, 0, -.5*xIm, -.5*yIm, plot.Solid),
		)
	case xIm < 0:
		r.Case = CaseMirrorCentreReal
		r.Segments = append(r.Segments, seg(0, 0, xIm, yIm, plot.Solid))
	}

	return r
}

// MirrorFocus builds the ray through the focus that leaves the mirror
// parallel to the axis at the image height.
//
//   - always:          object -> (0, y_im)
//   - x_im < 0:        horizontal y_im from 0 to x_im
//   - f < 0 < x_im:    (f,0) -> object, dashed horizontal 0..x_im,
//     horizontal 0..f/2
//   - 0 < x_im < f:    dashed horizontal 0..x_im, horizontal 0..−x_im/2,
//     dotted (0,y_im) -> (f,0)
func MirrorFocus(xObj, yObj, xIm, yIm, f float64) Ray {
	r := Ray{Kind: ThroughFocus}
	r.Segments = append(r.Segments, seg(xObj, yObj, 0, yIm, plot.Solid))

	switch {
	case xIm < 0:
		r.Case = CaseMirrorFocusReal
		r.Segments = append(r.Segments, hseg(yIm, 0, xIm, plot.Solid))
	case f < 0 && 0 < xIm:
		r.Case = CaseMirrorFocusConcaveInner
		r.Segments = append(r.Segments,
			seg(f, 0, xObj, yObj, plot.Solid),
			hseg(yIm, 0, xIm, plot.Dashed),
			hseg(yIm, 0, .5*f, plot.Solid),
		)
	case 0 < xIm && xIm < f:
		r.Case = CaseMirrorFocusConvex
		r.Segments = append(r.Segments,
			hseg(yIm, 0, xIm, plot.Dashed),
			hseg(yIm, 0, -.5*xIm, plot.Solid),
			seg(0, yIm, f, 0, plot.Dotted),
		)
	}

	return r
}

// MirrorParallel builds the ray leaving the object parallel to the axis and
// reflecting through (or away from) the focus.
//
//   - always:          horizontal y_obj from x_obj to 0
//   - x_im < f < 0:    (0,y_obj) -> image
//   - f < x_im < 0:    (0,y_obj) -> (f,0)
//   - f < 0 < x_im:    dashed (0,y_obj) -> image, (0,y_obj) -> (f,0)
//   - 0 < x_im < f:    dashed (0,y_obj) -> (f,0), (0,y_obj) -> (−f/2, 1.5·y_obj)
func MirrorParallel(xObj, yObj, xIm, yIm, f float64) Ray {
	r := Ray{Kind: ParallelToAxis}
	r.Segments = append(r.Segments, hseg(yObj, xObj, 0, plot.Solid))

	switch {
	case xIm < f && f < 0:
		r.Case = CaseMirrorParallelBeyondFocus
		r.Segments = append(r.Segments, seg(0, yObj, xIm, yIm, plot.Solid))
	case f < xIm && xIm < 0:
		r.Case = CaseMirrorParallelInsideFocus
		r.Segments = append(r.Segments, seg(0, yObj, f, 0, plot.Solid))
	case f < 0 && 0 < xIm:
		r.Case = CaseMirrorParallelVirtual
		r.Segments = append(r.Segments,
			seg(0, yObj, xIm, yIm, plot.Dashed),
			seg(0, yObj, f, 0, plot.Solid),
		)
	case 0 < xIm && xIm < f:
		r.Case = CaseMirrorParallelConvex
		r.Segments = append(r.Segments,
			seg(0, yObj, f, 0, plot.Dashed),
			seg(0, yObj, -.5*f, 1.5*yObj, plot.Solid),
		)
	}

	return r
}
