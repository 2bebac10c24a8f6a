// SPDX-License-Identifier: MIT
// Package: paraxial/optics
//
// types.go — input and result values.

package optics

import "math"

// Object is the object placed in front of the element.
// X is its position on the optical axis (X < 0), Y its height (Y != 0).
type Object struct {
	X float64
	Y float64
}

// Lens describes a thin lens.
//
// Fields:
//   - R1: radius of the first surface met by the rays (> 0 convex, < 0 concave).
//   - R2: radius of the second surface, same sign rule.
//   - N0: refractive index of the surrounding medium.
//   - N:  refractive index of the lens material.
type Lens struct {
	R1 float64
	R2 float64
	N0 float64
	N  float64
}

// Mirror describes a spherical mirror; R < 0 is concave, R > 0 convex.
type Mirror struct {
	R float64
}

// Outcome tags a solver result.
type Outcome uint8

const (
	// Imaged means a finite image was formed.
	Imaged Outcome = iota + 1
	// Degenerate means the object sits at the principal focus; no image.
	Degenerate
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Imaged:
		return "imaged"
	case Degenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// Image is the computed image. Every field is NaN when no image is formed.
type Image struct {
	X float64 // position on the optical axis
	Y float64 // height
	M float64 // magnification
}

// noImage is the undefined-image marker.
func noImage() Image {
	return Image{X: math.NaN(), Y: math.NaN(), M: math.NaN()}
}

// MirrorResult is the output of SolveMirror.
type MirrorResult struct {
	Outcome Outcome
	Image   Image
	F       float64 // focal length, R/2
}

// Formed reports whether an image was formed.
func (r MirrorResult) Formed() bool { return r.Outcome == Imaged }

// Values returns (x_im, y_im, M, f); the first three are NaN when no image
// is formed.
func (r MirrorResult) Values() (xIm, yIm, m, f float64) {
	return r.Image.X, r.Image.Y, r.Image.M, r.F
}

// LensResult is the output of SolveLens.
type LensResult struct {
	Outcome Outcome
	Image   Image
	F1      float64 // principal (object-side) focus
	F2      float64 // secondary focus, −F1
}

// Formed reports whether an image was formed.
func (r LensResult) Formed() bool { return r.Outcome == Imaged }

// Values returns (x_im, y_im, M, f1); the first three are NaN when no image
// is formed.
func (r LensResult) Values() (xIm, yIm, m, f1 float64) {
	return r.Image.X, r.Image.Y, r.Image.M, r.F1
}

// Bounds is the vertical extent [Down, Up] of the drawn element.
type Bounds struct {
	Up   float64
	Down float64
}
