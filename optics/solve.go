// SPDX-License-Identifier: MIT
// Package: paraxial/optics
//
// solve.go — closed-form imaging for the spherical mirror and the thin lens.

package optics

// SolveMirror computes the image formed by a spherical mirror.
//
// Steps:
//  1. Validate (see ValidateMirror).
//  2. f = r/2.
//  3. If x_obj == f the imaging equation has a zero denominator: return a
//     Degenerate result carrying only f.
//  4. x_im = (1/f − 1/x_obj)⁻¹, M = −x_im/x_obj, y_im = M·y_obj.
//  5. Results outside the float64 range fail with ErrNonFinite.
//
// Complexity: O(1).
func SolveMirror(obj Object, m Mirror) (MirrorResult, error) {
	if err := ValidateMirror(obj, m); err != nil {
		return MirrorResult{}, err
	}

	f := .5 * m.R

	// Distinct floats may still share a reciprocal, hence the second test.
	inv := 1/f - 1/obj.X
	if obj.X == f || inv == 0 {
		return MirrorResult{Outcome: Degenerate, Image: noImage(), F: f}, nil
	}

	xIm := 1 / inv
	M := -xIm / obj.X
	im, err := imageOf(MethodSolveMirror, obj, f, inv, xIm, M)
	if err != nil {
		return MirrorResult{}, err
	}

	return MirrorResult{Outcome: Imaged, Image: im, F: f}, nil
}

// SolveLens computes the image formed by a thin lens.
//
// Steps:
//  1. Validate (see ValidateLens).
//  2. f1 = n0/(n − n0) · (r1·r2)/(r1 − r2), f2 = −f1.
//  3. If x_obj == f1: Degenerate result carrying only the foci.
//  4. x_im = (−1/f1 + 1/x_obj)⁻¹, M = x_im/x_obj, y_im = M·y_obj.
//  5. Results outside the float64 range fail with ErrNonFinite.
//
// Complexity: O(1).
func SolveLens(obj Object, l Lens) (LensResult, error) {
	if err := ValidateLens(obj, l); err != nil {
		return LensResult{}, err
	}

	f1 := FocalLength(l)
	f2 := -f1

	inv := -1/f1 + 1/obj.X
	if obj.X == f1 || inv == 0 {
		return LensResult{Outcome: Degenerate, Image: noImage(), F1: f1, F2: f2}, nil
	}

	xIm := 1 / inv
	M := xIm / obj.X
	im, err := imageOf(MethodSolveLens, obj, f1, inv, xIm, M)
	if err != nil {
		return LensResult{}, err
	}

	return LensResult{Outcome: Imaged, Image: im, F1: f1, F2: f2}, nil
}

// imageOf assembles the image and rejects results that left the float64
// range: a subnormal x_obj overflows 1/x_obj, and an underflowed image
// height breaks y_im = M·y_obj with y_im != 0.
func imageOf(method string, obj Object, f, inv, xIm, M float64) (Image, error) {
	yIm := M * obj.Y
	if !finite(f, inv, xIm, M, yIm) || xIm == 0 || yIm == 0 {
		return Image{}, opticsErrorf(method, ErrNonFinite,
			"image out of range for x_obj=%v y_obj=%v f=%v", obj.X, obj.Y, f)
	}

	return Image{X: xIm, Y: yIm, M: M}, nil
}

// FocalLength returns the principal focus f1 of l (lensmaker's equation).
// The caller guarantees n != n0 and r1 != r2; ValidateLens checks both.
func FocalLength(l Lens) float64 {
	return l.N0 / (l.N - l.N0) * (l.R1 * l.R2) / (l.R1 - l.R2)
}
