// SPDX-License-Identifier: MIT
// Package: paraxial/optics
//
// errors.go — sentinel errors for input validation.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Returned errors wrap a sentinel with the method name for context.
//   • The object-at-focus case is a result, never an error.

package optics

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidObjectPosition is returned for X > 0. Virtual objects are not
	// supported; rays coming from positive x are shown with an inverted
	// x-axis display instead.
	ErrInvalidObjectPosition = errors.New("optics: virtual object not supported, place the object at x < 0 (use inverted x-axis labels to show rays from positive x)")

	// ErrObjectAtElement is returned when the object sits on the element (X == 0).
	ErrObjectAtElement = errors.New("optics: object cannot be placed at the element")

	// ErrInvalidGeometry is returned for a zero radius of curvature, or for a
	// lens whose two radii are equal (no optical power).
	ErrInvalidGeometry = errors.New("optics: invalid geometry")

	// ErrInvalidObjectHeight is returned when the object height is zero.
	ErrInvalidObjectHeight = errors.New("optics: object height cannot be zero")

	// ErrInvalidMedium is returned for a non-positive refractive index, or
	// when the lens and the surrounding medium share the same index.
	ErrInvalidMedium = errors.New("optics: invalid refractive index")

	// ErrNonFinite is returned when any input is NaN or ±Inf.
	ErrNonFinite = errors.New("optics: NaN or Inf input")
)

// Method names used as error context.
const (
	MethodSolveLens   = "SolveLens"
	MethodSolveMirror = "SolveMirror"
)

// opticsErrorf prefixes a sentinel with the method and a short detail,
// keeping errors.Is(err, sentinel) true.
func opticsErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
