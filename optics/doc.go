// Package optics implements the first-order (paraxial) imaging equations for
// a thin lens and a spherical mirror.
//
// What:
//
//   - Object, Lens, Mirror: value inputs (no identity, no shared state).
//   - ValidateLens / ValidateMirror: reject physically meaningless inputs.
//   - SolveLens / SolveMirror: focal length(s), image position, image height
//     and magnification.
//   - ElementBounds: vertical extent of the drawn element for an imaged object.
//
// Conventions:
//
//   - Light travels from negative x towards the element placed at x = 0, so a
//     real object always has X < 0.
//   - Mirror: R < 0 is concave, R > 0 is convex, f = R/2.
//   - Lens: a radius is positive when the surface is convex as seen from the
//     left. f1 = n0/(n−n0)·(r1·r2)/(r1−r2) is the principal (object-side)
//     focus and f2 = −f1 the secondary one.
//   - Magnification is M = −x_im/x_obj for the mirror and M = x_im/x_obj for
//     the lens. Both conventions are kept as they are.
//
// Degenerate case:
//
//	An object placed exactly at the principal focus forms no image. This is
//	not an error: the solver returns Outcome == Degenerate, the focal
//	length(s) and NaN in every image field.
//
// Errors:
//
//   - ErrNonFinite:             NaN or ±Inf in any input.
//   - ErrInvalidObjectPosition: X > 0 (virtual object).
//   - ErrObjectAtElement:       X == 0.
//   - ErrInvalidGeometry:       a zero radius, or r1 == r2 for a lens.
//   - ErrInvalidObjectHeight:   Y == 0.
//   - ErrInvalidMedium:         non-positive index, or lens index equal to
//     the medium index.
//
// Complexity: every function is O(1) time and space.
package optics
