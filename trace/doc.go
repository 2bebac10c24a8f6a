// Package trace draws complete paraxial ray diagrams for a spherical mirror
// and a thin lens.
//
// Mirror and Lens are the only entry points. Each validates and solves the
// configuration with package optics, classifies the three construction rays
// with package rays and issues the drawing calls on an injected
// plot.Surface, in a fixed order:
//
//  1. element outline (dashed, blue by default)
//  2. the three construction rays
//  3. object and image markers
//  4. focal point(s)
//  5. optical axis
//  6. relabelled x ticks, when WithInvertXAxis(true) is given
//  7. Surface.Show
//
// When the object sits at the principal focus no image is formed: a note is
// logged, only the outline and the axis are drawn, Show is still called and
// the returned result has Outcome optics.Degenerate with NaN image fields.
//
// Validation failures return before any drawing call. A Show failure is
// returned wrapped, together with the already computed result.
//
// Example:
//
//	res, err := trace.Lens(plot.Nop{}, optics.Object{X: -.8, Y: 1},
//		optics.Lens{R1: .2, R2: -.3, N0: 1, N: 1.5})
//	if err != nil {
//		// errors.Is(err, optics.ErrInvalidGeometry) etc.
//	}
//	xIm, yIm, m, f1 := res.Values()
package trace
