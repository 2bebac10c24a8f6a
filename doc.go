// Package paraxial traces light through a spherical mirror or a thin lens
// in the paraxial (first-order) approximation and draws the classic
// three-ray diagram.
//
// The module is split by concern:
//
//	optics/  input types, validation, the mirror and lens equations
//	rays/    sign-based construction rules for the three rays
//	plot/    the Surface drawing interface, styles, colours, ticks
//	trace/   Mirror and Lens: solve, classify, draw, show
//	canvas/  raster Surface with PNG output (tinygo drivers + tinyfont)
//	window/  ebiten window presenter
//
// Quick example:
//
//	c := canvas.New(canvas.WithPresenter(canvas.PNGFile("mirror.png")))
//	res, err := trace.Mirror(c, optics.Object{X: -1.2, Y: 1}, optics.Mirror{R: -1})
//	// res.Image.X ≈ -0.857, res.Image.M ≈ -0.714, res.F = -0.5
//
// Sign convention: light travels towards +x, the element sits at x = 0, so
// a real object has x < 0. Mirror radii are negative for concave surfaces.
//
// The command in cmd/paraxial wraps all of this behind flags or a JSON
// scene file.
package paraxial
