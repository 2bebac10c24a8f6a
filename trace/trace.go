// SPDX-License-Identifier: MIT
// Package: paraxial/trace

package trace

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/paraxial/optics"
	"github.com/katalvlaran/paraxial/plot"
	"github.com/katalvlaran/paraxial/rays"
)

// Widths of the fixed scene strokes, in points.
const (
	markerWidth = 2
	axisWidth   = .5
)

// msgNoImage is logged when the object sits at the principal focus.
const msgNoImage = "object at focus, no image formed"

// Mirror solves obj in front of m and draws the ray diagram on s.
//
// Draw order: outline, centre ray, focus ray, parallel ray, object and
// image markers, focus, axis, optional tick relabelling, Show.
func Mirror(s plot.Surface, obj optics.Object, m optics.Mirror, opts ...Option) (optics.MirrorResult, error) {
	cfg := newConfig(opts...)

	res, err := optics.SolveMirror(obj, m)
	if err != nil {
		return optics.MirrorResult{}, err
	}

	if !res.Formed() {
		cfg.logger.Printf(msgNoImage)
		drawDegenerate(s, cfg, obj, res.F)
		return res, show(s, "Mirror")
	}

	im := res.Image
	drawOutline(s, cfg, elementBounds(obj, im))

	drawRay(s, rays.MirrorCentre(obj.X, obj.Y, im.X, im.Y), cfg.centre)
	drawRay(s, rays.MirrorFocus(obj.X, obj.Y, im.X, im.Y, res.F), cfg.focus)
	drawRay(s, rays.MirrorParallel(obj.X, obj.Y, im.X, im.Y, res.F), cfg.parallel)

	drawMarkers(s, obj, im)
	s.DrawPoint(res.F, 0, plot.Style{Color: plot.Black})
	drawSegment(s, rays.Axis(obj.X, im.X, res.F), plot.Style{Color: plot.Black, Width: axisWidth})
	invertTicks(s, cfg)

	return res, show(s, "Mirror")
}

// Lens solves obj in front of l and draws the ray diagram on s.
//
// Draw order: outline, centre ray, f2 ray, f1 ray, object and image
// markers, both foci, axis, optional tick relabelling, Show.
func Lens(s plot.Surface, obj optics.Object, l optics.Lens, opts ...Option) (optics.LensResult, error) {
	cfg := newConfig(opts...)

	res, err := optics.SolveLens(obj, l)
	if err != nil {
		return optics.LensResult{}, err
	}

	if !res.Formed() {
		cfg.logger.Printf(msgNoImage)
		drawDegenerate(s, cfg, obj, res.F1)
		return res, show(s, "Lens")
	}

	im := res.Image
	drawOutline(s, cfg, elementBounds(obj, im))

	drawRay(s, rays.LensCentre(obj.X, obj.Y, im.X, im.Y), cfg.centre)
	drawRay(s, rays.LensParallel(obj.X, obj.Y, im.X, im.Y, res.F2), cfg.parallel)
	drawRay(s, rays.LensFocus(obj.X, obj.Y, im.X, im.Y, res.F1), cfg.focus)

	drawMarkers(s, obj, im)
	s.DrawPoint(res.F1, 0, plot.Style{Color: plot.Black})
	s.DrawPoint(res.F2, 0, plot.Style{Color: plot.Black})
	drawSegment(s, rays.Axis(obj.X, im.X, res.F1), plot.Style{Color: plot.Black, Width: axisWidth})
	invertTicks(s, cfg)

	return res, show(s, "Lens")
}

// drawDegenerate draws what remains meaningful without an image: the
// element next to the object and the axis over x_obj and ±f.
func drawDegenerate(s plot.Surface, cfg config, obj optics.Object, f float64) {
	drawOutline(s, cfg, optics.DegenerateBounds(obj.Y))
	drawSegment(s, rays.DegenerateAxis(obj.X, f), plot.Style{Color: plot.Black, Width: axisWidth})
}

// elementBounds spans object and image, falling back to the object alone
// when the image height gives no sign case.
func elementBounds(obj optics.Object, im optics.Image) optics.Bounds {
	if b, ok := optics.ElementBounds(obj.Y, im.Y); ok {
		return b
	}
	return optics.DegenerateBounds(obj.Y)
}

func drawOutline(s plot.Surface, cfg config, b optics.Bounds) {
	seg := rays.Outline(b)
	drawSegment(s, seg, plot.Style{Color: cfg.element, Line: seg.Line, Width: rays.OutlineWidth})
}

func drawMarkers(s plot.Surface, obj optics.Object, im optics.Image) {
	st := plot.Style{Color: plot.Black, Width: markerWidth}
	drawSegment(s, rays.Marker(obj.X, obj.Y), st)
	drawSegment(s, rays.Marker(im.X, im.Y), st)
}

// drawRay strokes every segment of r in colour c, keeping each segment's
// line style.
func drawRay(s plot.Surface, r rays.Ray, c color.RGBA) {
	for _, seg := range r.Segments {
		drawSegment(s, seg, plot.Style{Color: c, Line: seg.Line})
	}
}

// drawSegment maps a segment shape onto the matching Surface call.
// st.Line is taken as given; callers copy seg.Line where it matters.
func drawSegment(s plot.Surface, seg rays.Segment, st plot.Style) {
	switch seg.Shape {
	case rays.Horizontal:
		s.DrawHorizontal(seg.Y0, seg.X0, seg.X1, st)
	case rays.Vertical:
		s.DrawVertical(seg.X0, seg.Y0, seg.Y1, st)
	default:
		s.DrawSegment(seg.X0, seg.Y0, seg.X1, seg.Y1, st)
	}
}

// invertTicks relabels the current x ticks as round(−t, 2).
func invertTicks(s plot.Surface, cfg config) {
	if !cfg.invert {
		return
	}
	ticks := s.XTicks()
	s.SetXTicks(ticks, plot.InvertedLabels(ticks))
}

func show(s plot.Surface, method string) error {
	if err := s.Show(); err != nil {
		return fmt.Errorf("%s: show: %w", method, err)
	}
	return nil
}
