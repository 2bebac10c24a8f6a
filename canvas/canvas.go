// SPDX-License-Identifier: MIT
// Package: paraxial/canvas
//
// canvas.go — the buffered Surface and its layout.
//
// Layout:
//   • World bounds cover every buffered coordinate plus a 5% margin on each
//     side; a zero span is widened to ±1 around its centre.
//   • The plot area is the image minus fixed pixel margins for labels.
//   • x ticks are pinned by SetXTicks, otherwise chosen by plot.Ticks.

package canvas

import (
	"fmt"
	"image"
	"math"

	"github.com/katalvlaran/paraxial/plot"
	"tinygo.org/x/tinyfont"
)

// Pixel margins around the plot area and tick geometry.
const (
	marginLeft   = 56
	marginRight  = 16
	marginTop    = 16
	marginBottom = 36
	tickLen      = 5
	pointRadius  = 3

	// boundsMargin is the fraction of the data span added on each side.
	boundsMargin = .05

	// Approximate pixel spacing between ticks.
	xTickSpacing = 80
	yTickSpacing = 60
)

type opKind uint8

const (
	opSegment opKind = iota
	opPoint
)

type op struct {
	kind   opKind
	x0, y0 float64
	x1, y1 float64
	style  plot.Style
}

// Canvas is a raster plot.Surface. The zero value is not usable; call New.
type Canvas struct {
	cfg    config
	ops    []op
	ticks  []float64
	labels []string
	pinned bool
}

var _ plot.Surface = (*Canvas)(nil)

// New returns an empty Canvas.
func New(opts ...Option) *Canvas {
	return &Canvas{cfg: newConfig(opts...)}
}

func (c *Canvas) DrawSegment(x0, y0, x1, y1 float64, s plot.Style) {
	c.ops = append(c.ops, op{kind: opSegment, x0: x0, y0: y0, x1: x1, y1: y1, style: s})
}

func (c *Canvas) DrawHorizontal(y, x0, x1 float64, s plot.Style) {
	c.DrawSegment(x0, y, x1, y, s)
}

func (c *Canvas) DrawVertical(x, y0, y1 float64, s plot.Style) {
	c.DrawSegment(x, y0, x, y1, s)
}

func (c *Canvas) DrawPoint(x, y float64, s plot.Style) {
	c.ops = append(c.ops, op{kind: opPoint, x0: x, y0: y, x1: x, y1: y, style: s})
}

// XTicks returns the pinned ticks, or the ticks the current content would
// be drawn with.
func (c *Canvas) XTicks() []float64 {
	if c.pinned {
		return append([]float64(nil), c.ticks...)
	}
	w := c.world()
	return plot.Ticks(w.xMin, w.xMax, c.xTickTarget())
}

// SetXTicks pins the x ticks and their labels. Missing labels are filled
// with the formatted tick value; extra labels are ignored.
func (c *Canvas) SetXTicks(ticks []float64, labels []string) {
	c.ticks = append([]float64(nil), ticks...)
	c.labels = make([]string, len(ticks))
	for i, t := range ticks {
		if i < len(labels) {
			c.labels[i] = labels[i]
		} else {
			c.labels[i] = plot.FormatTick(t)
		}
	}
	c.pinned = true
}

// Show renders the buffered drawing and passes it to the presenter.
func (c *Canvas) Show() error {
	if err := c.cfg.presenter.Present(c.Render()); err != nil {
		return fmt.Errorf("canvas: present: %w", err)
	}
	return nil
}

// Reset drops every buffered call and pinned tick.
func (c *Canvas) Reset() {
	c.ops = c.ops[:0]
	c.ticks, c.labels, c.pinned = nil, nil, false
}

// Len reports the number of buffered drawing calls.
func (c *Canvas) Len() int { return len(c.ops) }

// Render rasterises the buffered drawing onto a new image.
func (c *Canvas) Render() *image.RGBA {
	r := newRaster(c.cfg.width, c.cfg.height, c.cfg.background)
	area := c.plotArea()
	v := viewport{world: c.world(), area: area}

	for _, o := range c.ops {
		switch o.kind {
		case opPoint:
			if x, y, ok := v.project(o.x0, o.y0); ok {
				r.disc(roundInt(x), roundInt(y), pointRadius, o.style.Color)
			}
		default:
			c.stroke(r, v, o)
		}
	}

	r.frame(area, c.cfg.foreground)
	c.drawXTicks(r, v)
	c.drawYTicks(r, v)

	return r.img
}

func (c *Canvas) stroke(r *raster, v viewport, o op) {
	x0, y0, ok0 := v.project(o.x0, o.y0)
	x1, y1, ok1 := v.project(o.x1, o.y1)
	if !ok0 || !ok1 {
		return
	}
	a := v.area
	x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1,
		float64(a.Min.X), float64(a.Min.Y), float64(a.Max.X-1), float64(a.Max.Y-1))
	if !ok {
		return
	}
	r.line(roundInt(x0), roundInt(y0), roundInt(x1), roundInt(y1),
		o.style.Line, pixelWidth(o.style.StrokeWidth()), o.style.Color)
}

func (c *Canvas) drawXTicks(r *raster, v viewport) {
	ticks, labels := c.ticks, c.labels
	if !c.pinned {
		ticks = plot.Ticks(v.world.xMin, v.world.xMax, c.xTickTarget())
		labels = formatAll(ticks)
	}

	fg := c.cfg.foreground
	bottom := v.area.Max.Y - 1
	for i, t := range ticks {
		if t < v.world.xMin || t > v.world.xMax {
			continue
		}
		px, _, _ := v.project(t, v.world.yMin)
		x := roundInt(px)
		r.line(x, bottom, x, bottom+tickLen, plot.Solid, 1, fg)

		_, w := tinyfont.LineWidth(c.cfg.font, labels[i])
		baseline := bottom + tickLen + int(c.cfg.font.GetYAdvance())
		tinyfont.WriteLine(r, c.cfg.font, int16(x-int(w)/2), int16(baseline), labels[i], fg)
	}
}

func (c *Canvas) drawYTicks(r *raster, v viewport) {
	target := v.area.Dy() / yTickSpacing
	ticks := plot.Ticks(v.world.yMin, v.world.yMax, max(target, 2))

	fg := c.cfg.foreground
	left := v.area.Min.X
	half := int(c.cfg.font.GetYAdvance()) / 3
	for _, t := range ticks {
		_, py, _ := v.project(v.world.xMin, t)
		y := roundInt(py)
		r.line(left-tickLen, y, left, y, plot.Solid, 1, fg)

		label := plot.FormatTick(t)
		_, w := tinyfont.LineWidth(c.cfg.font, label)
		tinyfont.WriteLine(r, c.cfg.font, int16(left-tickLen-2-int(w)), int16(y+half), label, fg)
	}
}

func (c *Canvas) xTickTarget() int {
	return max(c.plotArea().Dx()/xTickSpacing, 2)
}

// plotArea is the pixel rectangle inside the margins. On tiny images it
// degrades to the whole image.
func (c *Canvas) plotArea() image.Rectangle {
	w, h := c.cfg.width, c.cfg.height
	if w <= marginLeft+marginRight+1 || h <= marginTop+marginBottom+1 {
		return image.Rect(0, 0, w, h)
	}
	return image.Rect(marginLeft, marginTop, w-marginRight, h-marginBottom)
}

// world is the autoscaled data rectangle.
func (c *Canvas) world() bounds {
	b := bounds{
		xMin: math.Inf(1), xMax: math.Inf(-1),
		yMin: math.Inf(1), yMax: math.Inf(-1),
	}
	for _, o := range c.ops {
		b.include(o.x0, o.y0)
		b.include(o.x1, o.y1)
	}
	if b.xMin > b.xMax {
		return bounds{xMin: -1, xMax: 1, yMin: -1, yMax: 1}
	}

	b.xMin, b.xMax = pad(b.xMin, b.xMax)
	b.yMin, b.yMax = pad(b.yMin, b.yMax)
	return b
}

type bounds struct {
	xMin, xMax float64
	yMin, yMax float64
}

// include grows b to contain (x, y); non-finite coordinates are skipped.
func (b *bounds) include(x, y float64) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	b.xMin = math.Min(b.xMin, x)
	b.xMax = math.Max(b.xMax, x)
	b.yMin = math.Min(b.yMin, y)
	b.yMax = math.Max(b.yMax, y)
}

// pad adds boundsMargin of the span on each side, or ±1 for a zero span.
func pad(lo, hi float64) (float64, float64) {
	span := hi - lo
	if span == 0 {
		return lo - 1, hi + 1
	}
	return lo - boundsMargin*span, hi + boundsMargin*span
}

// viewport maps world coordinates onto the plot area, y pointing up.
type viewport struct {
	world bounds
	area  image.Rectangle
}

func (v viewport) project(x, y float64) (px, py float64, ok bool) {
	if !isFinite(x) || !isFinite(y) {
		return 0, 0, false
	}
	w, a := v.world, v.area
	px = float64(a.Min.X) + (x-w.xMin)/(w.xMax-w.xMin)*float64(a.Dx()-1)
	py = float64(a.Min.Y) + (w.yMax-y)/(w.yMax-w.yMin)*float64(a.Dy()-1)
	return px, py, true
}

func formatAll(ticks []float64) []string {
	out := make([]string, len(ticks))
	for i, t := range ticks {
		out[i] = plot.FormatTick(t)
	}
	return out
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func roundInt(v float64) int { return int(math.Round(v)) }
