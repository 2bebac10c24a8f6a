// SPDX-License-Identifier: MIT
// Package: paraxial/canvas
//
// raster.go — pixel-level drawing onto an *image.RGBA.
//
// raster satisfies drivers.Displayer so tinyfont can write labels on it.
// Every primitive clips to the image; out-of-range pixels are dropped.

package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/katalvlaran/paraxial/plot"
	"tinygo.org/x/drivers"
)

// Dash patterns in pixels: on, off.
var (
	dashPattern = [2]int{6, 4}
	dotPattern  = [2]int{1, 3}
)

type raster struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*raster)(nil)

func newRaster(w, h int, bg color.RGBA) *raster {
	r := &raster{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	r.fillRect(0, 0, w, h, bg)
	return r
}

func (r *raster) Size() (x, y int16) {
	b := r.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (r *raster) SetPixel(x, y int16, c color.RGBA) {
	r.set(int(x), int(y), c)
}

// Display is a no-op: the image is already the output buffer.
func (r *raster) Display() error { return nil }

func (r *raster) set(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(r.img.Rect) {
		return
	}
	r.img.SetRGBA(x, y, c)
}

func (r *raster) fillRect(x, y, w, h int, c color.RGBA) {
	rect := image.Rect(x, y, x+w, y+h).Intersect(r.img.Rect)
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		for px := rect.Min.X; px < rect.Max.X; px++ {
			r.img.SetRGBA(px, py, c)
		}
	}
}

// stamp paints a w×w square centred on (x, y).
func (r *raster) stamp(x, y, w int, c color.RGBA) {
	if w <= 1 {
		r.set(x, y, c)
		return
	}
	h := w / 2
	r.fillRect(x-h, y-h, w, w, c)
}

// line draws a Bresenham line with the given dash style and pixel width.
// The dash phase runs continuously along the line.
func (r *raster) line(x0, y0, x1, y1 int, style plot.LineStyle, w int, c color.RGBA) {
	pattern, dashed := patternFor(style)
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}

	err := dx + dy
	for step := 0; ; step++ {
		if !dashed || step%(pattern[0]+pattern[1]) < pattern[0] {
			r.stamp(x0, y0, w, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// disc fills a circle of the given radius centred on (cx, cy).
func (r *raster) disc(cx, cy, radius int, c color.RGBA) {
	r2 := radius * radius
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= r2 {
				r.set(cx+x, cy+y, c)
			}
		}
	}
}

// frame outlines the rectangle rect.
func (r *raster) frame(rect image.Rectangle, c color.RGBA) {
	x0, y0, x1, y1 := rect.Min.X, rect.Min.Y, rect.Max.X-1, rect.Max.Y-1
	r.line(x0, y0, x1, y0, plot.Solid, 1, c)
	r.line(x0, y1, x1, y1, plot.Solid, 1, c)
	r.line(x0, y0, x0, y1, plot.Solid, 1, c)
	r.line(x1, y0, x1, y1, plot.Solid, 1, c)
}

func patternFor(style plot.LineStyle) ([2]int, bool) {
	switch style {
	case plot.Dashed:
		return dashPattern, true
	case plot.Dotted:
		return dotPattern, true
	default:
		return [2]int{}, false
	}
}

// pixelWidth maps a stroke width in points to whole pixels, at least 1.
func pixelWidth(points float64) int {
	w := int(math.Round(points))
	if w < 1 {
		return 1
	}
	return w
}

// clipLine clips the segment to [xmin, xmax]×[ymin, ymax]
// (Liang–Barsky). ok is false when nothing is left.
func clipLine(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u1, u2 := 0.0, 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			u1 = math.Max(u1, t)
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			u2 = math.Min(u2, t)
		}
	}

	return x0 + u1*dx, y0 + u1*dy, x0 + u2*dx, y0 + u2*dy, true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
