// Package canvas is a raster implementation of plot.Surface.
//
// A Canvas buffers every drawing call. Show autoscales the world bounds over
// all buffered coordinates (plus a 5% margin), rasterises the strokes onto
// an *image.RGBA, draws the frame, tick marks and labels, and hands the
// image to a Presenter:
//
//	c := canvas.New(canvas.WithSize(800, 600), canvas.WithPresenter(canvas.PNGFile("out.png")))
//	_, err := trace.Mirror(c, obj, mirror)
//
// Rasterisation goes through the tinygo drivers.Displayer contract, so text
// is drawn with tinyfont and any Displayer-shaped target could be swapped in.
//
// Line styles: solid, dashed (6 px on, 4 px off) and dotted (1 px on, 3 px
// off). Widths are in points, one point per pixel, never thinner than 1 px.
//
// A Canvas is not safe for concurrent use.
package canvas
