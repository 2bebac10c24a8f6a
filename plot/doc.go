// Package plot defines the drawing surface used to render ray diagrams,
// together with line styles, a colour palette and tick helpers.
//
// The tracers never talk to a graphics backend directly: they receive a
// Surface and issue segment, horizontal, vertical and point calls in world
// coordinates, then Show. Two in-package surfaces cover headless use:
//
//   - Recorder keeps every call in order (tests, golden comparisons).
//   - Nop discards everything.
//
// A raster implementation lives in package canvas.
package plot
