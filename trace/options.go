// SPDX-License-Identifier: MIT
// Package: paraxial/trace
//
// options.go — functional options for the diagram tracers.
//
// Contract:
//   • Options are functional (type Option func(*config)); the last one wins.
//   • Option constructors panic on meaningless input (nil logger).
//     Tracers themselves never panic.
//   • Defaults are resolved in newConfig only.

package trace

import (
	"image/color"
	"log"

	"github.com/katalvlaran/paraxial/plot"
)

// Logger receives the informational notes of a trace run.
// *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...interface{})
}

// Option customises a Mirror or Lens run.
type Option func(*config)

type config struct {
	element  color.RGBA
	focus    color.RGBA
	parallel color.RGBA
	centre   color.RGBA
	invert   bool
	logger   Logger
}

// newConfig applies opts over the defaults: blue element, red focus ray,
// lime parallel ray, gray centre ray, no axis inversion, log.Default().
func newConfig(opts ...Option) config {
	c := config{
		element:  plot.Blue,
		focus:    plot.Red,
		parallel: plot.Lime,
		centre:   plot.Gray,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithElementColor sets the colour of the dashed element outline.
func WithElementColor(c color.RGBA) Option {
	return func(cfg *config) { cfg.element = c }
}

// WithFocusRayColor sets the colour of the ray through the object-side
// focus: the mirror focus ray and the lens f1 ray.
func WithFocusRayColor(c color.RGBA) Option {
	return func(cfg *config) { cfg.focus = c }
}

// WithParallelRayColor sets the colour of the ray entering parallel to the
// axis: the mirror parallel ray and the lens f2 ray.
func WithParallelRayColor(c color.RGBA) Option {
	return func(cfg *config) { cfg.parallel = c }
}

// WithCentreRayColor sets the colour of the ray through the centre or pole.
func WithCentreRayColor(c color.RGBA) Option {
	return func(cfg *config) { cfg.centre = c }
}

// WithInvertXAxis relabels every x tick t as round(−t, 2) before Show, so
// the diagram reads with light travelling right to left.
func WithInvertXAxis(invert bool) Option {
	return func(cfg *config) { cfg.invert = invert }
}

// WithLogger replaces the default standard logger. Panics on nil.
func WithLogger(l Logger) Option {
	if l == nil {
		panic("trace: WithLogger(nil)")
	}
	return func(cfg *config) { cfg.logger = l }
}
