// SPDX-License-Identifier: MIT
// Package: paraxial/canvas
//
// options.go — functional options for New.
//
// Option constructors panic on meaningless input (non-positive or oversized
// dimensions, nil presenter or font). Drawing never panics.

package canvas

import (
	"image/color"
	"math"

	"github.com/katalvlaran/paraxial/plot"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Default canvas dimensions in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Option customises a Canvas.
type Option func(*config)

type config struct {
	width, height int
	background    color.RGBA
	foreground    color.RGBA
	font          tinyfont.Fonter
	presenter     Presenter
}

func newConfig(opts ...Option) config {
	c := config{
		width:      DefaultWidth,
		height:     DefaultHeight,
		background: plot.White,
		foreground: plot.Black,
		font:       &proggy.TinySZ8pt7b,
		presenter:  Discard,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithSize sets the image size in pixels. Both sides must lie in
// [1, math.MaxInt16], the coordinate range of a drivers.Displayer.
func WithSize(width, height int) Option {
	if width <= 0 || height <= 0 || width > math.MaxInt16 || height > math.MaxInt16 {
		panic("canvas: WithSize out of range")
	}
	return func(c *config) { c.width, c.height = width, height }
}

// WithBackground sets the fill colour of the image.
func WithBackground(bg color.RGBA) Option {
	return func(c *config) { c.background = bg }
}

// WithForeground sets the colour of the frame, ticks and labels.
func WithForeground(fg color.RGBA) Option {
	return func(c *config) { c.foreground = fg }
}

// WithFont sets the tick label font. Panics on nil.
func WithFont(f tinyfont.Fonter) Option {
	if f == nil {
		panic("canvas: WithFont(nil)")
	}
	return func(c *config) { c.font = f }
}

// WithPresenter sets where Show sends the finished image. Panics on nil.
func WithPresenter(p Presenter) Option {
	if p == nil {
		panic("canvas: WithPresenter(nil)")
	}
	return func(c *config) { c.presenter = p }
}
