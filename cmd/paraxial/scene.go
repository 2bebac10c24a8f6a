// SPDX-License-Identifier: MIT
// Package: paraxial/cmd/paraxial
//
// scene.go — JSON scene files and their mapping onto trace options.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/katalvlaran/paraxial/optics"
	"github.com/katalvlaran/paraxial/plot"
	"github.com/katalvlaran/paraxial/trace"
)

// Element kinds accepted by -element and the scene file.
const (
	elementMirror = "mirror"
	elementLens   = "lens"
)

var errUnknownElement = errors.New("unknown element")

// Scene is one diagram request, read from flags or a JSON file.
type Scene struct {
	Element string  `json:"element"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`

	// Mirror
	R float64 `json:"r,omitempty"`

	// Lens
	R1 float64 `json:"r1,omitempty"`
	R2 float64 `json:"r2,omitempty"`
	N0 float64 `json:"n0,omitempty"`
	N  float64 `json:"n,omitempty"`

	Invert bool   `json:"invert,omitempty"`
	Out    string `json:"out,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`

	Colors Colors `json:"colors,omitempty"`
}

// Colors overrides the default palette by name ("lime") or hex ("#00ff00").
type Colors struct {
	Element  string `json:"element,omitempty"`
	Focus    string `json:"focus,omitempty"`
	Parallel string `json:"parallel,omitempty"`
	Centre   string `json:"centre,omitempty"`
}

// loadScene reads a Scene from a JSON file. Unknown fields are rejected.
func loadScene(path string) (Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scene{}, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	var s Scene
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Scene{}, fmt.Errorf("decode scene %s: %w", path, err)
	}
	return s, nil
}

func (s Scene) object() optics.Object { return optics.Object{X: s.X, Y: s.Y} }

func (s Scene) mirror() optics.Mirror { return optics.Mirror{R: s.R} }

func (s Scene) lens() optics.Lens {
	return optics.Lens{R1: s.R1, R2: s.R2, N0: s.N0, N: s.N}
}

// options turns the scene's display settings into trace options.
func (s Scene) options() ([]trace.Option, error) {
	opts := []trace.Option{trace.WithInvertXAxis(s.Invert)}

	for _, c := range []struct {
		name string
		with func(color.RGBA) trace.Option
	}{
		{s.Colors.Element, trace.WithElementColor},
		{s.Colors.Focus, trace.WithFocusRayColor},
		{s.Colors.Parallel, trace.WithParallelRayColor},
		{s.Colors.Centre, trace.WithCentreRayColor},
	} {
		if c.name == "" {
			continue
		}
		rgba, ok := plot.ParseColor(c.name)
		if !ok {
			return nil, fmt.Errorf("invalid colour %q", c.name)
		}
		opts = append(opts, c.with(rgba))
	}

	return opts, nil
}
