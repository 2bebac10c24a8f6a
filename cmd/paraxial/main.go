// Command paraxial traces an object through a spherical mirror or a thin
// lens, prints the image data and draws the ray diagram.
//
// Usage:
//
//	paraxial -element mirror -x -1.2 -y 1 -r -1
//	paraxial -element lens -x -0.8 -y 1 -n0 1 -n 1.5 -r1 0.2 -r2 -0.3 -out lens.png
//	paraxial -scene scene.json
//
// Without -out the diagram opens in a window; close it or press Esc to exit.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/paraxial/canvas"
	"github.com/katalvlaran/paraxial/plot"
	"github.com/katalvlaran/paraxial/trace"
	"github.com/katalvlaran/paraxial/window"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "paraxial:", err)
		os.Exit(1)
	}
}

// run parses args, traces the scene and prints the results to out.
func run(args []string, out io.Writer) error {
	s, err := parseArgs(args)
	if err != nil {
		return err
	}
	if s.Element != elementMirror && s.Element != elementLens {
		return fmt.Errorf("%w %q (want %s or %s)", errUnknownElement, s.Element, elementMirror, elementLens)
	}

	surface, err := newSurface(s)
	if err != nil {
		return err
	}

	opts, err := s.options()
	if err != nil {
		return err
	}
	opts = append(opts, trace.WithLogger(log.New(out, "", 0)))

	switch s.Element {
	case elementMirror:
		res, err := trace.Mirror(surface, s.object(), s.mirror(), opts...)
		if err != nil {
			return err
		}
		xIm, yIm, m, f := res.Values()
		printResults(out, xIm, yIm, m, "f", f)
	case elementLens:
		res, err := trace.Lens(surface, s.object(), s.lens(), opts...)
		if err != nil {
			return err
		}
		xIm, yIm, m, f1 := res.Values()
		printResults(out, xIm, yIm, m, "f1", f1)
	}

	return nil
}

// parseArgs builds a Scene from flags, or from -scene when given.
func parseArgs(args []string) (Scene, error) {
	fs := flag.NewFlagSet("paraxial", flag.ContinueOnError)

	var s Scene
	fs.StringVar(&s.Element, "element", elementMirror, "optical element: 'mirror' or 'lens'")
	fs.Float64Var(&s.X, "x", -1.2, "object position on the axis (< 0)")
	fs.Float64Var(&s.Y, "y", 1, "object height (!= 0)")
	fs.Float64Var(&s.R, "r", -1, "mirror radius (< 0 concave, > 0 convex)")
	fs.Float64Var(&s.R1, "r1", 0.2, "lens: radius of the first surface")
	fs.Float64Var(&s.R2, "r2", -0.3, "lens: radius of the second surface")
	fs.Float64Var(&s.N0, "n0", 1, "lens: refractive index of the medium")
	fs.Float64Var(&s.N, "n", 1.5, "lens: refractive index of the lens")
	fs.BoolVar(&s.Invert, "invert", false, "label the x axis as if light travelled right to left")
	fs.StringVar(&s.Out, "out", "", "write the diagram to this PNG file instead of opening a window")
	fs.IntVar(&s.Width, "width", canvas.DefaultWidth, "image width in pixels")
	fs.IntVar(&s.Height, "height", canvas.DefaultHeight, "image height in pixels")
	scene := fs.String("scene", "", "read the whole scene from a JSON file; other flags are ignored")

	if err := fs.Parse(args); err != nil {
		return Scene{}, err
	}
	if *scene == "" {
		return s, nil
	}

	loaded, err := loadScene(*scene)
	if err != nil {
		return Scene{}, err
	}
	if loaded.Width == 0 {
		loaded.Width = canvas.DefaultWidth
	}
	if loaded.Height == 0 {
		loaded.Height = canvas.DefaultHeight
	}
	return loaded, nil
}

// newSurface returns a canvas bound to a PNG file or a window.
func newSurface(s Scene) (plot.Surface, error) {
	if s.Width <= 0 || s.Height <= 0 || s.Width > 1<<15-1 || s.Height > 1<<15-1 {
		return nil, fmt.Errorf("invalid image size %dx%d", s.Width, s.Height)
	}

	var p canvas.Presenter = window.New("paraxial: " + s.Element)
	if s.Out != "" {
		p = canvas.PNGFile(s.Out)
	}

	return canvas.New(canvas.WithSize(s.Width, s.Height), canvas.WithPresenter(p)), nil
}

func printResults(out io.Writer, xIm, yIm, m float64, fName string, f float64) {
	fmt.Fprintf(out, "x_im = %v\n", xIm)
	fmt.Fprintf(out, "y_im = %v\n", yIm)
	fmt.Fprintf(out, "M = %v\n", m)
	fmt.Fprintf(out, "%s = %v\n", fName, f)
}
