// SPDX-License-Identifier: MIT
// Package: paraxial/canvas

package canvas

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// Presenter receives the rendered image on Show.
type Presenter interface {
	Present(img *image.RGBA) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(img *image.RGBA) error

// Present calls f(img).
func (f PresenterFunc) Present(img *image.RGBA) error { return f(img) }

// Discard drops the image.
var Discard Presenter = PresenterFunc(func(*image.RGBA) error { return nil })

// PNG encodes the image to w.
func PNG(w io.Writer) Presenter {
	return PresenterFunc(func(img *image.RGBA) error {
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("canvas: encode png: %w", err)
		}
		return nil
	})
}

// PNGFile writes the image to path, creating or truncating the file.
func PNGFile(path string) Presenter {
	return PresenterFunc(func(img *image.RGBA) error {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("canvas: create %s: %w", path, err)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return fmt.Errorf("canvas: encode %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("canvas: close %s: %w", path, err)
		}
		return nil
	})
}
