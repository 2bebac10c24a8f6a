// SPDX-License-Identifier: MIT
// Package: paraxial/window

package window

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Presenter opens one blocking window per Present call.
type Presenter struct {
	// Title is the window title; empty means "paraxial".
	Title string
	// Scale multiplies the window size; values below 1 mean 1.
	Scale int
}

// New returns a Presenter with the given title and scale 1.
func New(title string) *Presenter {
	return &Presenter{Title: title, Scale: 1}
}

// Present displays img and returns when the window is closed.
func (p *Presenter) Present(img *image.RGBA) error {
	if img == nil || img.Bounds().Empty() {
		return errors.New("window: empty image")
	}

	title := p.Title
	if title == "" {
		title = "paraxial"
	}
	scale := max(p.Scale, 1)

	b := img.Bounds()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(b.Dx()*scale, b.Dy()*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)

	err := ebiten.RunGame(newViewer(img))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// viewer is the ebiten.Game showing a still image.
type viewer struct {
	src   *image.RGBA
	frame *ebiten.Image
}

func newViewer(img *image.RGBA) *viewer {
	return &viewer{src: img}
}

func (v *viewer) Update() error {
	if closeRequested() {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.frame == nil {
		b := v.src.Bounds()
		v.frame = ebiten.NewImage(b.Dx(), b.Dy())
		v.frame.WritePixels(v.src.Pix)
	}
	screen.DrawImage(v.frame, nil)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	b := v.src.Bounds()
	return b.Dx(), b.Dy()
}

func closeRequested() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ)
}
