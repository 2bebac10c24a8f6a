// Package window shows rendered diagrams in a desktop window.
//
// Presenter implements canvas.Presenter on top of ebiten: Present opens a
// window sized to the image and blocks until the user closes it or presses
// Esc or Q.
package window
