// SPDX-License-Identifier: MIT
// Package: paraxial/plot
//
// colors.go — named palette and colour parsing.

package plot

import (
	"image/color"
	"strings"
)

// Named colours, matching the usual plotting palette.
var (
	Black = color.RGBA{A: 0xFF}
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Blue  = color.RGBA{B: 0xFF, A: 0xFF}
	Red   = color.RGBA{R: 0xFF, A: 0xFF}
	Lime  = color.RGBA{G: 0xFF, A: 0xFF}
	Green = color.RGBA{G: 0x80, A: 0xFF}
	Gray  = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
)

var named = map[string]color.RGBA{
	"black": Black, "k": Black,
	"white": White, "w": White,
	"blue": Blue, "b": Blue,
	"red": Red, "r": Red,
	"lime":  Lime,
	"green": Green, "g": Green,
	"gray": Gray, "grey": Gray,
	"orange":  {R: 0xFF, G: 0xA5, A: 0xFF},
	"magenta": {R: 0xFF, B: 0xFF, A: 0xFF}, "m": {R: 0xFF, B: 0xFF, A: 0xFF},
	"cyan": {G: 0xFF, B: 0xFF, A: 0xFF}, "c": {G: 0xFF, B: 0xFF, A: 0xFF},
	"purple": {R: 0x80, B: 0x80, A: 0xFF},
}

// ParseColor resolves a colour name ("lime", "k") or a "#rrggbb" hex string.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[s]; ok {
		return c, true
	}
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, false
	}

	var v [3]uint8
	for i := range v {
		hi, okHi := hexNibble(s[1+2*i])
		lo, okLo := hexNibble(s[2+2*i])
		if !okHi || !okLo {
			return color.RGBA{}, false
		}
		v[i] = hi<<4 | lo
	}

	return color.RGBA{R: v[0], G: v[1], B: v[2], A: 0xFF}, true
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	}
	return 0, false
}
