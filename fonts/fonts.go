// Package fonts exposes the shared text face. The game draws all text
// with the ebiten bitmap font, so no font assets ship with the binary.
package fonts

import (
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var face = text.NewGoXFace(bitmapfont.Face)

// Face returns the shared bitmap text face.
func Face() text.Face {
	return face
}

// Advance returns the drawn width of s in pixels.
func Advance(s string) float64 {
	return text.Advance(s, face)
}
