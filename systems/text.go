package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jacksakers/CarveDrifters/fonts"
)

// drawText draws s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, fonts.Face(), op)
}

// drawTextCentered draws s horizontally centered on centerX.
func drawTextCentered(screen *ebiten.Image, s string, centerX, y float64, clr color.Color) {
	drawText(screen, s, centerX-fonts.Advance(s)/2, y, clr)
}

// drawTitle draws s centered and scaled up; the bitmap font has a
// single size, so titles scale geometrically.
func drawTitle(screen *ebiten.Image, s string, centerX, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-fonts.Advance(s)*scale/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, fonts.Face(), op)
}
