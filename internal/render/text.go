package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawText draws s with the fixed 7x13 face, top-left anchored at (x, y).
func drawText(p *Plane, x, y int, s string) {
	d := font.Drawer{
		Dst:  p,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(s)
}

// drawTextBold fakes a bold weight by double-striking one pixel apart.
func drawTextBold(p *Plane, x, y int, s string) {
	drawText(p, x, y, s)
	drawText(p, x+1, y, s)
}

// truncate shortens s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 0 {
		return ""
	}
	return s[:n]
}
