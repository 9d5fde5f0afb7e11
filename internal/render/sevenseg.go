package render

import "strings"

// Segment names follow the calculator-display convention:
//
//	 aaaa
//	f    b
//	f    b
//	 gggg
//	e    c
//	e    c
//	 dddd
type segment uint8

const (
	segTop segment = 1 << iota
	segTopRight
	segBottomRight
	segBottom
	segBottomLeft
	segTopLeft
	segMiddle
)

// glyphs is the canonical seven-segment alphabet. '+' is not part of it;
// it is drawn separately as a crossed pair of bars.
var glyphs = map[byte]segment{
	'0': segTop | segTopRight | segBottomRight | segBottom | segBottomLeft | segTopLeft,
	'1': segTopRight | segBottomRight,
	'2': segTop | segTopRight | segMiddle | segBottomLeft | segBottom,
	'3': segTop | segTopRight | segMiddle | segBottomRight | segBottom,
	'4': segTopLeft | segMiddle | segTopRight | segBottomRight,
	'5': segTop | segTopLeft | segMiddle | segBottomRight | segBottom,
	'6': segTop | segTopLeft | segMiddle | segBottomRight | segBottom | segBottomLeft,
	'7': segTop | segTopRight | segBottomRight,
	'8': segTop | segTopRight | segBottomRight | segBottom | segBottomLeft | segTopLeft | segMiddle,
	'9': segTop | segTopRight | segTopLeft | segMiddle | segBottomRight | segBottom,
	'-': segMiddle,
}

// box is an inclusive pixel rectangle.
type box struct {
	x0, y0, x1, y1 int
}

// clampThickness bounds the stroke so segments never overrun the cell at
// extreme aspect ratios.
func clampThickness(t, w, h int) int {
	limit := min(w, h) / 4
	if t > limit {
		t = limit
	}
	if t < 2 {
		t = 2
	}
	return t
}

// segBoxes lays out the seven segment rectangles inside the cell
// (x, y, w, h) at stroke thickness t. Horizontal segments span the width
// minus thickness-sized end caps; vertical pairs are split around a small
// gap at the vertical midpoint so the middle segment has room.
func segBoxes(x, y, w, h, t int) map[segment]box {
	t = clampThickness(t, w, h)

	gap := t / 2
	if gap < 1 {
		gap = 1
	}
	halfH := (h - 3*t) / 2
	if halfH < 1 {
		halfH = 1
	}

	return map[segment]box{
		segTop:         {x + t, y, x + w - t, y + t},
		segBottom:      {x + t, y + h - t, x + w - t, y + h},
		segMiddle:      {x + t, y + (h-t)/2, x + w - t, y + (h+t)/2},
		segTopLeft:     {x, y + t, x + t, y + t + halfH},
		segTopRight:    {x + w - t, y + t, x + w, y + t + halfH},
		segBottomLeft:  {x, y + h/2 + gap, x + t, y + h/2 + gap + halfH},
		segBottomRight: {x + w - t, y + h/2 + gap, x + w, y + h/2 + gap + halfH},
	}
}

// DrawDigit draws a single seven-segment character into the cell
// (x, y, w, h). Characters outside the alphabet draw nothing.
func DrawDigit(p *Plane, x, y, w, h int, ch byte, thickness int) {
	set, ok := glyphs[ch]
	if !ok {
		return
	}
	for seg, b := range segBoxes(x, y, w, h, thickness) {
		if set&seg != 0 {
			p.fillBox(b.x0, b.y0, b.x1, b.y1)
		}
	}
}

// drawPlus draws the '+' of the overflow label as two crossed bars
// centered in the cell.
func drawPlus(p *Plane, x, y, w, h, thickness, inset int) {
	bar := thickness
	if bar < 4 {
		bar = 4
	}
	midX := x + w/2
	midY := y + h/2
	p.fillBox(midX-bar/2, y+inset, midX+bar/2, y+h-inset)
	p.fillBox(x+inset, midY-bar/2, x+w-inset, midY+bar/2)
}

const glyphAlphabet = "0123456789-+"

// maxGlyphs is the widest string a column can hold ("99+").
const maxGlyphs = 3

// Sanitize strips characters outside the glyph alphabet, truncates to
// maxGlyphs, and substitutes the unknown placeholder when nothing
// drawable remains. Never returns an empty string.
func Sanitize(text string) string {
	var b strings.Builder
	for i := 0; i < len(text) && b.Len() < maxGlyphs; i++ {
		if strings.IndexByte(glyphAlphabet, text[i]) >= 0 {
			b.WriteByte(text[i])
		}
	}
	if b.Len() == 0 {
		return "--"
	}
	return b.String()
}

// strokeThickness picks a stroke that reads well from about a metre away:
// chunky relative to the cell, ~35% thicker when emphasized, clamped so
// digits stay legible without overrunning the panel.
func strokeThickness(cellW, boxH int, emphasize bool) int {
	base := min(cellW, boxH)
	t := base / 8
	if t < 6 {
		t = 6
	}
	if emphasize {
		t = t * 135 / 100
	}
	if t > 16 {
		t = 16
	}
	if t < 6 {
		t = 6
	}
	return t
}

// DrawString draws a short digit string ("5", "12", "99+") as
// seven-segment glyphs filling the box (x, y, w, h). The input is
// sanitized first; emphasize thickens the strokes.
func DrawString(p *Plane, x, y, w, h int, text string, emphasize bool) {
	text = Sanitize(strings.TrimSpace(text))
	n := len(text)

	charGap := w / 28
	if charGap < 3 {
		charGap = 3
	}
	cellW := (w - charGap*(n-1)) / n
	if cellW < 10 {
		cellW = 10
	}

	thickness := strokeThickness(cellW, h, emphasize)
	inset := thickness / 2
	if inset < 2 {
		inset = 2
	}

	for i := 0; i < n; i++ {
		cx := x + i*(cellW+charGap)

		boxW := cellW
		if rest := x + w - cx; rest < boxW {
			boxW = rest
		}

		if text[i] == '+' {
			drawPlus(p, cx, y, boxW, h, thickness, inset)
			continue
		}
		DrawDigit(p, cx+inset, y+inset, max(6, boxW-2*inset), max(6, h-2*inset), text[i], thickness)
	}
}
