package render

import (
	"time"

	"github.com/oxonbus/busboard/internal/models"
)

// Emphasis selects the visual treatment of the catchable column. Exactly
// one column is distinguished per cycle; the treatment never changes the
// digits themselves.
type Emphasis int

const (
	// EmphasisThick renders the catchable column with thicker strokes.
	EmphasisThick Emphasis = iota
	// EmphasisFrame draws a border with corner chevrons around the
	// catchable column, all columns at normal stroke.
	EmphasisFrame
	// EmphasisScale shrinks the other columns to ~95% and centers them.
	EmphasisScale
)

// Grid layout constants, tuned for the 250x122 panel.
const (
	gridMarginX = 2
	gridColGap  = 3
	gridTopY    = 12
)

// Grid draws the three-column minutes board into a fresh frame: a thin
// clock strip on top, then one seven-segment ETA per column. The
// emphasized column goes to the red plane, the others to the black plane.
func Grid(snap models.Snapshot, now time.Time, emphasis Emphasis) Frame {
	f := NewFrame()

	drawText(f.Black, 4, 1, now.Format("15:04"))

	colW := (Width - gridMarginX*2 - gridColGap*2) / models.BoardSlots
	boxH := Height - gridTopY - 2

	for i := 0; i < models.BoardSlots; i++ {
		x0 := gridMarginX + i*(colW+gridColGap)
		emphasized := i == snap.Emphasized

		plane := f.Black
		if emphasized {
			plane = f.Red
		}

		switch {
		case emphasis == EmphasisThick:
			DrawString(plane, x0, gridTopY, colW, boxH, snap.Etas[i].Label, emphasized)

		case emphasis == EmphasisFrame:
			DrawString(plane, x0, gridTopY, colW, boxH, snap.Etas[i].Label, false)
			if emphasized {
				drawColumnFrame(f.Red, x0, gridTopY, colW, boxH)
			}

		case emphasis == EmphasisScale && !emphasized:
			// Reduced scale, centered: trades size for separation.
			w := colW * 95 / 100
			h := boxH * 95 / 100
			DrawString(plane, x0+(colW-w)/2, gridTopY+(boxH-h)/2, w, h, snap.Etas[i].Label, false)

		default:
			DrawString(plane, x0, gridTopY, colW, boxH, snap.Etas[i].Label, false)
		}
	}

	return f
}

// drawColumnFrame outlines the column and marks its corners with small
// chevrons.
func drawColumnFrame(p *Plane, x, y, w, h int) {
	const t = 2
	x1, y1 := x+w-1, y+h-1

	p.fillBox(x, y, x1, y+t-1)
	p.fillBox(x, y1-t+1, x1, y1)
	p.fillBox(x, y, x+t-1, y1)
	p.fillBox(x1-t+1, y, x1, y1)

	const chev = 8
	p.fillBox(x, y, x+chev, y+t+1)
	p.fillBox(x, y, x+t+1, y+chev)
	p.fillBox(x1-chev, y, x1, y+t+1)
	p.fillBox(x1-t-1, y, x1, y+chev)
	p.fillBox(x, y1-t-1, x+chev, y1)
	p.fillBox(x, y1-chev, x+t+1, y1)
	p.fillBox(x1-chev, y1-t-1, x1, y1)
	p.fillBox(x1-t-1, y1-chev, x1, y1)
}
