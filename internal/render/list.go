package render

import (
	"strings"
	"time"

	"github.com/oxonbus/busboard/internal/models"
)

// listRowYs are the vertical anchors of the three departure lines.
var listRowYs = [models.BoardSlots]int{22, 60, 84}

// List draws the legacy text board: stop description and clock on top,
// then route / destination / display time per call. The catchable line is
// drawn bold on the red plane.
func List(snap models.Snapshot, now time.Time) Frame {
	f := NewFrame()

	title := strings.TrimSpace(snap.Board.Description)
	if title == "" {
		title = snap.Board.StopID
	}
	drawText(f.Black, 4, 2, truncate(title+" "+now.Format("15:04"), 30))

	for i, y := range listRowYs {
		call := snap.Board.Calls[i]
		line := strings.TrimSpace(strings.Join([]string{
			truncate(call.RouteCode, 3),
			call.DestinationName,
			call.DisplayTime,
		}, " "))

		if i == snap.Emphasized {
			drawTextBold(f.Red, 4, y, truncate(line, 28))
		} else {
			drawText(f.Black, 4, y, truncate(line, 34))
		}
	}

	return f
}
