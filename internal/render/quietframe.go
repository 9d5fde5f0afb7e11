package render

import (
	"fmt"
	"time"
)

// QuietFrame draws the night screen shown while departures are suppressed.
func QuietFrame(now time.Time, quietEndHour int) Frame {
	f := NewFrame()

	drawText(f.Black, 4, 2, "Night "+now.Format("15:04"))
	drawTextBold(f.Red, 4, 30, "Buses are sleeping.")
	drawText(f.Black, 4, 68, "So are we :)")
	drawText(f.Black, 4, 92, fmt.Sprintf("Back %02d:00", quietEndHour))

	return f
}
