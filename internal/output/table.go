package output

import (
	"fmt"
	"io"
	"time"

	"github.com/oxonbus/busboard/internal/models"
)

// TableOptions configures the table output
type TableOptions struct {
	Colors *Colors
	Now    time.Time
}

// RenderBoard renders one board snapshot as a formatted table
func RenderBoard(w io.Writer, snap models.Snapshot, opts TableOptions) {
	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	title := snap.Board.Description
	if title == "" {
		title = snap.Board.StopID
	}
	_, _ = fmt.Fprintf(w, "%s  %s\n\n", c.Header(title), c.Muted(now.Format("15:04")))

	for i, call := range snap.Board.Calls {
		if call.IsPlaceholder() {
			_, _ = fmt.Fprintf(w, "  %s\n", c.Muted("--"))
			continue
		}

		route := call.RouteCode
		if len(route) > 3 {
			route = route[:3]
		}
		routeStr := fmt.Sprintf("%-3s", route)

		etaStr := fmt.Sprintf("%4s", snap.Etas[i].Label)

		// The catchable departure gets a marker and the emphasis color.
		if i == snap.Emphasized {
			_, _ = fmt.Fprintf(w, "%s %s  %s  %s\n",
				c.Emphasis(">"),
				c.Emphasis(routeStr),
				c.Emphasis(etaStr),
				c.Emphasis("%s", call.DestinationName),
			)
			continue
		}

		_, _ = fmt.Fprintf(w, "  %s  %s  %s\n",
			c.Route(routeStr),
			c.TimeText(etaStr),
			c.Dest("%s", call.DestinationName),
		)
	}
}
