// Package board holds the decision core: which departure to emphasize,
// how long to sleep before the next poll, and the quiet-hours gate that
// wraps the whole cycle.
package board

import (
	"time"

	"github.com/oxonbus/busboard/internal/models"
)

// Choose picks the departure slot to emphasize: among the calls with a
// known ETA of at least walkMinutes, the one with the smallest ETA wins,
// ties going to the earliest slot. When nothing qualifies the first slot
// is returned so the board always highlights something, even if slot 0 is
// itself unparseable.
func Choose(calls [models.BoardSlots]models.DepartureCall, walkMinutes int, now time.Time) int {
	best := -1
	bestEta := 0
	for i, call := range calls {
		eta := models.Normalize(call, now)
		if !eta.Known() {
			continue
		}
		n := *eta.Minutes
		if n < walkMinutes {
			continue
		}
		if best == -1 || n < bestEta {
			best, bestEta = i, n
		}
	}
	if best == -1 {
		return 0
	}
	return best
}

// NewSnapshot derives one cycle's view: all three ETAs normalized against
// the same instant, plus the emphasized slot.
func NewSnapshot(b models.StopBoard, walkMinutes int, now time.Time) models.Snapshot {
	snap := models.Snapshot{Board: b}
	for i, call := range b.Calls {
		snap.Etas[i] = models.Normalize(call, now)
	}
	snap.Emphasized = Choose(b.Calls, walkMinutes, now)
	return snap
}
