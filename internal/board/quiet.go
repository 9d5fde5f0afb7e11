package board

import "time"

// Phase is the quiet-hours state for one cycle.
type Phase int

const (
	PhaseDay Phase = iota
	PhaseNight
)

func (p Phase) String() string {
	if p == PhaseNight {
		return "night"
	}
	return "day"
}

// Transition marks a phase change relative to the previous cycle.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionToNight
	TransitionToDay
)

// Quiet reports whether hour falls inside the quiet window. A window with
// start >= end wraps midnight.
func Quiet(hour, start, end int) bool {
	if start < end {
		return start <= hour && hour < end
	}
	return hour >= start || hour < end
}

// Gate is the two-state day/night machine wrapping the poll cycle. The
// phase is recomputed from the wall clock on every observation, never
// latched, so a clock change takes effect on the next cycle; only the
// transition edge is remembered so sink sleep and wake fire once.
type Gate struct {
	start int
	end   int
	night bool
}

// NewGate creates a gate for the given quiet window, starting in day.
func NewGate(startHour, endHour int) *Gate {
	return &Gate{start: startHour, end: endHour}
}

// Observe computes the phase for now and the transition edge since the
// previous observation.
func (g *Gate) Observe(now time.Time) (Phase, Transition) {
	night := Quiet(now.Hour(), g.start, g.end)
	tr := TransitionNone
	switch {
	case night && !g.night:
		tr = TransitionToNight
	case !night && g.night:
		tr = TransitionToDay
	}
	g.night = night
	if night {
		return PhaseNight, tr
	}
	return PhaseDay, tr
}
