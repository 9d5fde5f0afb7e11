package board

import (
	"testing"
	"time"
)

func TestQuiet(t *testing.T) {
	tests := []struct {
		name             string
		hour, start, end int
		want             bool
	}{
		// Window wrapping midnight (22:00-06:00).
		{name: "wrap late evening", hour: 23, start: 22, end: 6, want: true},
		{name: "wrap after midnight", hour: 3, start: 22, end: 6, want: true},
		{name: "wrap at start", hour: 22, start: 22, end: 6, want: true},
		{name: "wrap at end is day", hour: 6, start: 22, end: 6, want: false},
		{name: "wrap before start is day", hour: 21, start: 22, end: 6, want: false},
		{name: "wrap midday is day", hour: 12, start: 22, end: 6, want: false},

		// Window within one day (1:00-5:00).
		{name: "plain inside", hour: 3, start: 1, end: 5, want: true},
		{name: "plain at start", hour: 1, start: 1, end: 5, want: true},
		{name: "plain at end is day", hour: 5, start: 1, end: 5, want: false},
		{name: "plain outside", hour: 12, start: 1, end: 5, want: false},

		// Degenerate start == end wraps, covering every hour.
		{name: "equal bounds morning", hour: 9, start: 8, end: 8, want: true},
		{name: "equal bounds midnight", hour: 0, start: 8, end: 8, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quiet(tt.hour, tt.start, tt.end); got != tt.want {
				t.Errorf("Quiet(%d, %d, %d) = %v, want %v", tt.hour, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func at(hour int) time.Time {
	return time.Date(2025, 3, 14, hour, 15, 0, 0, time.Local)
}

func TestGate_Transitions(t *testing.T) {
	g := NewGate(22, 6)

	phase, tr := g.Observe(at(12))
	if phase != PhaseDay || tr != TransitionNone {
		t.Fatalf("noon: phase=%v tr=%v", phase, tr)
	}

	phase, tr = g.Observe(at(23))
	if phase != PhaseNight || tr != TransitionToNight {
		t.Fatalf("23h: phase=%v tr=%v", phase, tr)
	}

	// Staying in night produces no further edge.
	phase, tr = g.Observe(at(2))
	if phase != PhaseNight || tr != TransitionNone {
		t.Fatalf("2h: phase=%v tr=%v", phase, tr)
	}

	phase, tr = g.Observe(at(7))
	if phase != PhaseDay || tr != TransitionToDay {
		t.Fatalf("7h: phase=%v tr=%v", phase, tr)
	}
}

func TestGate_NotLatched(t *testing.T) {
	// A clock jump straight back into the window takes effect on the
	// very next observation.
	g := NewGate(22, 6)
	g.Observe(at(23))
	g.Observe(at(10))

	phase, tr := g.Observe(at(23))
	if phase != PhaseNight || tr != TransitionToNight {
		t.Errorf("re-entry: phase=%v tr=%v", phase, tr)
	}
}

func TestGate_StartsAtNight(t *testing.T) {
	g := NewGate(22, 6)
	phase, tr := g.Observe(at(23))
	if phase != PhaseNight || tr != TransitionToNight {
		t.Errorf("first observation at night: phase=%v tr=%v", phase, tr)
	}
}
