package models

import (
	"strconv"
	"strings"
	"time"
)

// UnknownLabel is rendered when a display time cannot be interpreted.
const UnknownLabel = "--"

// OverflowLabel replaces minute counts beyond two digits.
const OverflowLabel = "99+"

// NormalizedEta is a departure's time-to-leave reduced to whole minutes.
// Minutes is nil when the feed text is unparseable; Label is always set.
type NormalizedEta struct {
	Label   string `json:"label"`
	Minutes *int   `json:"minutes,omitempty"`
}

// Known reports whether a numeric minutes value could be derived.
func (e NormalizedEta) Known() bool {
	return e.Minutes != nil
}

// Normalize converts a call's display text into a minutes-based ETA.
// Pure in (call, now): "5 min" -> ("5", 5), "21:47" -> computed minutes
// until that clock time next occurs, anything else -> (UnknownLabel, nil).
// Counts above 99 keep their numeric value but label as OverflowLabel.
func Normalize(call DepartureCall, now time.Time) NormalizedEta {
	disp := strings.TrimSpace(call.DisplayTime)
	if disp == "" {
		return NormalizedEta{Label: UnknownLabel}
	}

	if strings.Contains(strings.ToLower(disp), "min") {
		fields := strings.Fields(disp)
		if n, err := strconv.Atoi(fields[0]); err == nil {
			return etaFromMinutes(n)
		}
		return NormalizedEta{Label: UnknownLabel}
	}

	if strings.Contains(disp, ":") {
		if n, ok := minutesUntilClock(disp, now); ok {
			return etaFromMinutes(n)
		}
	}

	return NormalizedEta{Label: UnknownLabel}
}

func etaFromMinutes(n int) NormalizedEta {
	label := strconv.Itoa(n)
	if n > 99 {
		label = OverflowLabel
	}
	return NormalizedEta{Label: label, Minutes: &n}
}

// minutesUntilClock interprets s as an HH:MM 24-hour wall-clock time and
// returns the whole minutes until it next occurs. Times already past today
// wrap to tomorrow; the result is clamped to zero.
func minutesUntilClock(s string, now time.Time) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hh, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hh < 0 || hh > 23 {
		return 0, false
	}
	mm, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || mm < 0 || mm > 59 {
		return 0, false
	}

	target := time.Date(now.Year(), now.Month(), now.Day(), hh, mm, 0, 0, now.Location())
	if target.Before(now) {
		target = target.Add(24 * time.Hour)
	}
	n := int(target.Sub(now).Minutes())
	if n < 0 {
		n = 0
	}
	return n, true
}
