package board

import "time"

// NextDelay decides how long to sleep before the next poll. The fast
// cadence applies only when the emphasized ETA is known and within the
// fast window; an unknown ETA is treated as not urgent.
func NextDelay(minutes *int, fastWindowMin int, dayRefresh, fastRefresh time.Duration) time.Duration {
	if minutes != nil && *minutes <= fastWindowMin {
		return fastRefresh
	}
	return dayRefresh
}
