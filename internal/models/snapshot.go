package models

// Snapshot is one poll cycle's derived view of the board: the three calls,
// their normalized ETAs, and the slot chosen for emphasis. It lives for a
// single cycle and is recomputed fresh from the wall clock each time.
type Snapshot struct {
	Board      StopBoard                 `json:"board"`
	Etas       [BoardSlots]NormalizedEta `json:"etas"`
	Emphasized int                       `json:"emphasized"`
}

// EmphasizedEta returns the ETA of the emphasized slot.
func (s Snapshot) EmphasizedEta() NormalizedEta {
	return s.Etas[s.Emphasized]
}
