package models

import (
	"errors"
	"sort"
)

// BoardSlots is the fixed number of departures the board shows.
const BoardSlots = 3

// ErrEmptyFeed indicates the feed response contained no stop entries.
var ErrEmptyFeed = errors.New("feed contains no stops")

// DepartureCall is one upcoming departure at a stop as reported by the
// OxonTime feed. Fields the feed omits decode as empty strings, so a
// zero-value call doubles as the padding placeholder.
type DepartureCall struct {
	RouteCode       string `json:"route_code"`
	DestinationName string `json:"destination_name"`
	DisplayTime     string `json:"display_time"`
}

// IsPlaceholder reports whether the call is an all-empty padding slot.
func (c DepartureCall) IsPlaceholder() bool {
	return c.RouteCode == "" && c.DestinationName == "" && c.DisplayTime == ""
}

// StopBoard is the board's view of a single stop for one poll cycle:
// always exactly BoardSlots calls, padded with placeholders.
type StopBoard struct {
	StopID      string                    `json:"stopId"`
	Description string                    `json:"description"`
	Calls       [BoardSlots]DepartureCall `json:"calls"`
}

// StopResponse is the raw JSON for a single stop entry.
type StopResponse struct {
	Description string          `json:"description"`
	Calls       []DepartureCall `json:"calls"`
}

// BoardResponse is the full feed response: a mapping from stop identifier
// to stop entry.
type BoardResponse map[string]StopResponse

// ToStopBoard converts the raw response to a StopBoard for the given stop.
// When the feed keys differently than expected, the lexicographically first
// entry is used instead; calls beyond the third are dropped and missing
// calls are padded with placeholders.
func (r BoardResponse) ToStopBoard(stopID string) (*StopBoard, error) {
	if len(r) == 0 {
		return nil, ErrEmptyFeed
	}

	entry, ok := r[stopID]
	if !ok {
		keys := make([]string, 0, len(r))
		for k := range r {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		stopID = keys[0]
		entry = r[stopID]
	}

	board := &StopBoard{
		StopID:      stopID,
		Description: entry.Description,
	}
	for i := 0; i < BoardSlots && i < len(entry.Calls); i++ {
		board.Calls[i] = entry.Calls[i]
	}
	return board, nil
}
