package domain

import "sort"

// Standing is an entrant's final placement. Event is set only when the
// standing was fetched through a player-centric query.
type Standing struct {
	ID        ID              `json:"id,omitempty" yaml:"id,omitempty"`
	Placement int             `json:"placement" yaml:"placement"`
	Entrant   Entrant         `json:"entrant" yaml:"entrant"`
	Socials   []Authorization `json:"socials,omitempty" yaml:"socials,omitempty"`
	Event     *EventRef       `json:"event,omitempty" yaml:"event,omitempty"`
}

// StartTime returns the start of the standing's event, zero when unknown.
func (s Standing) StartTime() int64 {
	if s.Event == nil || s.Event.StartAt.IsZero() {
		return 0
	}
	return s.Event.StartAt.Unix()
}

// SortMostRecentFirst orders standings by event start time, newest first.
// Ties keep their response order.
func SortMostRecentFirst(standings []Standing) {
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].StartTime() > standings[j].StartTime()
	})
}

// Top returns at most n standings from the front of the slice.
func Top(standings []Standing, n int) []Standing {
	if n <= 0 || len(standings) <= n {
		return standings
	}
	return standings[:n]
}

// EventResults is the leading slice of one event's standings. Total counts
// every standing returned before truncation.
type EventResults struct {
	Event     Event      `json:"event" yaml:"event"`
	Standings []Standing `json:"standings" yaml:"standings"`
	Total     int        `json:"total" yaml:"total"`
}
