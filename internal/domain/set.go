package domain

import "time"

// UnscoredSentinel is the score recorded for a slot whose standing is missing
// (not played yet, or a disqualification). It differs from a real 0.
const UnscoredSentinel = -1

// Slot is one side of a set.
type Slot struct {
	Entrant    Entrant  `json:"entrant" yaml:"entrant"`
	Score      int      `json:"score" yaml:"score"`
	Placement  int      `json:"placement,omitempty" yaml:"placement,omitempty"`
	Characters []string `json:"characters,omitempty" yaml:"characters,omitempty"`
}

// Scored reports whether the slot carries a real score.
func (s Slot) Scored() bool {
	return s.Score != UnscoredSentinel
}

// BracketRef identifies the phase group a set was played in.
type BracketRef struct {
	ID        ID     `json:"id" yaml:"id"`
	PhaseName string `json:"phaseName,omitempty" yaml:"phaseName,omitempty"`
}

// Set is a singles match between two slots. Winner and Loser are only set
// when the set is completed.
type Set struct {
	ID           ID          `json:"id" yaml:"id"`
	Slots        [2]Slot     `json:"slots" yaml:"slots"`
	Completed    bool        `json:"completed" yaml:"completed"`
	Winner       *Entrant    `json:"winner,omitempty" yaml:"winner,omitempty"`
	Loser        *Entrant    `json:"loser,omitempty" yaml:"loser,omitempty"`
	RoundText    string      `json:"roundText,omitempty" yaml:"roundText,omitempty"`
	GameWinners  []ID        `json:"gameWinners,omitempty" yaml:"gameWinners,omitempty"`
	Bracket      *BracketRef `json:"bracket,omitempty" yaml:"bracket,omitempty"`
	DisplayScore string      `json:"displayScore,omitempty" yaml:"displayScore,omitempty"`
	CompletedAt  time.Time   `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	Event        *EventRef   `json:"event,omitempty" yaml:"event,omitempty"`
}

// Involves reports whether either slot's entrant matches name, comparing raw
// names and canonical tags case-insensitively.
func (s Set) Involves(name string) bool {
	for _, slot := range s.Slots {
		if equalFold(slot.Entrant.Name, name) || equalFold(slot.Entrant.Tag, CanonicalTag(name)) {
			return true
		}
	}
	return false
}

// PlayerSets is a player's sets for a set of events.
type PlayerSets struct {
	PlayerID ID     `json:"playerId" yaml:"playerId"`
	Tag      string `json:"tag" yaml:"tag"`
	UserSlug string `json:"userSlug,omitempty" yaml:"userSlug,omitempty"`
	Sets     []Set  `json:"sets" yaml:"sets"`
}
