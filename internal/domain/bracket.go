package domain

import "strings"

// Bracket is a phase group with its member entrants and sets.
type Bracket struct {
	ID        ID        `json:"id" yaml:"id"`
	PhaseName string    `json:"phaseName" yaml:"phaseName"`
	Entrants  []Entrant `json:"entrants,omitempty" yaml:"entrants,omitempty"`
	Sets      []Set     `json:"sets,omitempty" yaml:"sets,omitempty"`
}

// BracketEntrant is a seeded member of a bracket with its final placement.
type BracketEntrant struct {
	Entrant   Entrant `json:"entrant" yaml:"entrant"`
	Placement int     `json:"placement" yaml:"placement"`
}

func equalFold(a, b string) bool {
	return a != "" && strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
