package domain

import "time"

// Owner is the organizer account of a tournament.
type Owner struct {
	ID   ID     `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Tournament is the normalized tournament record.
// Country and State are both empty for online-only tournaments.
type Tournament struct {
	ID        ID          `json:"id" yaml:"id"`
	Name      string      `json:"name" yaml:"name"`
	Slug      string      `json:"slug,omitempty" yaml:"slug,omitempty"`
	Country   string      `json:"country,omitempty" yaml:"country,omitempty"`
	State     string      `json:"state,omitempty" yaml:"state,omitempty"`
	City      string      `json:"city,omitempty" yaml:"city,omitempty"`
	Online    bool        `json:"online" yaml:"online"`
	StartAt   time.Time   `json:"startAt" yaml:"startAt"`
	EndAt     time.Time   `json:"endAt" yaml:"endAt"`
	Attendees int         `json:"attendees" yaml:"attendees"`
	Owner     *Owner      `json:"owner,omitempty" yaml:"owner,omitempty"`
	Events    []Event     `json:"events,omitempty" yaml:"events,omitempty"`
	Games     []Videogame `json:"videogames,omitempty" yaml:"videogames,omitempty"`
}

// TournamentRef is the slim tournament context attached to events and standings.
type TournamentRef struct {
	ID      ID        `json:"id" yaml:"id"`
	Name    string    `json:"name" yaml:"name"`
	Slug    string    `json:"slug,omitempty" yaml:"slug,omitempty"`
	Online  bool      `json:"online,omitempty" yaml:"online,omitempty"`
	StartAt time.Time `json:"startAt,omitempty" yaml:"startAt,omitempty"`
	EndAt   time.Time `json:"endAt,omitempty" yaml:"endAt,omitempty"`
}

// OwnerLookup is the owner of a tournament resolved from its slug.
type OwnerLookup struct {
	Owner          Owner  `json:"owner" yaml:"owner"`
	TournamentName string `json:"tournamentName" yaml:"tournamentName"`
}
