package domain

import "time"

// Event is a competition inside a tournament. Slug holds only the final path segment.
type Event struct {
	ID           ID         `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	Slug         string     `json:"slug" yaml:"slug"`
	Entrants     int        `json:"entrants" yaml:"entrants"`
	TournamentID ID         `json:"tournamentId,omitempty" yaml:"tournamentId,omitempty"`
	StartAt      time.Time  `json:"startAt,omitempty" yaml:"startAt,omitempty"`
	Online       bool       `json:"online,omitempty" yaml:"online,omitempty"`
	Videogame    *Videogame `json:"videogame,omitempty" yaml:"videogame,omitempty"`
	BracketIDs   []ID       `json:"bracketIds,omitempty" yaml:"bracketIds,omitempty"`
}

// EventRef is the event context attached to player-centric standings and sets.
type EventRef struct {
	ID         ID            `json:"id" yaml:"id"`
	Name       string        `json:"name" yaml:"name"`
	Slug       string        `json:"slug,omitempty" yaml:"slug,omitempty"`
	Online     bool          `json:"online" yaml:"online"`
	Entrants   int           `json:"entrants" yaml:"entrants"`
	StartAt    time.Time     `json:"startAt" yaml:"startAt"`
	Videogame  *Videogame    `json:"videogame,omitempty" yaml:"videogame,omitempty"`
	Tournament TournamentRef `json:"tournament" yaml:"tournament"`
}

// EventBrackets lists the phase groups of one event.
type EventBrackets struct {
	EventName  string `json:"eventName" yaml:"eventName"`
	Slug       string `json:"slug" yaml:"slug"`
	BracketIDs []ID   `json:"bracketIds" yaml:"bracketIds"`
}

// EventListing is an event matched by a game/size/date search, with its tournament.
type EventListing struct {
	Tournament  TournamentRef `json:"tournament" yaml:"tournament"`
	EventID     ID            `json:"eventId" yaml:"eventId"`
	EventName   string        `json:"eventName" yaml:"eventName"`
	Entrants    int           `json:"entrants" yaml:"entrants"`
	VideogameID ID            `json:"videogameId" yaml:"videogameId"`
}
