package domain

import "strings"

// ID is an upstream identifier. start.gg serializes most ids as numbers but
// preview sets use strings, so every id is carried as text.
type ID string

// Empty reports whether the id is unset.
func (id ID) Empty() bool {
	return id == ""
}

func (id ID) String() string {
	return string(id)
}

// TagSeparator splits a sponsor/team prefix from a player tag in display names.
const TagSeparator = " | "

// CanonicalTag returns the last " | " segment of an entrant display name.
func CanonicalTag(displayName string) string {
	parts := strings.Split(displayName, TagSeparator)
	return strings.TrimSpace(parts[len(parts)-1])
}

// SlugTail keeps only the final path segment of a slug
// ("tournament/genesis-9/event/melee-singles" -> "melee-singles").
func SlugTail(slug string) string {
	slug = strings.TrimSuffix(slug, "/")
	if idx := strings.LastIndex(slug, "/"); idx >= 0 {
		return slug[idx+1:]
	}
	return slug
}

// Location is the free-form address attached to a profile.
type Location struct {
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
	State   string `json:"state,omitempty" yaml:"state,omitempty"`
	City    string `json:"city,omitempty" yaml:"city,omitempty"`
}

// Empty reports whether no location part is known.
func (l Location) Empty() bool {
	return l.Country == "" && l.State == "" && l.City == ""
}

// Videogame identifies a game title.
type Videogame struct {
	ID   ID     `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}
