package domain

import "strings"

// Authorization is a linked external account of a user profile.
type Authorization struct {
	Type     string `json:"type" yaml:"type"`
	Username string `json:"username" yaml:"username"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
}

type authKey struct {
	kind     string
	username string
}

func (a Authorization) key() authKey {
	return authKey{kind: strings.ToUpper(a.Type), username: a.Username}
}

// MergeAuthorizations returns the union of the given lists deduplicated by
// (type, username). The first occurrence wins when duplicates differ in URL.
func MergeAuthorizations(lists ...[]Authorization) []Authorization {
	seen := make(map[authKey]struct{})
	merged := make([]Authorization, 0)
	for _, list := range lists {
		for _, auth := range list {
			k := auth.key()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			merged = append(merged, auth)
		}
	}
	return merged
}

// Ranking is a player's position on a published ranking.
type Ranking struct {
	Title string `json:"title" yaml:"title"`
	Rank  int    `json:"rank" yaml:"rank"`
}

// Profile is the user account behind a player.
type Profile struct {
	ID             ID              `json:"id,omitempty" yaml:"id,omitempty"`
	Name           string          `json:"name,omitempty" yaml:"name,omitempty"`
	Slug           string          `json:"slug,omitempty" yaml:"slug,omitempty"`
	Discriminator  string          `json:"discriminator,omitempty" yaml:"discriminator,omitempty"`
	Pronouns       string          `json:"pronouns,omitempty" yaml:"pronouns,omitempty"`
	Bio            string          `json:"bio,omitempty" yaml:"bio,omitempty"`
	Location       Location        `json:"location" yaml:"location"`
	Authorizations []Authorization `json:"authorizations,omitempty" yaml:"authorizations,omitempty"`
}

// ProfileURL returns the public profile address, preferring the slug over the discriminator.
func (p Profile) ProfileURL() string {
	switch {
	case p.Slug != "":
		return "https://start.gg/" + p.Slug
	case p.Discriminator != "":
		return "start.gg/user/" + p.Discriminator
	default:
		return ""
	}
}

// Player is a participant identity across events.
type Player struct {
	ID           ID        `json:"id" yaml:"id"`
	Tag          string    `json:"tag" yaml:"tag"`
	Prefix       string    `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Profile      *Profile  `json:"profile,omitempty" yaml:"profile,omitempty"`
	Rankings     []Ranking `json:"rankings,omitempty" yaml:"rankings,omitempty"`
	RecentEvents []Event   `json:"recentEvents,omitempty" yaml:"recentEvents,omitempty"`
}

// PlayerPlacements is a profile together with its recent standings, newest first.
type PlayerPlacements struct {
	Player     Player     `json:"player" yaml:"player"`
	Placements []Standing `json:"placements" yaml:"placements"`
}

// Participant is a tournament attendee found through a sponsor search.
type Participant struct {
	ID       ID       `json:"id" yaml:"id"`
	Tag      string   `json:"tag" yaml:"tag"`
	PlayerID ID       `json:"playerId,omitempty" yaml:"playerId,omitempty"`
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	Location Location `json:"location" yaml:"location"`
}
