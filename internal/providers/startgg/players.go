package startgg

import (
	"encoding/json"

	"startgg-results/internal/domain"
)

func rankingsOf(rankings []*wireRanking) []domain.Ranking {
	out := make([]domain.Ranking, 0, len(rankings))
	for _, r := range rankings {
		if r == nil || r.Title == nil || r.Rank == nil {
			continue
		}
		out = append(out, domain.Ranking{Title: *r.Title, Rank: *r.Rank})
	}
	return out
}

func playerOf(p *wirePlayer) domain.Player {
	if p == nil {
		return domain.Player{}
	}
	return domain.Player{
		ID:     idOf(p.ID),
		Tag:    str(p.GamerTag),
		Prefix: str(p.Prefix),
	}
}

// NormalizePlayerInfo reads a player with its profile and rankings.
func NormalizePlayerInfo(raw json.RawMessage) Normalized[domain.Player] {
	data, ok := decode[playerData](raw)
	if !ok || data.Player == nil {
		return absent[domain.Player]()
	}
	player := playerOf(data.Player)
	player.Profile = profileOf(data.Player.User)
	player.Rankings = rankingsOf(data.Player.Rankings)
	return found(player)
}

// NormalizePlayerBySlug reads a user profile, its player identity and its
// most recent events.
func NormalizePlayerBySlug(raw json.RawMessage) Normalized[domain.Player] {
	data, ok := decode[userData](raw)
	if !ok || data.User == nil {
		return absent[domain.Player]()
	}
	out := found(playerOf(data.User.Player))
	out.Value.Profile = profileOf(data.User)

	events := nodesOf(data.User.Events)
	out.Value.RecentEvents = make([]domain.Event, 0, len(events.items))
	for i, e := range events.items {
		if e == nil {
			out.skip(i, "events", events.why(i))
			continue
		}
		if e.ID == nil {
			out.skip(i, "events.id", "null")
			continue
		}
		out.Value.RecentEvents = append(out.Value.RecentEvents, eventOf(e, ""))
	}
	return out
}

// NormalizePlayerLookupID reads the player id behind a user slug.
func NormalizePlayerLookupID(raw json.RawMessage) Normalized[domain.ID] {
	data, ok := decode[userData](raw)
	if !ok || data.User == nil || data.User.Player == nil || data.User.Player.ID == nil {
		return absent[domain.ID]()
	}
	return found(idOf(data.User.Player.ID))
}

// NormalizeRecentPlacements reads a profile with its recent standings,
// ordered by event start, newest first. Social links from the user and from
// the player's user are merged.
func NormalizeRecentPlacements(raw json.RawMessage) Normalized[domain.PlayerPlacements] {
	data, ok := decode[userData](raw)
	if !ok || data.User == nil {
		return absent[domain.PlayerPlacements]()
	}
	user := data.User
	player := playerOf(user.Player)
	player.Profile = profileOf(user)

	var nested *wireUser
	if user.Player != nil {
		nested = user.Player.User
	}
	player.Profile.Authorizations = domain.MergeAuthorizations(userAuthorizations(user), userAuthorizations(nested))
	if player.Profile.Name == "" && nested != nil {
		player.Profile.Name = str(nested.Name)
	}

	out := found(domain.PlayerPlacements{Player: player, Placements: []domain.Standing{}})
	if user.Player == nil {
		return out
	}
	standings := user.Player.RecentStandings
	for i, s := range standings.items {
		switch {
		case s == nil:
			out.skip(i, "recentStandings", standings.why(i))
			continue
		case s.Entrant == nil || s.Entrant.ID == nil:
			out.skip(i, "recentStandings.entrant", "null")
			continue
		case s.Entrant.Event == nil || s.Entrant.Event.ID == nil:
			out.skip(i, "recentStandings.entrant.event", "null")
			continue
		case s.Placement == nil:
			out.skip(i, "recentStandings.placement", "null")
			continue
		}
		entrant, _ := entrantOf(s.Entrant)
		out.Value.Placements = append(out.Value.Placements, domain.Standing{
			ID:        idOf(s.ID),
			Placement: *s.Placement,
			Entrant:   entrant,
			Event:     eventRefOf(s.Entrant.Event),
		})
	}
	domain.SortMostRecentFirst(out.Value.Placements)
	return out
}

// NormalizePlayerTournaments reads a page of tournaments a player attended.
func NormalizePlayerTournaments(raw json.RawMessage) Normalized[[]domain.Tournament] {
	data, ok := decode[playerData](raw)
	if !ok || data.Player == nil {
		return absent[[]domain.Tournament]()
	}
	if data.Player.User == nil {
		return found([]domain.Tournament{})
	}
	return tournamentListOf(nodesOf(data.Player.User.Tournaments))
}

// NormalizePlayerSets reads a player's recent sets with their event context.
func NormalizePlayerSets(raw json.RawMessage) Normalized[domain.PlayerSets] {
	data, ok := decode[playerData](raw)
	if !ok || data.Player == nil {
		return absent[domain.PlayerSets]()
	}
	p := data.Player
	out := found(domain.PlayerSets{PlayerID: idOf(p.ID), Tag: str(p.GamerTag)})
	if p.User != nil {
		out.Value.UserSlug = str(p.User.Slug)
	}
	out.Value.Sets = setsOf(&out, nodesOf(p.Sets))
	return out
}
