package startgg

import (
	"encoding/json"

	"startgg-results/internal/domain"
)

func tournamentOf(t *wireTournament) domain.Tournament {
	out := domain.Tournament{
		ID:        idOf(t.ID),
		Name:      str(t.Name),
		Slug:      domain.SlugTail(str(t.Slug)),
		Country:   str(t.CountryCode),
		State:     str(t.AddrState),
		City:      str(t.City),
		Online:    online(t.IsOnline, t.CountryCode, t.AddrState),
		StartAt:   unix(t.StartAt),
		EndAt:     unix(t.EndAt),
		Attendees: intOr(t.NumAttendees, 0),
	}
	if t.Owner != nil && t.Owner.ID != nil {
		out.Owner = &domain.Owner{ID: idOf(t.Owner.ID), Name: str(t.Owner.Name)}
	}
	return out
}

// tournamentEvents normalizes the events of t, collecting the distinct games they cover.
func tournamentEvents[T any](out *Normalized[T], t *wireTournament) ([]domain.Event, []domain.Videogame) {
	events := make([]domain.Event, 0, len(t.Events.items))
	var games []domain.Videogame
	seen := make(map[domain.ID]struct{})
	tournamentID := idOf(t.ID)
	for i, e := range t.Events.items {
		if e == nil {
			out.skip(i, "events", t.Events.why(i))
			continue
		}
		if e.ID == nil {
			out.skip(i, "events.id", "null")
			continue
		}
		ev := eventOf(e, tournamentID)
		events = append(events, ev)
		if ev.Videogame != nil {
			if _, ok := seen[ev.Videogame.ID]; !ok {
				seen[ev.Videogame.ID] = struct{}{}
				games = append(games, *ev.Videogame)
			}
		}
	}
	return events, games
}

// NormalizeTournament reads a single tournament with its owner.
func NormalizeTournament(raw json.RawMessage) Normalized[domain.Tournament] {
	data, ok := decode[tournamentData](raw)
	if !ok || data.Tournament == nil {
		return absent[domain.Tournament]()
	}
	return found(tournamentOf(data.Tournament))
}

// NormalizeTournamentWithBrackets reads a tournament with its events and their phase group ids.
func NormalizeTournamentWithBrackets(raw json.RawMessage) Normalized[domain.Tournament] {
	data, ok := decode[tournamentData](raw)
	if !ok || data.Tournament == nil {
		return absent[domain.Tournament]()
	}
	out := found(tournamentOf(data.Tournament))
	out.Value.Events, out.Value.Games = tournamentEvents(&out, data.Tournament)
	return out
}

// NormalizeTournamentEvents reads the event list of a tournament.
func NormalizeTournamentEvents(raw json.RawMessage) Normalized[[]domain.Event] {
	data, ok := decode[tournamentData](raw)
	if !ok || data.Tournament == nil {
		return absent[[]domain.Event]()
	}
	out := found([]domain.Event{})
	out.Value, _ = tournamentEvents(&out, data.Tournament)
	return out
}

// NormalizeEventBrackets reads the phase groups of every event in a tournament.
func NormalizeEventBrackets(raw json.RawMessage) Normalized[[]domain.EventBrackets] {
	data, ok := decode[tournamentData](raw)
	if !ok || data.Tournament == nil {
		return absent[[]domain.EventBrackets]()
	}
	events := data.Tournament.Events
	out := found(make([]domain.EventBrackets, 0, len(events.items)))
	for i, e := range events.items {
		if e == nil {
			out.skip(i, "events", events.why(i))
			continue
		}
		out.Value = append(out.Value, domain.EventBrackets{
			EventName:  str(e.Name),
			Slug:       domain.SlugTail(str(e.Slug)),
			BracketIDs: bracketIDsOf(e.PhaseGroups),
		})
	}
	return out
}

// NormalizeTournamentOwner reads the owner of a tournament. A tournament
// without an owner counts as absent.
func NormalizeTournamentOwner(raw json.RawMessage) Normalized[domain.OwnerLookup] {
	data, ok := decode[tournamentData](raw)
	if !ok || data.Tournament == nil || data.Tournament.Owner == nil || data.Tournament.Owner.ID == nil {
		return absent[domain.OwnerLookup]()
	}
	owner := data.Tournament.Owner
	name := str(owner.Name)
	if owner.Player != nil && owner.Player.GamerTag != nil {
		name = *owner.Player.GamerTag
	}
	return found(domain.OwnerLookup{
		Owner:          domain.Owner{ID: idOf(owner.ID), Name: name},
		TournamentName: str(data.Tournament.Name),
	})
}

// NormalizeSponsorParticipants reads the participants matched by a prefix search.
func NormalizeSponsorParticipants(raw json.RawMessage) Normalized[[]domain.Participant] {
	data, ok := decode[tournamentData](raw)
	if !ok || data.Tournament == nil {
		return absent[[]domain.Participant]()
	}
	nodes := nodesOf(data.Tournament.Participants)
	out := found(make([]domain.Participant, 0, len(nodes.items)))
	out.Raw = len(nodes.items)
	for i, p := range nodes.items {
		if p == nil {
			out.skip(i, "participants", nodes.why(i))
			continue
		}
		if p.GamerTag == nil {
			out.skip(i, "participants.gamerTag", "null")
			continue
		}
		participant := domain.Participant{ID: idOf(p.ID), Tag: *p.GamerTag}
		if u := p.User; u != nil {
			participant.Name = str(u.Name)
			participant.Location = locationOf(u.Location)
			if u.Player != nil {
				participant.PlayerID = idOf(u.Player.ID)
			}
		}
		out.Value = append(out.Value, participant)
	}
	return out
}

// NormalizeTournamentList reads a page of tournament search results,
// including their events when the query selects them.
func NormalizeTournamentList(raw json.RawMessage) Normalized[[]domain.Tournament] {
	data, ok := decode[tournamentsData](raw)
	if !ok || data.Tournaments == nil {
		return absent[[]domain.Tournament]()
	}
	return tournamentListOf(nodesOf(data.Tournaments))
}

func tournamentListOf(nodes list[wireTournament]) Normalized[[]domain.Tournament] {
	out := found(make([]domain.Tournament, 0, len(nodes.items)))
	out.Raw = len(nodes.items)
	for i, t := range nodes.items {
		if t == nil {
			out.skip(i, "tournaments", nodes.why(i))
			continue
		}
		if t.ID == nil {
			out.skip(i, "tournaments.id", "null")
			continue
		}
		tournament := tournamentOf(t)
		if len(t.Events.items) > 0 {
			var eventSkips Normalized[[]domain.Event]
			tournament.Events, tournament.Games = tournamentEvents(&eventSkips, t)
			for _, s := range eventSkips.Skipped {
				out.skip(i, s.Field, s.Reason)
			}
		}
		out.Value = append(out.Value, tournament)
	}
	return out
}

// NormalizeEventListings flattens tournament search results into events.
// Events with a null entrant count or game are excluded.
func NormalizeEventListings(raw json.RawMessage) Normalized[[]domain.EventListing] {
	data, ok := decode[tournamentsData](raw)
	if !ok || data.Tournaments == nil {
		return absent[[]domain.EventListing]()
	}
	nodes := nodesOf(data.Tournaments)
	out := found([]domain.EventListing{})
	out.Raw = len(nodes.items)
	index := 0
	for n, t := range nodes.items {
		if t == nil {
			out.skip(index, "tournaments", nodes.why(n))
			index++
			continue
		}
		ref := tournamentRefOf(t)
		for j, e := range t.Events.items {
			i := index
			index++
			switch {
			case e == nil:
				out.skip(i, "events", t.Events.why(j))
			case e.NumEntrants == nil:
				out.skip(i, "events.numEntrants", "null")
			case e.Videogame == nil || e.Videogame.ID == nil:
				out.skip(i, "events.videogame", "null")
			default:
				out.Value = append(out.Value, domain.EventListing{
					Tournament:  ref,
					EventID:     idOf(e.ID),
					EventName:   str(e.Name),
					Entrants:    *e.NumEntrants,
					VideogameID: idOf(e.Videogame.ID),
				})
			}
		}
	}
	return out
}

// NormalizeVideogames reads a videogame search. Entries without an id are skipped.
func NormalizeVideogames(raw json.RawMessage) Normalized[[]domain.Videogame] {
	data, ok := decode[videogamesData](raw)
	if !ok || data.Videogames == nil {
		return absent[[]domain.Videogame]()
	}
	nodes := nodesOf(data.Videogames)
	out := found(make([]domain.Videogame, 0, len(nodes.items)))
	out.Raw = len(nodes.items)
	for i, v := range nodes.items {
		if v == nil {
			out.skip(i, "videogames", nodes.why(i))
			continue
		}
		game := videogameOf(v)
		if game == nil {
			out.skip(i, "videogames.id", "null")
			continue
		}
		out.Value = append(out.Value, *game)
	}
	return out
}
