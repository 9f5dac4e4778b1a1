package startgg

import (
	"encoding/json"

	"startgg-results/internal/domain"
)

// NormalizeEventSets reads a page of sets, tagging each with its event.
func NormalizeEventSets(raw json.RawMessage) Normalized[[]domain.Set] {
	data, ok := decode[eventData](raw)
	if !ok || data.Event == nil {
		return absent[[]domain.Set]()
	}
	out := found([]domain.Set{})
	out.Value = setsOf(&out, nodesOf(data.Event.Sets))

	if data.Event.ID != nil {
		ref := eventRefOf(data.Event)
		for i := range out.Value {
			if out.Value[i].Event == nil {
				out.Value[i].Event = ref
			}
		}
	}
	return out
}

// NormalizeEntrantSets reads a page of one entrant's sets.
func NormalizeEntrantSets(raw json.RawMessage) Normalized[[]domain.Set] {
	data, ok := decode[eventData](raw)
	if !ok || data.Event == nil {
		return absent[[]domain.Set]()
	}
	out := found([]domain.Set{})
	out.Value = setsOf(&out, nodesOf(data.Event.Sets))
	return out
}

// standingsOf normalizes standing nodes. Items without an entrant or a
// placement are skipped; socials selects which authorizations to attach.
func standingsOf[T any](out *Normalized[T], nodes list[wireStanding], socials func(*wireEntrant) []domain.Authorization) []domain.Standing {
	out.Raw = len(nodes.items)
	standings := make([]domain.Standing, 0, len(nodes.items))
	for i, node := range nodes.items {
		if node == nil {
			out.skip(i, "standings", nodes.why(i))
			continue
		}
		entrant, ok := entrantOf(node.Entrant)
		if !ok {
			out.skip(i, "standings.entrant", "null")
			continue
		}
		if node.Placement == nil {
			out.skip(i, "standings.placement", "null")
			continue
		}
		standing := domain.Standing{
			ID:        idOf(node.ID),
			Placement: *node.Placement,
			Entrant:   entrant,
		}
		if socials != nil {
			standing.Socials = socials(node.Entrant)
		}
		standings = append(standings, standing)
	}
	return standings
}

// NormalizeEventStandings reads a page of standings with seeds and players.
func NormalizeEventStandings(raw json.RawMessage) Normalized[[]domain.Standing] {
	data, ok := decode[eventData](raw)
	if !ok || data.Event == nil {
		return absent[[]domain.Standing]()
	}
	out := found([]domain.Standing{})
	out.Value = standingsOf(&out, nodesOf(data.Event.Standings), nil)
	return out
}

// NormalizeLightweightResults reads a page of standings with the merged
// social links of each entrant's participants.
func NormalizeLightweightResults(raw json.RawMessage) Normalized[[]domain.Standing] {
	data, ok := decode[eventData](raw)
	if !ok || data.Event == nil {
		return absent[[]domain.Standing]()
	}
	out := found([]domain.Standing{})
	out.Value = standingsOf(&out, nodesOf(data.Event.Standings), participantSocials)
	return out
}

// participantSocials merges the authorizations reachable through a
// participant's user and through its player's user.
func participantSocials(e *wireEntrant) []domain.Authorization {
	lists := make([][]domain.Authorization, 0, 2*len(e.Participants.items))
	for _, p := range e.Participants.items {
		if p == nil {
			continue
		}
		lists = append(lists, userAuthorizations(p.User))
		if p.Player != nil {
			lists = append(lists, userAuthorizations(p.Player.User))
		}
	}
	return domain.MergeAuthorizations(lists...)
}

// NormalizeEventEntrants reads an entrant name search.
func NormalizeEventEntrants(raw json.RawMessage) Normalized[[]domain.Entrant] {
	data, ok := decode[eventData](raw)
	if !ok || data.Event == nil {
		return absent[[]domain.Entrant]()
	}
	nodes := nodesOf(data.Event.Entrants)
	out := found(make([]domain.Entrant, 0, len(nodes.items)))
	out.Raw = len(nodes.items)
	for i, node := range nodes.items {
		if node == nil {
			out.skip(i, "entrants", nodes.why(i))
			continue
		}
		entrant, ok := entrantOf(node)
		if !ok {
			out.skip(i, "entrants.id", "null")
			continue
		}
		out.Value = append(out.Value, entrant)
	}
	return out
}

// NormalizeEventParticipants reads the participants of an entrant name
// search as player references.
func NormalizeEventParticipants(raw json.RawMessage) Normalized[[]domain.PlayerRef] {
	data, ok := decode[eventData](raw)
	if !ok || data.Event == nil {
		return absent[[]domain.PlayerRef]()
	}
	nodes := nodesOf(data.Event.Entrants)
	out := found([]domain.PlayerRef{})
	out.Raw = len(nodes.items)
	index := 0
	for n, node := range nodes.items {
		if node == nil {
			out.skip(index, "entrants", nodes.why(n))
			index++
			continue
		}
		for j, p := range node.Participants.items {
			i := index
			index++
			switch {
			case p == nil:
				out.skip(i, "participants", node.Participants.why(j))
			case p.Player == nil || p.Player.ID == nil:
				out.skip(i, "participants.player", "null")
			default:
				out.Value = append(out.Value, domain.PlayerRef{
					ID:        idOf(p.Player.ID),
					Tag:       str(p.GamerTag),
					EntrantID: idOf(node.ID),
				})
			}
		}
	}
	return out
}
