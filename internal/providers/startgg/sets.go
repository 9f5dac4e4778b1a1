package startgg

import (
	"math"

	"startgg-results/internal/domain"
)

// setOf normalizes one set node. On failure it returns the offending field
// and a reason instead of a partial record.
func setOf(node *wireSet) (domain.Set, string, string) {
	if node == nil {
		return domain.Set{}, "set", "null"
	}
	if node.ID == nil {
		return domain.Set{}, "id", "null"
	}
	if len(node.Slots.items) < 2 {
		return domain.Set{}, "slots", "fewer than two slots"
	}

	set := domain.Set{
		ID:           idOf(node.ID),
		RoundText:    str(node.FullRoundText),
		DisplayScore: str(node.DisplayScore),
		CompletedAt:  unix(node.CompletedAt),
		Event:        eventRefOf(node.Event),
	}

	completed := true
	for i := 0; i < 2; i++ {
		slot := node.Slots.items[i]
		if slot == nil {
			return domain.Set{}, "slots", node.Slots.why(i)
		}
		entrant, ok := entrantOf(slot.Entrant)
		if !ok {
			return domain.Set{}, "slots.entrant", "null"
		}
		score, placement, played := slotResult(slot.Standing)
		if !played {
			completed = false
		}
		set.Slots[i] = domain.Slot{Entrant: entrant, Score: score, Placement: placement}
	}

	set.Completed = completed
	if completed {
		for i := 0; i < 2; i++ {
			if set.Slots[i].Placement == 1 {
				winner := set.Slots[i].Entrant
				loser := set.Slots[1-i].Entrant
				set.Winner = &winner
				set.Loser = &loser
				break
			}
		}
	}

	set.Slots[0].Characters, set.Slots[1].Characters, set.GameWinners = gamesOf(node.Games, set.Slots[0].Entrant.ID, set.Slots[1].Entrant.ID)

	if pg := node.PhaseGroup; pg != nil && pg.ID != nil {
		ref := &domain.BracketRef{ID: idOf(pg.ID)}
		if pg.Phase != nil {
			ref.PhaseName = str(pg.Phase.Name)
		}
		set.Bracket = ref
	}
	return set, "", ""
}

// slotResult reads score and placement from a slot standing. A missing
// standing or score value yields the unscored sentinel.
func slotResult(s *wireStanding) (score, placement int, played bool) {
	if s == nil {
		return domain.UnscoredSentinel, 0, false
	}
	placement = intOr(s.Placement, 0)
	if s.Stats == nil || s.Stats.Score == nil || s.Stats.Score.Value == nil {
		return domain.UnscoredSentinel, placement, true
	}
	return int(math.Round(*s.Stats.Score.Value)), placement, true
}

// gamesOf collects per-slot character selections and game winners.
func gamesOf(games []*wireGame, first, second domain.ID) ([]string, []string, []domain.ID) {
	if len(games) == 0 {
		return nil, nil, nil
	}
	var firstChars, secondChars []string
	winners := make([]domain.ID, 0, len(games))
	for _, g := range games {
		if g == nil {
			continue
		}
		for _, sel := range g.Selections {
			if sel == nil || sel.SelectionValue == nil || sel.Entrant == nil {
				continue
			}
			switch idOf(sel.Entrant.ID) {
			case first:
				firstChars = append(firstChars, string(*sel.SelectionValue))
			case second:
				secondChars = append(secondChars, string(*sel.SelectionValue))
			}
		}
		if g.WinnerID != nil {
			winners = append(winners, idOf(g.WinnerID))
		}
	}
	return firstChars, secondChars, winners
}

// setsOf normalizes a list of set nodes, skipping malformed items.
func setsOf[T any](out *Normalized[T], nodes list[wireSet]) []domain.Set {
	out.Raw = len(nodes.items)
	sets := make([]domain.Set, 0, len(nodes.items))
	for i, node := range nodes.items {
		if node == nil {
			out.skip(i, "sets", nodes.why(i))
			continue
		}
		set, field, reason := setOf(node)
		if field != "" {
			out.skip(i, field, reason)
			continue
		}
		sets = append(sets, set)
	}
	return sets
}
