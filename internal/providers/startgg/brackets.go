package startgg

import (
	"encoding/json"

	"startgg-results/internal/domain"
)

func bracketOf(pg *wirePhaseGroup) domain.Bracket {
	b := domain.Bracket{ID: idOf(pg.ID)}
	if pg.Phase != nil {
		b.PhaseName = str(pg.Phase.Name)
	}
	return b
}

// NormalizeBracketEntrants reads a page of seeds of one phase group.
func NormalizeBracketEntrants(raw json.RawMessage) Normalized[[]domain.BracketEntrant] {
	data, ok := decode[phaseGroupData](raw)
	if !ok || data.PhaseGroup == nil {
		return absent[[]domain.BracketEntrant]()
	}
	nodes := nodesOf(data.PhaseGroup.Seeds)
	out := found(make([]domain.BracketEntrant, 0, len(nodes.items)))
	out.Raw = len(nodes.items)
	for i, seed := range nodes.items {
		if seed == nil {
			out.skip(i, "seeds", nodes.why(i))
			continue
		}
		entrant, ok := entrantOf(seed.Entrant)
		if !ok {
			out.skip(i, "seeds.entrant", "null")
			continue
		}
		entrant.Seed = intOr(seed.SeedNum, domain.NoSeed)
		out.Value = append(out.Value, domain.BracketEntrant{
			Entrant:   entrant,
			Placement: intOr(seed.Placement, 0),
		})
	}
	return out
}

// NormalizeBracketSets reads a page of sets of one phase group.
func NormalizeBracketSets(raw json.RawMessage) Normalized[domain.Bracket] {
	data, ok := decode[phaseGroupData](raw)
	if !ok || data.PhaseGroup == nil {
		return absent[domain.Bracket]()
	}
	out := found(bracketOf(data.PhaseGroup))
	out.Value.Sets = setsOf(&out, nodesOf(data.PhaseGroup.Sets))
	ref := &domain.BracketRef{ID: out.Value.ID, PhaseName: out.Value.PhaseName}
	for i := range out.Value.Sets {
		if out.Value.Sets[i].Bracket == nil {
			out.Value.Sets[i].Bracket = ref
		}
	}
	return out
}
