package events

import (
	"context"
	"strings"

	"startgg-results/internal/app"
	"startgg-results/internal/domain"
	"startgg-results/internal/providers/startgg"
	"startgg-results/internal/query"
)

// Service answers event- and bracket-centric lookups.
type Service struct {
	deps app.Deps
}

// NewService constructs a Service with the provided dependencies.
func NewService(deps app.Deps) *Service {
	return &Service{deps: deps}
}

// Sets returns one page of an event's sets.
func (s *Service) Sets(ctx context.Context, eventID domain.ID, page int) ([]domain.Set, bool, error) {
	return app.Call(ctx, s.deps, startgg.EventSets, pageVars(page, "eventId", eventID.String()))
}

// Entrants returns one page of an event's standings with seeds.
func (s *Service) Entrants(ctx context.Context, eventID domain.ID, page int) ([]domain.Standing, bool, error) {
	return app.Call(ctx, s.deps, startgg.EventEntrants, pageVars(page, "eventId", eventID.String()))
}

// AllEntrants walks every standings page of an event, at most maxPages
// pages when maxPages is positive.
func (s *Service) AllEntrants(ctx context.Context, eventID domain.ID, maxPages int) ([]domain.Standing, bool, error) {
	return app.Pages(ctx, s.deps, startgg.EventEntrants, query.Variables{"eventId": eventID.String()}, maxPages)
}

// LightweightResults returns one page of standings with social links.
func (s *Service) LightweightResults(ctx context.Context, eventID domain.ID, page int) ([]domain.Standing, bool, error) {
	return app.Call(ctx, s.deps, startgg.EventLightweightResults, pageVars(page, "eventId", eventID.String()))
}

// EntrantID resolves an entrant name within an event. An entrant whose raw
// name or tag equals name wins; otherwise the first search hit is used.
func (s *Service) EntrantID(ctx context.Context, eventID domain.ID, name string) (domain.ID, bool, error) {
	entrants, ok, err := app.Call(ctx, s.deps, startgg.EventEntrantID, query.Variables{
		"eventId": eventID.String(),
		"name":    name,
	})
	if err != nil || !ok || len(entrants) == 0 {
		return "", false, err
	}
	for _, e := range entrants {
		if sameName(e.Name, name) || sameName(e.Tag, domain.CanonicalTag(name)) {
			return e.ID, true, nil
		}
	}
	return entrants[0].ID, true, nil
}

// PlayerID resolves a gamer tag within an event to a player id.
func (s *Service) PlayerID(ctx context.Context, eventID domain.ID, name string) (domain.ID, bool, error) {
	refs, ok, err := app.Call(ctx, s.deps, startgg.EventPlayerID, query.Variables{
		"eventId": eventID.String(),
		"name":    name,
	})
	if err != nil || !ok {
		return "", false, err
	}
	for _, ref := range refs {
		if sameName(ref.Tag, name) || sameName(domain.CanonicalTag(ref.Tag), domain.CanonicalTag(name)) {
			return ref.ID, true, nil
		}
	}
	return "", false, nil
}

// EntrantSets returns one page of an entrant's sets in an event.
func (s *Service) EntrantSets(ctx context.Context, eventID, entrantID domain.ID, page int) ([]domain.Set, bool, error) {
	vars := pageVars(page, "eventId", eventID.String())
	vars["entrantId"] = entrantID.String()
	return app.Call(ctx, s.deps, startgg.EventEntrantSets, vars)
}

// HeadToHead returns the sets between two entrants of an event. The first
// entrant is resolved by name, then its first page of sets is filtered to
// those involving the second.
func (s *Service) HeadToHead(ctx context.Context, eventID domain.ID, first, second string) ([]domain.Set, bool, error) {
	entrantID, ok, err := s.EntrantID(ctx, eventID, first)
	if err != nil || !ok {
		return nil, false, err
	}
	sets, ok, err := s.EntrantSets(ctx, eventID, entrantID, query.FirstPage)
	if err != nil || !ok {
		return nil, false, err
	}
	out := make([]domain.Set, 0, len(sets))
	for _, set := range sets {
		if set.Involves(second) {
			out = append(out, set)
		}
	}
	return out, true, nil
}

// BracketEntrants returns one page of a bracket's seeded entrants.
func (s *Service) BracketEntrants(ctx context.Context, bracketID domain.ID, page int) ([]domain.BracketEntrant, bool, error) {
	return app.Call(ctx, s.deps, startgg.BracketEntrants, pageVars(page, "phaseGroupId", bracketID.String()))
}

// BracketSets returns one page of a bracket's sets.
func (s *Service) BracketSets(ctx context.Context, bracketID domain.ID, page int) (domain.Bracket, bool, error) {
	return app.Call(ctx, s.deps, startgg.BracketSets, pageVars(page, "phaseGroupId", bracketID.String()))
}

func pageVars(page int, key string, value any) query.Variables {
	if page < query.FirstPage {
		page = query.FirstPage
	}
	return query.Variables{key: value, "page": page}
}

func sameName(a, b string) bool {
	return a != "" && strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
