package players

import (
	"context"
	"strings"

	"startgg-results/internal/app"
	"startgg-results/internal/domain"
	"startgg-results/internal/providers/startgg"
	"startgg-results/internal/query"
)

// userPrefix is the path segment start.gg profile slugs begin with.
const userPrefix = "user/"

// Service answers player-centric lookups.
type Service struct {
	deps app.Deps
}

// NewService constructs a Service with the provided dependencies.
func NewService(deps app.Deps) *Service {
	return &Service{deps: deps}
}

// ProfileSlug returns slug with the "user/" prefix profile queries expect.
func ProfileSlug(slug string) string {
	slug = strings.TrimSpace(slug)
	if strings.HasPrefix(slug, userPrefix) {
		return slug
	}
	return userPrefix + slug
}

// LookupID resolves a profile slug or discriminator to a player id.
func (s *Service) LookupID(ctx context.Context, slug string) (domain.ID, bool, error) {
	return app.Call(ctx, s.deps, startgg.PlayerLookupID, query.Variables{"discriminatorSlug": ProfileSlug(slug)})
}

// Info returns a player's profile and rankings.
func (s *Service) Info(ctx context.Context, playerID domain.ID) (domain.Player, bool, error) {
	return app.Call(ctx, s.deps, startgg.PlayerInfo, query.Variables{"playerId": playerID.String()})
}

// BySlug returns the profile behind a slug with its player identity and recent events.
func (s *Service) BySlug(ctx context.Context, slug string) (domain.Player, bool, error) {
	return app.Call(ctx, s.deps, startgg.PlayerBySlug, query.Variables{"discriminatorSlug": ProfileSlug(slug)})
}

// RecentPlacements resolves the profile's player, then fetches its recent
// standings, newest first, optionally restricted to one game.
func (s *Service) RecentPlacements(ctx context.Context, slug string, gameID domain.ID) (domain.PlayerPlacements, bool, error) {
	if _, ok, err := s.LookupID(ctx, slug); err != nil || !ok {
		return domain.PlayerPlacements{}, false, err
	}
	vars := query.Variables{"slug": ProfileSlug(slug)}
	if !gameID.Empty() {
		vars["gameID"] = gameID.String()
	}
	return app.Call(ctx, s.deps, startgg.PlayerRecentPlacements, vars)
}

// Tournaments returns one page of the tournaments a player attended.
func (s *Service) Tournaments(ctx context.Context, playerID domain.ID, page int) ([]domain.Tournament, bool, error) {
	if page < query.FirstPage {
		page = query.FirstPage
	}
	return app.Call(ctx, s.deps, startgg.PlayerTournaments, query.Variables{
		"playerId": playerID.String(),
		"page":     page,
	})
}

// Sets returns a player's sets, optionally restricted to some events and to
// online or offline play. A nil online matches both.
func (s *Service) Sets(ctx context.Context, playerID domain.ID, eventIDs []domain.ID, online *bool) (domain.PlayerSets, bool, error) {
	vars := query.Variables{"playerId": playerID.String()}
	if len(eventIDs) > 0 {
		ids := make([]string, len(eventIDs))
		for i, id := range eventIDs {
			ids[i] = id.String()
		}
		vars["eventIds"] = ids
	}
	if online != nil {
		vars["isOnline"] = *online
	}
	return app.Call(ctx, s.deps, startgg.PlayerSets, vars)
}

// RecentSets returns the player's sets at their most recent event for a game.
// Each step depends on the previous one and runs in sequence.
func (s *Service) RecentSets(ctx context.Context, slug string, gameID domain.ID) (domain.PlayerSets, bool, error) {
	placements, ok, err := s.RecentPlacements(ctx, slug, gameID)
	if err != nil || !ok || len(placements.Placements) == 0 {
		return domain.PlayerSets{}, false, err
	}
	latest := placements.Placements[0].Event
	online := latest.Online
	return s.Sets(ctx, placements.Player.ID, []domain.ID{latest.ID}, &online)
}
