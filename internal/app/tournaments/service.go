package tournaments

import (
	"context"
	"strings"
	"time"

	"startgg-results/internal/app"
	"startgg-results/internal/domain"
	"startgg-results/internal/logging"
	"startgg-results/internal/providers/startgg"
	"startgg-results/internal/query"
	"startgg-results/internal/timeutil"
)

// defaultWindow is the search window used when a videogame search has no end date.
const defaultWindow = 7 * 24 * time.Hour

// Service answers tournament-centric lookups.
type Service struct {
	deps app.Deps
	now  func() time.Time
}

// NewService constructs a Service with the provided dependencies.
func NewService(deps app.Deps) *Service {
	return &Service{deps: deps, now: time.Now}
}

// Show returns a tournament's metadata and owner.
func (s *Service) Show(ctx context.Context, slug string) (domain.Tournament, bool, error) {
	return app.Call(ctx, s.deps, startgg.TournamentShow, query.Variables{"tourneySlug": slug})
}

// ShowWithBrackets returns a tournament restricted to the event whose slug
// ends in eventSlug, with that event's bracket ids. It reports not found when
// no event matches.
func (s *Service) ShowWithBrackets(ctx context.Context, slug, eventSlug string) (domain.Tournament, bool, error) {
	t, ok, err := s.ShowWithAllBrackets(ctx, slug)
	if err != nil || !ok {
		return domain.Tournament{}, false, err
	}
	for _, e := range t.Events {
		if e.Slug == domain.SlugTail(eventSlug) {
			t.Events = []domain.Event{e}
			return t, true, nil
		}
	}
	return domain.Tournament{}, false, nil
}

// ShowWithAllBrackets returns a tournament with every event and its bracket ids.
func (s *Service) ShowWithAllBrackets(ctx context.Context, slug string) (domain.Tournament, bool, error) {
	return app.Call(ctx, s.deps, startgg.TournamentShowWithBrackets, query.Variables{"tourneySlug": slug})
}

// Events lists the events of a tournament.
func (s *Service) Events(ctx context.Context, slug string) ([]domain.Event, bool, error) {
	return app.Call(ctx, s.deps, startgg.TournamentEvents, query.Variables{"tourneySlug": slug})
}

// EventID resolves an event slug inside a tournament to its id.
func (s *Service) EventID(ctx context.Context, slug, eventSlug string) (domain.ID, bool, error) {
	events, ok, err := app.Call(ctx, s.deps, startgg.TournamentEventID, query.Variables{"tourneySlug": slug})
	if err != nil || !ok {
		return "", false, err
	}
	want := domain.SlugTail(eventSlug)
	for _, e := range events {
		if e.Slug == want {
			return e.ID, true, nil
		}
	}
	return "", false, nil
}

// EventBrackets returns the bracket ids of one event of a tournament.
func (s *Service) EventBrackets(ctx context.Context, slug, eventSlug string) (domain.EventBrackets, bool, error) {
	all, ok, err := s.AllEventBrackets(ctx, slug)
	if err != nil || !ok {
		return domain.EventBrackets{}, false, err
	}
	want := domain.SlugTail(eventSlug)
	for _, b := range all {
		if b.Slug == want {
			return b, true, nil
		}
	}
	return domain.EventBrackets{}, false, nil
}

// AllEventBrackets returns the bracket ids of every event of a tournament.
func (s *Service) AllEventBrackets(ctx context.Context, slug string) ([]domain.EventBrackets, bool, error) {
	return app.Call(ctx, s.deps, startgg.TournamentEventBrackets, query.Variables{"tourneySlug": slug})
}

// ByCountry lists one page of tournaments in a country, newest first.
func (s *Service) ByCountry(ctx context.Context, countryCode string, page int) ([]domain.Tournament, bool, error) {
	return app.Call(ctx, s.deps, startgg.TournamentsByCountry, query.Variables{
		"countryCode": strings.ToUpper(countryCode),
		"page":        pageNumber(page),
	})
}

// ByState lists one page of tournaments in a US state.
func (s *Service) ByState(ctx context.Context, state string, page int) ([]domain.Tournament, bool, error) {
	return app.Call(ctx, s.deps, startgg.TournamentsByState, query.Variables{
		"state": strings.ToUpper(state),
		"page":  pageNumber(page),
	})
}

// ByRadius lists one page of tournaments within radius (e.g. "50mi") of
// coordinates ("lat,lng").
func (s *Service) ByRadius(ctx context.Context, coordinates, radius string, page int) ([]domain.Tournament, bool, error) {
	return app.Call(ctx, s.deps, startgg.TournamentsByRadius, query.Variables{
		"coordinates": coordinates,
		"radius":      radius,
		"page":        pageNumber(page),
	})
}

// ByOwner lists one page of tournaments organized by an owner.
func (s *Service) ByOwner(ctx context.Context, ownerID domain.ID, page int) ([]domain.Tournament, bool, error) {
	return app.Call(ctx, s.deps, startgg.TournamentsByOwner, query.Variables{
		"ownerId": ownerID.String(),
		"page":    pageNumber(page),
	})
}

// ByVideogame lists one page of upcoming tournaments featuring a game and
// starting between after and before. A zero after means now; a zero before
// means one week after after.
func (s *Service) ByVideogame(ctx context.Context, videogameID domain.ID, page int, after, before time.Time) ([]domain.Tournament, bool, error) {
	after, before = s.window(after, before)
	return app.Call(ctx, s.deps, startgg.TournamentsByVideogame, query.Variables{
		"videogameId": videogameID.String(),
		"page":        pageNumber(page),
		"after":       timeutil.ToUnix(after),
		"before":      timeutil.ToUnix(before),
	})
}

// VideogameID resolves a game name to its id.
func (s *Service) VideogameID(ctx context.Context, name string) (domain.ID, bool, error) {
	games, ok, err := app.Call(ctx, s.deps, startgg.VideogameID, query.Variables{"name": name})
	if err != nil || !ok {
		return "", false, err
	}
	game, ok := MatchVideogame(games, name)
	return game.ID, ok, nil
}

// MatchVideogame picks the entry whose name equals name ignoring case, or the
// first entry when none does.
func MatchVideogame(games []domain.Videogame, name string) (domain.Videogame, bool) {
	if len(games) == 0 {
		return domain.Videogame{}, false
	}
	for _, g := range games {
		if strings.EqualFold(strings.TrimSpace(g.Name), strings.TrimSpace(name)) {
			return g, true
		}
	}
	return games[0], true
}

// Owner returns the organizer of a tournament.
func (s *Service) Owner(ctx context.Context, slug string) (domain.OwnerLookup, bool, error) {
	return app.Call(ctx, s.deps, startgg.TournamentOwner, query.Variables{"tourneySlug": slug})
}

// PlayersBySponsor lists the attendees whose prefix matches sponsor.
func (s *Service) PlayersBySponsor(ctx context.Context, slug, sponsor string) ([]domain.Participant, bool, error) {
	return app.Call(ctx, s.deps, startgg.TournamentPlayersBySponsor, query.Variables{"slug": slug, "sponsor": sponsor})
}

// EventsByGameSize lists one page of upcoming events for a game with at least
// minEntrants entrants. Events with an unknown size or game never qualify.
func (s *Service) EventsByGameSize(ctx context.Context, minEntrants int, videogameID domain.ID, page int, after, before time.Time) ([]domain.EventListing, bool, error) {
	after, before = s.window(after, before)
	listings, ok, err := app.Call(ctx, s.deps, startgg.EventsByGameSize, query.Variables{
		"videogameId": []string{videogameID.String()},
		"page":        pageNumber(page),
		"after":       timeutil.ToUnix(after),
		"before":      timeutil.ToUnix(before),
	})
	if err != nil || !ok {
		return nil, ok, err
	}
	return FilterListings(listings, minEntrants, videogameID), true, nil
}

// FilterListings keeps listings of the given game with at least minEntrants entrants.
func FilterListings(listings []domain.EventListing, minEntrants int, videogameID domain.ID) []domain.EventListing {
	out := make([]domain.EventListing, 0, len(listings))
	for _, l := range listings {
		if l.VideogameID == videogameID && l.Entrants >= minEntrants {
			out = append(out, l)
		}
	}
	return out
}

// TopResults returns the top n standings of every event of a tournament.
// An event whose results cannot be fetched is logged and skipped, and events
// without standings are left out.
func (s *Service) TopResults(ctx context.Context, slug string, n int) ([]domain.EventResults, bool, error) {
	events, ok, err := s.Events(ctx, slug)
	if err != nil || !ok {
		return nil, false, err
	}

	results := make([]domain.EventResults, 0, len(events))
	for _, event := range events {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		standings, found, err := app.Call(ctx, s.deps, startgg.EventLightweightResults, query.Variables{
			"eventId": event.ID.String(),
			"page":    query.FirstPage,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, false, ctx.Err()
			}
			logging.Warn(s.deps.Logger, "skipping event results",
				logging.FieldSlug, slug,
				logging.FieldEventID, event.ID.String(),
				"error", err,
			)
			continue
		}
		if !found || len(standings) == 0 {
			logging.Info(s.deps.Logger, "no results for event",
				logging.FieldSlug, slug,
				logging.FieldEventID, event.ID.String(),
			)
			continue
		}
		results = append(results, domain.EventResults{
			Event:     event,
			Standings: domain.Top(standings, n),
			Total:     len(standings),
		})
	}
	return results, true, nil
}

func (s *Service) window(after, before time.Time) (time.Time, time.Time) {
	if after.IsZero() {
		after = s.now()
	}
	if before.IsZero() {
		before = after.Add(defaultWindow)
	}
	return after, before
}

func pageNumber(page int) int {
	if page < query.FirstPage {
		return query.FirstPage
	}
	return page
}
