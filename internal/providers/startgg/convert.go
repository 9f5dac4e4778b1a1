package startgg

import (
	"strings"

	"startgg-results/internal/domain"
)

func videogameOf(v *wireVideogame) *domain.Videogame {
	if v == nil || v.ID == nil {
		return nil
	}
	name := str(v.Name)
	if name == "" {
		name = str(v.DisplayName)
	}
	return &domain.Videogame{ID: idOf(v.ID), Name: name}
}

func locationOf(l *wireLocation) domain.Location {
	if l == nil {
		return domain.Location{}
	}
	return domain.Location{Country: str(l.Country), State: str(l.State), City: str(l.City)}
}

// authorizationsOf keeps only entries carrying both a type and a username.
func authorizationsOf(auths []*wireAuthorization) []domain.Authorization {
	out := make([]domain.Authorization, 0, len(auths))
	for _, a := range auths {
		if a == nil || str(a.Type) == "" || str(a.ExternalUsername) == "" {
			continue
		}
		out = append(out, domain.Authorization{
			Type:     strings.ToUpper(*a.Type),
			Username: *a.ExternalUsername,
			URL:      str(a.URL),
		})
	}
	return out
}

func userAuthorizations(u *wireUser) []domain.Authorization {
	if u == nil {
		return nil
	}
	return authorizationsOf(u.Authorizations)
}

func profileOf(u *wireUser) *domain.Profile {
	if u == nil {
		return nil
	}
	return &domain.Profile{
		ID:             idOf(u.ID),
		Name:           str(u.Name),
		Slug:           str(u.Slug),
		Discriminator:  str(u.Discriminator),
		Pronouns:       str(u.GenderPronoun),
		Bio:            str(u.Bio),
		Location:       locationOf(u.Location),
		Authorizations: userAuthorizations(u),
	}
}

// online treats an explicit flag or a missing country and state as online.
func online(flag *bool, country, state *string) bool {
	if flag != nil && *flag {
		return true
	}
	return country == nil && state == nil
}

func tournamentRefOf(t *wireTournament) domain.TournamentRef {
	if t == nil {
		return domain.TournamentRef{}
	}
	return domain.TournamentRef{
		ID:      idOf(t.ID),
		Name:    str(t.Name),
		Slug:    domain.SlugTail(str(t.Slug)),
		Online:  boolOf(t.IsOnline),
		StartAt: unix(t.StartAt),
		EndAt:   unix(t.EndAt),
	}
}

func eventRefOf(e *wireEvent) *domain.EventRef {
	if e == nil {
		return nil
	}
	return &domain.EventRef{
		ID:         idOf(e.ID),
		Name:       str(e.Name),
		Slug:       domain.SlugTail(str(e.Slug)),
		Online:     boolOf(e.IsOnline),
		Entrants:   intOr(e.NumEntrants, 0),
		StartAt:    unix(e.StartAt),
		Videogame:  videogameOf(e.Videogame),
		Tournament: tournamentRefOf(e.Tournament),
	}
}

func bracketIDsOf(groups []*wirePhaseGroup) []domain.ID {
	ids := make([]domain.ID, 0, len(groups))
	for _, g := range groups {
		if g == nil || g.ID == nil {
			continue
		}
		ids = append(ids, idOf(g.ID))
	}
	return ids
}

func eventOf(e *wireEvent, tournamentID domain.ID) domain.Event {
	return domain.Event{
		ID:           idOf(e.ID),
		Name:         str(e.Name),
		Slug:         domain.SlugTail(str(e.Slug)),
		Entrants:     intOr(e.NumEntrants, 0),
		TournamentID: tournamentID,
		StartAt:      unix(e.StartAt),
		Online:       boolOf(e.IsOnline),
		Videogame:    videogameOf(e.Videogame),
		BracketIDs:   bracketIDsOf(e.PhaseGroups),
	}
}

// playersOf lists the linked players of an entrant. EntrantID falls back to
// the owning entrant when the participant does not report its entrants.
func playersOf(e *wireEntrant) []domain.PlayerRef {
	if e == nil {
		return nil
	}
	entrantID := idOf(e.ID)
	out := make([]domain.PlayerRef, 0, len(e.Participants.items))
	for _, p := range e.Participants.items {
		if p == nil || p.Player == nil {
			continue
		}
		ref := domain.PlayerRef{
			ID:        idOf(p.Player.ID),
			Tag:       str(p.Player.GamerTag),
			EntrantID: entrantID,
		}
		if len(p.Entrants) > 0 && p.Entrants[0] != nil && p.Entrants[0].ID != nil {
			ref.EntrantID = idOf(p.Entrants[0].ID)
		}
		out = append(out, ref)
	}
	return out
}

func seedOf(e *wireEntrant) int {
	if e == nil {
		return domain.NoSeed
	}
	for _, s := range e.Seeds {
		if s != nil && s.SeedNum != nil {
			return *s.SeedNum
		}
	}
	return domain.NoSeed
}

// entrantOf builds an entrant with its players and seed. It reports false
// when the entrant or its id is missing.
func entrantOf(e *wireEntrant) (domain.Entrant, bool) {
	if e == nil || e.ID == nil {
		return domain.Entrant{}, false
	}
	entrant := domain.NewEntrant(idOf(e.ID), str(e.Name))
	entrant.Seed = seedOf(e)
	entrant.Players = playersOf(e)
	return entrant, true
}
