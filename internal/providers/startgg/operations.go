package startgg

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"startgg-results/internal/providers"
	"startgg-results/internal/query"
)

// Operation pairs a catalogue contract with the normalizer written against it.
type Operation[T any] struct {
	Contract  query.Contract
	Normalize func(json.RawMessage) Normalized[T]
}

// Result is a normalized response together with any GraphQL errors that
// arrived alongside the data.
type Result[T any] struct {
	Normalized[T]
	Errors   []providers.GraphQLError
	Attempts int
}

// Run executes the operation and normalizes its payload.
func (op Operation[T]) Run(ctx context.Context, exec providers.Executor, vars query.Variables, retry bool) (Result[T], error) {
	if exec == nil {
		return Result[T]{}, providers.ErrProviderUnavailable
	}
	resp, err := exec.Execute(ctx, providers.Request{Contract: op.Contract, Variables: vars, Retry: retry})
	if err != nil {
		return Result[T]{}, err
	}
	return Result[T]{
		Normalized: op.Normalize(resp.Data),
		Errors:     resp.Errors,
		Attempts:   resp.Attempts,
	}, nil
}

var registry = map[query.Name]struct{}{}

func define[T any](name query.Name, normalize func(json.RawMessage) Normalized[T]) Operation[T] {
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("startgg: operation %s defined twice", name))
	}
	registry[name] = struct{}{}
	return Operation[T]{Contract: query.MustLookup(name), Normalize: normalize}
}

// Registered lists the query names that have an operation, sorted.
func Registered() []query.Name {
	names := make([]query.Name, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Tournament operations.
var (
	TournamentShow             = define(query.TournamentShow, NormalizeTournament)
	TournamentShowWithBrackets = define(query.TournamentShowWithBrackets, NormalizeTournamentWithBrackets)
	TournamentEvents           = define(query.TournamentEvents, NormalizeTournamentEvents)
	TournamentEventID          = define(query.TournamentEventID, NormalizeTournamentEvents)
	TournamentEventBrackets    = define(query.TournamentEventBrackets, NormalizeEventBrackets)
	TournamentOwner            = define(query.TournamentOwner, NormalizeTournamentOwner)
	TournamentPlayersBySponsor = define(query.TournamentPlayersBySponsor, NormalizeSponsorParticipants)
	TournamentsByOwner         = define(query.TournamentsByOwner, NormalizeTournamentList)
	TournamentsByCountry       = define(query.TournamentsByCountry, NormalizeTournamentList)
	TournamentsByState         = define(query.TournamentsByState, NormalizeTournamentList)
	TournamentsByRadius        = define(query.TournamentsByRadius, NormalizeTournamentList)
	TournamentsByVideogame     = define(query.TournamentsByVideogame, NormalizeTournamentList)
	EventsByGameSize           = define(query.EventsByGameSize, NormalizeEventListings)
	VideogameID                = define(query.VideogameID, NormalizeVideogames)
)

// Event and bracket operations.
var (
	EventEntrantID          = define(query.EventEntrantID, NormalizeEventEntrants)
	EventPlayerID           = define(query.EventPlayerID, NormalizeEventParticipants)
	EventSets               = define(query.EventSets, NormalizeEventSets)
	EventEntrants           = define(query.EventEntrants, NormalizeEventStandings)
	EventLightweightResults = define(query.EventLightweightResults, NormalizeLightweightResults)
	EventEntrantSets        = define(query.EventEntrantSets, NormalizeEntrantSets)
	BracketEntrants         = define(query.BracketEntrants, NormalizeBracketEntrants)
	BracketSets             = define(query.BracketSets, NormalizeBracketSets)
)

// Player operations.
var (
	PlayerInfo             = define(query.PlayerInfo, NormalizePlayerInfo)
	PlayerBySlug           = define(query.PlayerBySlug, NormalizePlayerBySlug)
	PlayerLookupID         = define(query.PlayerLookupID, NormalizePlayerLookupID)
	PlayerRecentPlacements = define(query.PlayerRecentPlacements, NormalizeRecentPlacements)
	PlayerTournaments      = define(query.PlayerTournaments, NormalizePlayerTournaments)
	PlayerSets             = define(query.PlayerSets, NormalizePlayerSets)
)
