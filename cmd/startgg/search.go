package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"startgg-results/internal/app/tournaments"
	"startgg-results/internal/domain"
	"startgg-results/internal/query"
	"startgg-results/internal/timeutil"
)

// resolveGame accepts a numeric videogame id or a name to look up.
func (c *cli) resolveGame(ctx context.Context, game string) (domain.ID, error) {
	game = strings.TrimSpace(game)
	if game == "" || isNumeric(game) {
		return domain.ID(game), nil
	}
	id, ok, err := tournaments.NewService(c.deps).VideogameID(ctx, game)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", notFound("videogame", game)
	}
	return id, nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func parseDate(raw string, loc *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return timeutil.ParseDateIn(raw, loc)
}

type searchFlags struct {
	owner       string
	country     string
	state       string
	coordinates string
	radius      string
	game        string
	after       string
	before      string
	tz          string
	page        int
}

func newSearchCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find tournaments and events",
	}

	var f searchFlags
	tourneys := &cobra.Command{
		Use:   "tournaments",
		Short: "Find tournaments by owner, location or videogame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.searchTournaments(cmd, f)
		},
	}
	flags := tourneys.Flags()
	flags.StringVar(&f.owner, "owner", "", "owner user id")
	flags.StringVar(&f.country, "country", "", "country code, e.g. US")
	flags.StringVar(&f.state, "state", "", "state or province code, e.g. MI")
	flags.StringVar(&f.coordinates, "near", "", "coordinates as \"lat,lng\"")
	flags.StringVar(&f.radius, "radius", "50mi", "search radius used with --near")
	flags.StringVar(&f.game, "game", "", "videogame name or id")
	flags.StringVar(&f.after, "after", "", "earliest start date (YYYY-MM-DD), defaults to today")
	flags.StringVar(&f.before, "before", "", "latest start date (YYYY-MM-DD), defaults to a week after --after")
	flags.StringVar(&f.tz, "tz", "", "time zone of --after and --before (default UTC)")
	flags.IntVar(&f.page, "page", query.FirstPage, "page number")

	var (
		ef          searchFlags
		minEntrants int
	)
	evs := &cobra.Command{
		Use:   "events",
		Short: "Find upcoming events of a videogame with at least N entrants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ef.game == "" {
				return errors.New("--game is required")
			}
			gameID, err := c.resolveGame(cmd.Context(), ef.game)
			if err != nil {
				return err
			}
			after, before, err := window(ef)
			if err != nil {
				return err
			}
			got, ok, err := tournaments.NewService(c.deps).EventsByGameSize(cmd.Context(), minEntrants, gameID, ef.page, after, before)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("videogame", ef.game)
			}
			return c.print(cmd, got)
		},
	}
	evs.Flags().StringVar(&ef.game, "game", "", "videogame name or id")
	evs.Flags().IntVar(&minEntrants, "min-entrants", 0, "minimum number of entrants")
	evs.Flags().StringVar(&ef.after, "after", "", "earliest start date (YYYY-MM-DD), defaults to today")
	evs.Flags().StringVar(&ef.before, "before", "", "latest start date (YYYY-MM-DD), defaults to a week after --after")
	evs.Flags().StringVar(&ef.tz, "tz", "", "time zone of --after and --before (default UTC)")
	evs.Flags().IntVar(&ef.page, "page", query.FirstPage, "page number")

	cmd.AddCommand(tourneys, evs)
	return cmd
}

func (c *cli) searchTournaments(cmd *cobra.Command, f searchFlags) error {
	ctx := cmd.Context()
	svc := tournaments.NewService(c.deps)
	var (
		got []domain.Tournament
		ok  bool
		err error
		key string
	)
	switch {
	case f.owner != "":
		key = f.owner
		got, ok, err = svc.ByOwner(ctx, domain.ID(f.owner), f.page)
	case f.country != "":
		key = f.country
		got, ok, err = svc.ByCountry(ctx, f.country, f.page)
	case f.state != "":
		key = f.state
		got, ok, err = svc.ByState(ctx, f.state, f.page)
	case f.coordinates != "":
		key = f.coordinates
		got, ok, err = svc.ByRadius(ctx, f.coordinates, f.radius, f.page)
	case f.game != "":
		key = f.game
		var gameID domain.ID
		gameID, err = c.resolveGame(ctx, f.game)
		if err != nil {
			return err
		}
		after, before, werr := window(f)
		if werr != nil {
			return werr
		}
		got, ok, err = svc.ByVideogame(ctx, gameID, f.page, after, before)
	default:
		return errors.New("one of --owner, --country, --state, --near or --game is required")
	}
	if err != nil {
		return err
	}
	if !ok {
		return notFound("tournaments", key)
	}
	return c.print(cmd, got)
}

func window(f searchFlags) (time.Time, time.Time, error) {
	var loc *time.Location
	if f.tz != "" {
		if loc = timeutil.ResolveLocation(f.tz); loc == nil {
			return time.Time{}, time.Time{}, fmt.Errorf("unknown time zone %q", f.tz)
		}
	}
	after, err := parseDate(f.after, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	before, err := parseDate(f.before, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return after, before, nil
}
