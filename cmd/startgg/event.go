package main

import (
	"context"

	"github.com/spf13/cobra"

	"startgg-results/internal/app/events"
	"startgg-results/internal/app/tournaments"
	"startgg-results/internal/domain"
	"startgg-results/internal/query"
)

func newEventCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "event",
		Aliases: []string{"e"},
		Short:   "Sets, entrants and results of one event",
	}
	cmd.AddCommand(
		newEventSetsCommand(c),
		newEventEntrantsCommand(c),
		newEventResultsCommand(c),
		newEventHeadToHeadCommand(c),
	)
	return cmd
}

// resolveEvent turns a tournament slug and event slug into an event id.
func (c *cli) resolveEvent(ctx context.Context, slug, eventSlug string) (domain.ID, error) {
	id, ok, err := tournaments.NewService(c.deps).EventID(ctx, slug, eventSlug)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", notFound("event", eventSlug)
	}
	return id, nil
}

func newEventSetsCommand(c *cli) *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "sets <tournament-slug> <event-slug>",
		Short: "List one page of an event's sets with game details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := c.resolveEvent(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			sets, ok, err := events.NewService(c.deps).Sets(cmd.Context(), eventID, page)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("event", args[1])
			}
			return c.print(cmd, sets)
		},
	}
	cmd.Flags().IntVar(&page, "page", query.FirstPage, "page number")
	return cmd
}

func newEventEntrantsCommand(c *cli) *cobra.Command {
	var (
		page     int
		all      bool
		maxPages int
	)
	cmd := &cobra.Command{
		Use:   "entrants <tournament-slug> <event-slug>",
		Short: "List an event's entrants with seeds and placements",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := c.resolveEvent(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			svc := events.NewService(c.deps)
			var (
				standings []domain.Standing
				ok        bool
			)
			if all {
				standings, ok, err = svc.AllEntrants(cmd.Context(), eventID, maxPages)
			} else {
				standings, ok, err = svc.Entrants(cmd.Context(), eventID, page)
			}
			if err != nil {
				return err
			}
			if !ok {
				return notFound("event", args[1])
			}
			return c.print(cmd, standings)
		},
	}
	cmd.Flags().IntVar(&page, "page", query.FirstPage, "page number")
	cmd.Flags().BoolVar(&all, "all", false, "walk every page")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "stop after this many pages when --all is set (0 means no limit)")
	return cmd
}

func newEventResultsCommand(c *cli) *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "results <tournament-slug> <event-slug>",
		Short: "List an event's standings with linked socials",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := c.resolveEvent(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			standings, ok, err := events.NewService(c.deps).LightweightResults(cmd.Context(), eventID, page)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("event", args[1])
			}
			return c.print(cmd, standings)
		},
	}
	cmd.Flags().IntVar(&page, "page", query.FirstPage, "page number")
	return cmd
}

func newEventHeadToHeadCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "h2h <tournament-slug> <event-slug> <entrant> <opponent>",
		Short: "List the sets played between two entrants",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := c.resolveEvent(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			sets, ok, err := events.NewService(c.deps).HeadToHead(cmd.Context(), eventID, args[2], args[3])
			if err != nil {
				return err
			}
			if !ok {
				return notFound("entrant", args[2])
			}
			return c.print(cmd, sets)
		},
	}
}

func newBracketCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bracket",
		Short: "Entrants and sets of one bracket",
	}

	var entrantsPage, setsPage int
	entrants := &cobra.Command{
		Use:   "entrants <bracket-id>",
		Short: "List a bracket's seeded entrants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			got, ok, err := events.NewService(c.deps).BracketEntrants(cmd.Context(), domain.ID(args[0]), entrantsPage)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("bracket", args[0])
			}
			return c.print(cmd, got)
		},
	}
	entrants.Flags().IntVar(&entrantsPage, "page", query.FirstPage, "page number")

	sets := &cobra.Command{
		Use:   "sets <bracket-id>",
		Short: "List a bracket's sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			got, ok, err := events.NewService(c.deps).BracketSets(cmd.Context(), domain.ID(args[0]), setsPage)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("bracket", args[0])
			}
			return c.print(cmd, got)
		},
	}
	sets.Flags().IntVar(&setsPage, "page", query.FirstPage, "page number")

	cmd.AddCommand(entrants, sets)
	return cmd
}
