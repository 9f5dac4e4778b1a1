package main

import (
	"github.com/spf13/cobra"

	"startgg-results/internal/app/tournaments"
	"startgg-results/internal/domain"
	"startgg-results/internal/export"
)

const defaultTop = 8

func newTournamentCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tournament",
		Aliases: []string{"t"},
		Short:   "Tournament details, events and results",
	}
	cmd.AddCommand(
		newTournamentShowCommand(c),
		newTournamentEventsCommand(c),
		newTournamentBracketsCommand(c),
		newTournamentResultsCommand(c),
		newTournamentOwnerCommand(c),
		newTournamentSponsorCommand(c),
	)
	return cmd
}

func newTournamentShowCommand(c *cli) *cobra.Command {
	var (
		eventSlug   string
		allBrackets bool
	)
	cmd := &cobra.Command{
		Use:   "show <tournament-slug>",
		Short: "Show a tournament",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := tournaments.NewService(c.deps)
			var (
				t   domain.Tournament
				ok  bool
				err error
			)
			switch {
			case eventSlug != "":
				t, ok, err = svc.ShowWithBrackets(cmd.Context(), args[0], eventSlug)
			case allBrackets:
				t, ok, err = svc.ShowWithAllBrackets(cmd.Context(), args[0])
			default:
				t, ok, err = svc.Show(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			if !ok {
				return notFound("tournament", args[0])
			}
			return c.print(cmd, t)
		},
	}
	cmd.Flags().StringVar(&eventSlug, "event", "", "include the brackets of this event only")
	cmd.Flags().BoolVar(&allBrackets, "all-brackets", false, "include the brackets of every event")
	return cmd
}

func newTournamentEventsCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "events <tournament-slug>",
		Short: "List the events of a tournament",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events, ok, err := tournaments.NewService(c.deps).Events(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return notFound("tournament", args[0])
			}
			return c.print(cmd, events)
		},
	}
}

func newTournamentBracketsCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "brackets <tournament-slug> [event-slug]",
		Short: "List bracket ids of one event or of every event",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := tournaments.NewService(c.deps)
			if len(args) == 2 {
				brackets, ok, err := svc.EventBrackets(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				if !ok {
					return notFound("event", args[1])
				}
				return c.print(cmd, brackets)
			}
			all, ok, err := svc.AllEventBrackets(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return notFound("tournament", args[0])
			}
			return c.print(cmd, all)
		},
	}
}

func newTournamentResultsCommand(c *cli) *cobra.Command {
	var (
		top     int
		targets export.Targets
	)
	cmd := &cobra.Command{
		Use:   "results <tournament-slug>",
		Short: "Top placements of every event, optionally exported to files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, ok, err := tournaments.NewService(c.deps).TopResults(cmd.Context(), args[0], top)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("tournament", args[0])
			}
			if err := c.print(cmd, results); err != nil {
				return err
			}
			return c.exporter.Export(results, targets)
		},
	}
	cmd.Flags().IntVar(&top, "top", defaultTop, "number of placements per event")
	cmd.Flags().StringVar(&targets.JSON, "json", "", "write results to this JSON file")
	cmd.Flags().StringVar(&targets.CSV, "csv", "", "write results to this CSV file")
	cmd.Flags().StringVar(&targets.TXT, "txt", "", "write results to this text file")
	return cmd
}

func newTournamentOwnerCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "owner <tournament-slug>",
		Short: "Show who owns a tournament",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, ok, err := tournaments.NewService(c.deps).Owner(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return notFound("tournament", args[0])
			}
			return c.print(cmd, owner)
		},
	}
}

func newTournamentSponsorCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sponsor <tournament-slug> <prefix>",
		Short: "List participants playing under a sponsor prefix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			players, ok, err := tournaments.NewService(c.deps).PlayersBySponsor(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				return notFound("tournament", args[0])
			}
			return c.print(cmd, players)
		},
	}
}
