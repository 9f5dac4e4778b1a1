package main

import (
	"github.com/spf13/cobra"

	"startgg-results/internal/app/players"
	"startgg-results/internal/query"
)

func newPlayerCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "player",
		Aliases: []string{"p"},
		Short:   "Player profiles, placements and sets",
	}

	var game string
	results := &cobra.Command{
		Use:   "results <profile-slug>",
		Short: "Recent placements of a player, most recent first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := c.resolveGame(cmd.Context(), game)
			if err != nil {
				return err
			}
			got, ok, err := players.NewService(c.deps).RecentPlacements(cmd.Context(), args[0], gameID)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("player", args[0])
			}
			return c.print(cmd, got)
		},
	}
	results.Flags().StringVar(&game, "game", "", "videogame name or id")

	var setsGame string
	sets := &cobra.Command{
		Use:   "sets <profile-slug>",
		Short: "Sets of a player's most recent event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := c.resolveGame(cmd.Context(), setsGame)
			if err != nil {
				return err
			}
			got, ok, err := players.NewService(c.deps).RecentSets(cmd.Context(), args[0], gameID)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("player", args[0])
			}
			return c.print(cmd, got)
		},
	}
	sets.Flags().StringVar(&setsGame, "game", "", "videogame name or id")

	var page int
	tourneys := &cobra.Command{
		Use:   "tournaments <profile-slug>",
		Short: "Tournaments a player attended",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := players.NewService(c.deps)
			id, ok, err := svc.LookupID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return notFound("player", args[0])
			}
			got, ok, err := svc.Tournaments(cmd.Context(), id, page)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("player", args[0])
			}
			return c.print(cmd, got)
		},
	}
	tourneys.Flags().IntVar(&page, "page", query.FirstPage, "page number")

	info := &cobra.Command{
		Use:   "info <profile-slug>",
		Short: "Show a player profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			got, ok, err := players.NewService(c.deps).BySlug(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return notFound("player", args[0])
			}
			return c.print(cmd, got)
		},
	}

	cmd.AddCommand(info, results, sets, tourneys)
	return cmd
}
