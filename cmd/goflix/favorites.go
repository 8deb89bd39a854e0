package main

import (
	"fmt"

	"github.com/amaumene/goflix/internal/models"
	"github.com/spf13/cobra"
)

func newFavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage the local favorites list",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favorites in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := cliApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			records := a.favorites.List(cmd.Context())
			cards := make([]models.Card, 0, len(records))
			for _, r := range records {
				cards = append(cards, r.MediaItem().Card(a.client.Images()))
			}
			return printCards(cmd.OutOrStdout(), cards)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <movie|tv> <id>",
		Short: "Add a title to favorites, or remove it if already there",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := parseMediaArgs(args)
			if err != nil {
				return err
			}

			a, err := cliApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			details, err := a.client.Details(cmd.Context(), kind, id)
			if err != nil {
				a.logger.WithError(err).Debug("Details unavailable")
				return fmt.Errorf("details not available for %s %d", kind, id)
			}

			favorite, err := a.favorites.Toggle(cmd.Context(), details.MediaItem)
			if err != nil {
				return fmt.Errorf("failed to update favorites: %w", err)
			}

			verb := "Removed"
			if favorite {
				verb = "Added"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %q\n", verb, details.DisplayTitle())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a title from favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			a, err := cliApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.favorites.Remove(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to update favorites: %w", err)
			}
			return nil
		},
	})

	return cmd
}
