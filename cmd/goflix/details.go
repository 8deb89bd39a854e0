package main

import (
	"fmt"

	"github.com/amaumene/goflix/internal/controllers"
	"github.com/spf13/cobra"
)

func newDetailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "details <movie|tv> <id>",
		Short: "Show a title with its cast, trailer and recommendations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := parseMediaArgs(args)
			if err != nil {
				return err
			}

			a, err := cliApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			view, err := controllers.NewDetailsController(a.client, a.logger).View(cmd.Context(), kind, id)
			if err != nil {
				a.logger.WithError(err).Debug("Details unavailable")
				return fmt.Errorf("details not available for %s %d", kind, id)
			}
			return printDetail(cmd.OutOrStdout(), view)
		},
	}
}

func newTrailerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trailer <movie|tv> <id>",
		Short: "Print the embeddable trailer URL of a title",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := parseMediaArgs(args)
			if err != nil {
				return err
			}

			a, err := cliApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			url, found := a.client.ResolveTrailer(cmd.Context(), kind, id)
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), "No trailer available")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
}
