package main

import (
	"fmt"

	"github.com/amaumene/goflix/internal/browse"
	"github.com/amaumene/goflix/internal/models"
	"github.com/amaumene/goflix/internal/services/tmdb"
	"github.com/spf13/cobra"
)

func newListingCmd(use, short string, endpoint func() tmdb.Endpoint, withWindow bool) *cobra.Command {
	var (
		pages  int
		window bool
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pages < 1 {
				return fmt.Errorf("--pages must be at least 1")
			}

			a, err := cliApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			mode := browse.Append
			if window {
				mode = browse.Replace
			}
			pager := browse.NewPager(a.client, endpoint(), mode, a.logger)
			defer pager.Close()

			out := cmd.OutOrStdout()
			images := a.client.Images()
			for i := 0; i < pages && pager.LoadMore(cmd.Context()); i++ {
				if mode == browse.Replace {
					fmt.Fprintf(out, "Page %d of %d\n", pager.Page(), pager.TotalPages())
					if err := printCards(out, models.Cards(pager.Items(), images)); err != nil {
						return err
					}
				}
			}

			if mode == browse.Append {
				if err := printCards(out, models.Cards(pager.Items(), images)); err != nil {
					return err
				}
				fmt.Fprintf(out, "Page %d of %d\n", pager.Page(), pager.TotalPages())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&pages, "pages", "p", 1, "number of pages to load")
	if withWindow {
		cmd.Flags().BoolVar(&window, "window", false, "show one page at a time instead of accumulating")
	}
	return cmd
}
