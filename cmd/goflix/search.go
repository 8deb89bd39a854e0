package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/amaumene/goflix/internal/browse"
	"github.com/amaumene/goflix/internal/models"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Suggest movies and tv shows matching a query",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if !interactive && strings.TrimSpace(query) == "" {
				return fmt.Errorf("a query is required unless --interactive is set")
			}

			a, err := cliApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			images := a.client.Images()
			if !interactive {
				return printCards(cmd.OutOrStdout(), models.Cards(a.client.Suggest(cmd.Context(), query), images))
			}
			return runInteractiveSearch(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), browse.NewSuggester(a.client), images)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "read queries line by line, showing only the latest results")
	return cmd
}

// runInteractiveSearch starts a suggestion for every line read from in.
// Lines can arrive faster than TMDB answers; results of a superseded line
// are dropped.
func runInteractiveSearch(ctx context.Context, in io.Reader, out io.Writer, suggester *browse.Suggester, images models.Images) error {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		query := scanner.Text()
		call := suggester.Begin(ctx)
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, current := call.Run(query)
			if !current {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintf(out, "> %s\n", query)
			_ = printCards(out, models.Cards(items, images))
		}()
	}

	wg.Wait()
	return scanner.Err()
}
