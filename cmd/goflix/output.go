package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/amaumene/goflix/internal/models"
)

func printCards(w io.Writer, cards []models.Card) error {
	if len(cards) == 0 {
		_, err := fmt.Fprintln(w, "No results")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tTITLE\tDATE\tRATING")
	for _, c := range cards {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Kind, c.Title, c.Date, c.Rating)
	}
	return tw.Flush()
}

func printDetail(w io.Writer, view *models.DetailView) error {
	cast := make([]string, 0, len(view.Cast))
	for _, member := range view.Cast {
		cast = append(cast, member.Name)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Title\t%s\n", view.Title)
	fmt.Fprintf(tw, "Type\t%s\n", view.Kind)
	fmt.Fprintf(tw, "Date\t%s\n", view.Date)
	fmt.Fprintf(tw, "Rating\t%s\n", view.Rating)
	fmt.Fprintf(tw, "Genres\t%s\n", view.Genres)
	fmt.Fprintf(tw, "Duration\t%s\n", view.Duration)
	if view.Kind == models.MediaTypeTV {
		fmt.Fprintf(tw, "Created by\t%s\n", view.Director)
	} else {
		fmt.Fprintf(tw, "Director\t%s\n", view.Director)
	}
	if len(cast) > 0 {
		fmt.Fprintf(tw, "Cast\t%s\n", strings.Join(cast, ", "))
	}
	if view.TrailerURL != nil {
		fmt.Fprintf(tw, "Trailer\t%s\n", *view.TrailerURL)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n", view.Overview)

	if len(view.Recommendations) > 0 {
		fmt.Fprintln(w, "\nRecommended")
		return printCards(w, view.Recommendations)
	}
	return nil
}
