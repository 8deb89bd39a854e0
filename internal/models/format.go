package models

import (
	"fmt"
	"strings"
)

// FormatRating renders a vote average with one decimal digit, or N/A
func FormatRating(rating *float64) string {
	if rating == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f", *rating)
}

// FormatRuntime renders a movie runtime in minutes as "H hr M min"
func FormatRuntime(minutes int) string {
	if minutes <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%d hr %d min", minutes/60, minutes%60)
}

// FormatSeasons renders a tv season count as "{n} Season(s)"
func FormatSeasons(n int) string {
	if n <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%d Season(s)", n)
}

// FormatGenres joins genre names with commas
func FormatGenres(genres []Genre) string {
	return joinNames(len(genres), func(i int) string { return genres[i].Name })
}

// Duration is the runtime for movies and the season count for tv shows
func (d DetailedMedia) Duration() string {
	if d.Kind == MediaTypeTV {
		return FormatSeasons(d.NumberOfSeasons)
	}
	return FormatRuntime(d.Runtime)
}

// Director returns the first crew member credited as Director for movies, or
// the comma separated creators for tv shows
func (d DetailedMedia) Director() string {
	if d.Kind == MediaTypeTV {
		return joinNames(len(d.CreatedBy), func(i int) string { return d.CreatedBy[i].Name })
	}
	if d.Credits == nil {
		return NotAvailable
	}
	for _, p := range d.Credits.Crew {
		if p.Job == "Director" && p.Name != "" {
			return p.Name
		}
	}
	return NotAvailable
}

// TopCast returns at most n cast members in billing order
func (d DetailedMedia) TopCast(n int) []Person {
	if d.Credits == nil || len(d.Credits.Cast) == 0 {
		return []Person{}
	}
	if len(d.Credits.Cast) < n {
		n = len(d.Credits.Cast)
	}
	out := make([]Person, n)
	copy(out, d.Credits.Cast[:n])
	return out
}

func joinNames(n int, name func(int) string) string {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if s := name(i); s != "" {
			names = append(names, s)
		}
	}
	if len(names) == 0 {
		return NotAvailable
	}
	return strings.Join(names, ", ")
}
