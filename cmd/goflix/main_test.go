package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/amaumene/goflix/internal/browse"
	"github.com/amaumene/goflix/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"serve", "trending", "now-playing", "details", "trailer", "search", "favorites"} {
		assert.Contains(t, names, want)
	}

	trending, _, err := root.Find([]string{"trending"})
	require.NoError(t, err)
	assert.NotNil(t, trending.Flags().Lookup("window"))
	nowPlaying, _, err := root.Find([]string{"now-playing"})
	require.NoError(t, err)
	assert.Nil(t, nowPlaying.Flags().Lookup("window"))
}

func TestArgumentErrors(t *testing.T) {
	for _, args := range [][]string{
		{"details", "person", "1"},
		{"trailer", "movie", "abc"},
		{"favorites", "remove", "-3"},
		{"search"},
		{"trending", "--pages", "0"},
	} {
		root := newRootCmd()
		root.SetArgs(args)
		root.SetOut(&bytes.Buffer{})
		assert.Error(t, root.Execute(), strings.Join(args, " "))
	}
}

func TestParseMediaArgs(t *testing.T) {
	kind, id, err := parseMediaArgs([]string{"tv", "1396"})
	require.NoError(t, err)
	assert.Equal(t, models.MediaTypeTV, kind)
	assert.Equal(t, 1396, id)

	_, _, err = parseMediaArgs([]string{"collection", "1"})
	assert.Error(t, err)
}

func TestPrintCards(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printCards(&out, []models.Card{
		{ID: 550, Kind: models.MediaTypeMovie, Title: "Fight Club", Date: "1999-10-15", Rating: "8.4"},
	}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "Fight Club")
	assert.Contains(t, lines[1], "8.4")

	out.Reset()
	require.NoError(t, printCards(&out, nil))
	assert.Equal(t, "No results\n", out.String())
}

func TestPrintDetail(t *testing.T) {
	trailer := models.TrailerEmbedURL("abc")
	view := &models.DetailView{
		Kind:            models.MediaTypeTV,
		Title:           "Dark",
		Director:        "Baran bo Odar, Jantje Friese",
		Overview:        models.NoDescription,
		Cast:            []models.CastMember{{Name: "Louis Hofmann"}},
		TrailerURL:      &trailer,
		Recommendations: []models.Card{{ID: 2, Kind: models.MediaTypeTV, Title: "1899"}},
	}

	var out bytes.Buffer
	require.NoError(t, printDetail(&out, view))

	text := out.String()
	assert.Contains(t, text, "Created by")
	assert.Contains(t, text, "Louis Hofmann")
	assert.Contains(t, text, trailer)
	assert.Contains(t, text, models.NoDescription)
	assert.Contains(t, text, "Recommended")
	assert.Contains(t, text, "1899")
}

type staticSearcher map[string][]models.MediaItem

func (s staticSearcher) Suggest(_ context.Context, query string) []models.MediaItem {
	return s[query]
}

func TestInteractiveSearch(t *testing.T) {
	searcher := staticSearcher{
		"alien": {{ID: 348, Kind: models.MediaTypeMovie, Title: "Alien"}},
	}
	var out bytes.Buffer

	err := runInteractiveSearch(context.Background(), strings.NewReader("alien\n"), &out, browse.NewSuggester(searcher), models.Images{})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "> alien")
	assert.Contains(t, out.String(), "Alien")
}

// orderedSearcher makes "slow" finish only after "fast" has answered
type orderedSearcher struct {
	fastDone chan struct{}
	once     sync.Once
}

func (s *orderedSearcher) Suggest(_ context.Context, query string) []models.MediaItem {
	if query == "slow" {
		<-s.fastDone
		return []models.MediaItem{{ID: 1, Kind: models.MediaTypeMovie, Title: "Slowpoke"}}
	}
	defer s.once.Do(func() { close(s.fastDone) })
	return []models.MediaItem{{ID: 2, Kind: models.MediaTypeMovie, Title: "Speedy"}}
}

func TestInteractiveSearchShowsLatestLine(t *testing.T) {
	for i := 0; i < 20; i++ {
		searcher := &orderedSearcher{fastDone: make(chan struct{})}
		var out bytes.Buffer

		err := runInteractiveSearch(context.Background(), strings.NewReader("slow\nfast\n"), &out, browse.NewSuggester(searcher), models.Images{})

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Speedy")
		assert.NotContains(t, out.String(), "Slowpoke")
	}
}
