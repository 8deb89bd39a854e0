package models

// Images builds TMDB image URLs from path fragments
type Images struct {
	BaseURL string // e.g. https://image.tmdb.org/t/p
}

// Poster returns the w500 poster URL
func (i Images) Poster(path string) string { return i.url("w500", path) }

// Backdrop returns the w1280 backdrop URL
func (i Images) Backdrop(path string) string { return i.url("w1280", path) }

// Profile returns the w200 profile picture URL
func (i Images) Profile(path string) string { return i.url("w200", path) }

func (i Images) url(size, path string) string {
	if path == "" {
		return DefaultPoster
	}
	return i.BaseURL + "/" + size + path
}

// Card is the display-ready form of a MediaItem
type Card struct {
	ID        int       `json:"id"`
	Kind      MediaType `json:"media_type"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Rating    string    `json:"rating"`
	Overview  string    `json:"overview"`
	PosterURL string    `json:"poster_url"`
}

// Card shapes the item for display
func (m MediaItem) Card(images Images) Card {
	return Card{
		ID:        m.ID,
		Kind:      m.Kind,
		Title:     m.DisplayTitle(),
		Date:      m.DisplayDate(),
		Rating:    FormatRating(m.VoteAverage),
		Overview:  m.Overview,
		PosterURL: images.Poster(m.PosterPath),
	}
}

// Cards shapes a list of items for display
func Cards(items []MediaItem, images Images) []Card {
	cards := make([]Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, item.Card(images))
	}
	return cards
}

// CastMember is a cast entry with its profile picture URL
type CastMember struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// DetailView is the display-ready form of a DetailedMedia plus its trailer
// and recommendations
type DetailView struct {
	ID              int          `json:"id"`
	Kind            MediaType    `json:"media_type"`
	Title           string       `json:"title"`
	Genres          string       `json:"genres"`
	Rating          string       `json:"rating"`
	Overview        string       `json:"overview"`
	Duration        string       `json:"duration"`
	Date            string       `json:"date"`
	Director        string       `json:"director"`
	Cast            []CastMember `json:"cast"`
	PosterURL       string       `json:"poster_url"`
	BackdropURL     string       `json:"backdrop_url"`
	TrailerURL      *string      `json:"trailer_url"`
	Recommendations []Card       `json:"recommendations"`
}

// MaxCast is how many cast members a DetailView shows
const MaxCast = 8

// NewDetailView shapes details for display. TrailerURL and Recommendations
// are left for the caller to fill in.
func NewDetailView(d DetailedMedia, images Images) DetailView {
	overview := d.Overview
	if overview == "" {
		overview = NoDescription
	}

	cast := d.TopCast(MaxCast)
	members := make([]CastMember, 0, len(cast))
	for _, p := range cast {
		members = append(members, CastMember{
			Name:     p.Name,
			ImageURL: images.Profile(p.ProfilePath),
		})
	}

	return DetailView{
		ID:              d.ID,
		Kind:            d.Kind,
		Title:           d.DisplayTitle(),
		Genres:          FormatGenres(d.Genres),
		Rating:          FormatRating(d.VoteAverage),
		Overview:        overview,
		Duration:        d.Duration(),
		Date:            d.DisplayDate(),
		Director:        d.Director(),
		Cast:            members,
		PosterURL:       images.Poster(d.PosterPath),
		BackdropURL:     images.Backdrop(d.BackdropPath),
		Recommendations: []Card{},
	}
}

// CardPage is a Page shaped for display
type CardPage struct {
	Page         int    `json:"page"`
	Results      []Card `json:"results"`
	TotalPages   int    `json:"total_pages"`
	TotalResults int    `json:"total_results"`
}

// Cards shapes the page's items for display
func (p Page) Cards(images Images) CardPage {
	return CardPage{
		Page:         p.Page,
		Results:      Cards(p.Items, images),
		TotalPages:   p.TotalPages,
		TotalResults: p.TotalResults,
	}
}
