package models

import "encoding/json"

// rawMedia mirrors the loose TMDB record shape. Pointers distinguish an
// absent field from an empty one.
type rawMedia struct {
	ID               int      `json:"id"`
	MediaType        *string  `json:"media_type"`
	Kind             *string  `json:"kind"`
	Title            *string  `json:"title"`
	ReleaseDate      *string  `json:"release_date"`
	Name             *string  `json:"name"`
	FirstAirDate     *string  `json:"first_air_date"`
	Overview         *string  `json:"overview"`
	PosterPath       *string  `json:"poster_path"`
	BackdropPath     *string  `json:"backdrop_path"`
	VoteAverage      *float64 `json:"vote_average"`
	OriginalLanguage *string  `json:"original_language"`
	GenreIDs         []int    `json:"genre_ids"`
}

// Normalize turns a movie-shaped or tv-shaped TMDB record into a MediaItem.
// It never fails: input that is not a JSON object yields an empty item of the
// fallback kind. Kind resolution order is an explicit media_type (or kind)
// field, then title => movie, then name => tv, then fallback. Endpoints that
// only return one kind must pass that kind as fallback.
func Normalize(raw []byte, fallback MediaType) MediaItem {
	var r rawMedia
	if err := json.Unmarshal(raw, &r); err != nil {
		return MediaItem{Kind: fallback}
	}
	return r.toItem(fallback)
}

// ResolveKind applies the kind resolution order to a raw record without
// normalizing the rest of it.
func ResolveKind(raw []byte, fallback MediaType) MediaType {
	var r rawMedia
	if err := json.Unmarshal(raw, &r); err != nil {
		return fallback
	}
	return r.kind(fallback)
}

// ExplicitKind returns the record's media_type field as-is, empty when absent.
// Multi-type search uses it to drop people and other unsupported kinds.
func ExplicitKind(raw []byte) string {
	var r struct {
		MediaType string `json:"media_type"`
	}
	if err := json.Unmarshal(raw, &r); err != nil {
		return ""
	}
	return r.MediaType
}

func (r rawMedia) kind(fallback MediaType) MediaType {
	for _, explicit := range []*string{r.MediaType, r.Kind} {
		if explicit == nil {
			continue
		}
		if kind, ok := ParseMediaType(*explicit); ok {
			return kind
		}
	}
	if r.Title != nil {
		return MediaTypeMovie
	}
	if r.Name != nil {
		return MediaTypeTV
	}
	return fallback
}

func (r rawMedia) toItem(fallback MediaType) MediaItem {
	item := MediaItem{
		ID:               r.ID,
		Kind:             r.kind(fallback),
		Overview:         deref(r.Overview),
		PosterPath:       deref(r.PosterPath),
		BackdropPath:     deref(r.BackdropPath),
		VoteAverage:      r.VoteAverage,
		OriginalLanguage: deref(r.OriginalLanguage),
		GenreIDs:         r.GenreIDs,
	}

	// A record tagged with one kind but carrying the other kind's title
	// field keeps that title rather than showing as untitled.
	switch item.Kind {
	case MediaTypeTV:
		item.Name = firstOf(r.Name, r.Title)
		item.FirstAirDate = firstOf(r.FirstAirDate, r.ReleaseDate)
	default:
		item.Title = firstOf(r.Title, r.Name)
		item.ReleaseDate = firstOf(r.ReleaseDate, r.FirstAirDate)
	}

	return item
}

// rawDetails holds the detail-only fields of a TMDB movie or tv response
type rawDetails struct {
	Genres          []Genre  `json:"genres"`
	Runtime         *int     `json:"runtime"`
	NumberOfSeasons *int     `json:"number_of_seasons"`
	CreatedBy       []Person `json:"created_by"`
	Credits         *Credits `json:"credits"`
}

// NormalizeDetails is Normalize for detail responses. Unlike Normalize it
// reports a decode failure, because a detail view with nothing in it is not
// worth showing.
func NormalizeDetails(raw []byte, fallback MediaType) (*DetailedMedia, error) {
	var r rawMedia
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, ErrDecode
	}
	var d rawDetails
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, ErrDecode
	}

	details := &DetailedMedia{
		MediaItem: r.toItem(fallback),
		Genres:    uniqueGenres(d.Genres),
		Credits:   d.Credits,
	}

	switch details.Kind {
	case MediaTypeTV:
		if d.NumberOfSeasons != nil {
			details.NumberOfSeasons = *d.NumberOfSeasons
		}
		details.CreatedBy = d.CreatedBy
	default:
		if d.Runtime != nil {
			details.Runtime = *d.Runtime
		}
	}

	return details, nil
}

func uniqueGenres(genres []Genre) []Genre {
	if len(genres) == 0 {
		return nil
	}
	seen := make(map[int]bool, len(genres))
	out := make([]Genre, 0, len(genres))
	for _, g := range genres {
		if seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		out = append(out, g)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstOf(values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}
