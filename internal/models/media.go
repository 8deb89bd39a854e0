package models

// MediaItem is a movie or tv show summary as returned by TMDB listings.
// Kind is resolved once by Normalize; the movie fields (Title, ReleaseDate)
// and tv fields (Name, FirstAirDate) are read through DisplayTitle and
// DisplayDate rather than inspected directly.
type MediaItem struct {
	ID   int       `json:"id"`
	Kind MediaType `json:"media_type"`

	// Movie specific fields
	Title       string `json:"title,omitempty"`
	ReleaseDate string `json:"release_date,omitempty"`

	// TV show specific fields
	Name         string `json:"name,omitempty"`
	FirstAirDate string `json:"first_air_date,omitempty"`

	Overview         string   `json:"overview,omitempty"`
	PosterPath       string   `json:"poster_path,omitempty"`
	BackdropPath     string   `json:"backdrop_path,omitempty"`
	VoteAverage      *float64 `json:"vote_average,omitempty"` // 0-10, nil when unrated
	OriginalLanguage string   `json:"original_language,omitempty"`
	GenreIDs         []int    `json:"genre_ids,omitempty"`
}

// DisplayTitle returns the title for movies or the name for tv shows
func (m MediaItem) DisplayTitle() string {
	var title string
	switch m.Kind {
	case MediaTypeTV:
		title = m.Name
	default:
		title = m.Title
	}
	if title == "" {
		return Untitled
	}
	return title
}

// DisplayDate returns the release date for movies or the first air date for tv shows
func (m MediaItem) DisplayDate() string {
	var date string
	switch m.Kind {
	case MediaTypeTV:
		date = m.FirstAirDate
	default:
		date = m.ReleaseDate
	}
	if date == "" {
		return NotAvailable
	}
	return date
}

// Genre is a TMDB genre. IDs are unique within a DetailedMedia.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Person is a cast member, crew member or tv show creator
type Person struct {
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path,omitempty"`
	Job         string `json:"job,omitempty"` // crew only
}

// Credits holds the cast and crew embedded in a detail response
type Credits struct {
	Cast []Person `json:"cast"`
	Crew []Person `json:"crew,omitempty"`
}

// DetailedMedia extends MediaItem with the fields of a detail response
type DetailedMedia struct {
	MediaItem

	Genres []Genre `json:"genres,omitempty"`

	// Movie specific
	Runtime int `json:"runtime,omitempty"` // minutes

	// TV show specific
	NumberOfSeasons int      `json:"number_of_seasons,omitempty"`
	CreatedBy       []Person `json:"created_by,omitempty"`

	Credits *Credits `json:"credits,omitempty"`
}

// Page is one slice of a paginated TMDB listing
type Page struct {
	Page         int         `json:"page"`
	Items        []MediaItem `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

// EmptyPage is what a failed fetch of page n returns: no items and no more
// pages after n.
func EmptyPage(n int) Page {
	return Page{
		Page:       n,
		Items:      []MediaItem{},
		TotalPages: n,
	}
}

// HasMore reports whether a later page exists
func (p Page) HasMore() bool {
	return p.Page < p.TotalPages
}
