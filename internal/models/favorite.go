package models

import "encoding/json"

// FavoriteRecord is the persisted subset of a MediaItem. It keeps the TMDB
// field names so a stored list reads like the listing it came from.
type FavoriteRecord struct {
	ID           int       `json:"id"`
	Kind         MediaType `json:"media_type"`
	Title        string    `json:"title,omitempty"`
	ReleaseDate  string    `json:"release_date,omitempty"`
	Name         string    `json:"name,omitempty"`
	FirstAirDate string    `json:"first_air_date,omitempty"`
	PosterPath   string    `json:"poster_path,omitempty"`
	VoteAverage  *float64  `json:"vote_average,omitempty"`
	Overview     string    `json:"overview,omitempty"`
}

// NewFavoriteRecord keeps the fields of item that favorites need. The record
// is stored in the shape DecodeFavorites produces: an empty kind is inferred
// from title, then name, then defaults to tv, and only that kind's title and
// date fields are kept.
func NewFavoriteRecord(item MediaItem) FavoriteRecord {
	record := FavoriteRecord{
		ID:          item.ID,
		Kind:        recordKind(item),
		PosterPath:  item.PosterPath,
		VoteAverage: item.VoteAverage,
		Overview:    item.Overview,
	}

	switch record.Kind {
	case MediaTypeTV:
		record.Name = firstNonEmpty(item.Name, item.Title)
		record.FirstAirDate = firstNonEmpty(item.FirstAirDate, item.ReleaseDate)
	default:
		record.Title = firstNonEmpty(item.Title, item.Name)
		record.ReleaseDate = firstNonEmpty(item.ReleaseDate, item.FirstAirDate)
	}
	return record
}

func recordKind(item MediaItem) MediaType {
	switch {
	case item.Kind.Valid():
		return item.Kind
	case item.Title != "":
		return MediaTypeMovie
	default:
		return MediaTypeTV
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// MediaItem expands the record back into a MediaItem
func (f FavoriteRecord) MediaItem() MediaItem {
	return MediaItem{
		ID:           f.ID,
		Kind:         f.Kind,
		Title:        f.Title,
		ReleaseDate:  f.ReleaseDate,
		Name:         f.Name,
		FirstAirDate: f.FirstAirDate,
		PosterPath:   f.PosterPath,
		VoteAverage:  f.VoteAverage,
		Overview:     f.Overview,
	}
}

// DecodeFavorites parses a stored favorites list. Entries without an
// explicit kind are inferred from their fields, defaulting to tv. Anything
// that is not a JSON array returns ErrCorrupt.
func DecodeFavorites(data []byte) ([]FavoriteRecord, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, ErrCorrupt
	}
	records := make([]FavoriteRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, NewFavoriteRecord(Normalize(raw, MediaTypeTV)))
	}
	return records, nil
}

// EncodeFavorites serializes a favorites list, always as an array
func EncodeFavorites(records []FavoriteRecord) ([]byte, error) {
	if records == nil {
		records = []FavoriteRecord{}
	}
	return json.Marshal(records)
}
