package models

import "errors"

// MediaType represents the type of media (movie or tv show)
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// ParseMediaType converts a raw kind string, returning false for anything
// other than "movie" or "tv"
func ParseMediaType(s string) (MediaType, bool) {
	switch MediaType(s) {
	case MediaTypeMovie:
		return MediaTypeMovie, true
	case MediaTypeTV:
		return MediaTypeTV, true
	default:
		return "", false
	}
}

// Valid reports whether t is one of the supported kinds
func (t MediaType) Valid() bool {
	_, ok := ParseMediaType(string(t))
	return ok
}

// Placeholders shown when a field is missing
const (
	Untitled      = "Untitled"
	NotAvailable  = "N/A"
	NoDescription = "No description available"
	DefaultPoster = "/default-poster.jpg"
)

// Failure classes. None of them reach the presentation layer; they are
// absorbed into empty results and only surface in logs and tests.
var (
	ErrTransport = errors.New("transport failure")
	ErrDecode    = errors.New("decode failure")
	ErrCorrupt   = errors.New("storage corruption")
)
