package models

import "net/url"

// Video is one entry of a TMDB video listing
type Video struct {
	Key  string `json:"key"`  // opaque id on the hosting site
	Site string `json:"site"` // e.g. "YouTube"
	Type string `json:"type"` // e.g. "Trailer", "Teaser"
}

const (
	trailerSite = "YouTube"
	trailerType = "Trailer"
	embedBase   = "https://www.youtube.com/embed/"
)

// SelectTrailer returns the first YouTube trailer in listing order
func SelectTrailer(videos []Video) (Video, bool) {
	for _, v := range videos {
		if v.Site == trailerSite && v.Type == trailerType {
			return v, true
		}
	}
	return Video{}, false
}

// TrailerEmbedURL builds an embeddable player URL that starts muted,
// autoplaying and inline
func TrailerEmbedURL(key string) string {
	return embedBase + url.PathEscape(key) +
		"?autoplay=1&playsinline=1&mute=1&controls=1&rel=0&modestbranding=1"
}
