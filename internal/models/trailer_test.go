package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectTrailer(t *testing.T) {
	t.Run("picks first youtube trailer", func(t *testing.T) {
		videos := []Video{
			{Site: "YouTube", Type: "Teaser", Key: "a"},
			{Site: "YouTube", Type: "Trailer", Key: "b"},
			{Site: "YouTube", Type: "Trailer", Key: "c"},
		}
		v, ok := SelectTrailer(videos)
		assert.True(t, ok)
		assert.Equal(t, "b", v.Key)
	})

	t.Run("other sites do not count", func(t *testing.T) {
		_, ok := SelectTrailer([]Video{{Site: "Vimeo", Type: "Trailer", Key: "x"}})
		assert.False(t, ok)
	})

	t.Run("empty list", func(t *testing.T) {
		_, ok := SelectTrailer(nil)
		assert.False(t, ok)
	})
}

func TestTrailerEmbedURL(t *testing.T) {
	assert.Equal(t,
		"https://www.youtube.com/embed/abc123?autoplay=1&playsinline=1&mute=1&controls=1&rel=0&modestbranding=1",
		TrailerEmbedURL("abc123"))
}
