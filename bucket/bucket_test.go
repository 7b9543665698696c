package bucket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsURL(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsURL("s3://midi-sources/song.mid"))
	assert.False(IsURL("song.mid"))
	assert.False(IsURL("/tmp/song.mid"))
	assert.False(IsURL("https://example.com/song.mid"))
}

func TestFetchMidiRejectsMalformedURLs(t *testing.T) {
	cases := []string{
		"https://example.com/song.mid",
		"s3://",
		"s3://bucket-only",
		"s3://bucket-only/",
	}
	for _, rawURL := range cases {
		_, err := FetchMidi(rawURL)
		assert.ErrorContains(t, err, "invalid s3 url", "url %v", rawURL)
	}
}
