package feed_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jermspeaks/slowtube/pkg/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSaved(t *testing.T) {
	t.Run("parses entries", func(t *testing.T) {
		input := `[
			{"externalRef": "tmdb:550", "savedAtMillis": 1700000000000},
			{"externalRef": "tt4574334", "savedAtMillis": 1710000000000}
		]`

		entries, err := feed.ParseSaved(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "tmdb:550", entries[0].ExternalRef)
		assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), entries[0].SavedAt())
		assert.Equal(t, "tt4574334", entries[1].ExternalRef)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := feed.ParseSaved(strings.NewReader(`{"not": "an array"}`))
		assert.Error(t, err)
	})
}

func TestParseLetterboxd(t *testing.T) {
	t.Run("parses rows including quoted titles", func(t *testing.T) {
		input := `Date,Name,Year,Letterboxd URI
2024-01-15,Parasite,2019,https://boxd.it/hTha
2024-02-20,"I, Tonya",2017,https://boxd.it/dWlY
`

		entries, err := feed.ParseLetterboxd(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Parasite", entries[0].Name)
		assert.Equal(t, 2019, entries[0].Year)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), entries[0].Date)
		assert.Equal(t, "I, Tonya", entries[1].Name)
		assert.Equal(t, "https://boxd.it/dWlY", entries[1].URI)
	})

	t.Run("keeps rows with a bad year", func(t *testing.T) {
		input := `Date,Name,Year,Letterboxd URI
2024-01-15,Some Film,,https://boxd.it/x
`

		entries, err := feed.ParseLetterboxd(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Zero(t, entries[0].Year)
	})

	t.Run("rejects unexpected header", func(t *testing.T) {
		_, err := feed.ParseLetterboxd(strings.NewReader("a,b,c,d\n1,2,3,4\n"))
		assert.Error(t, err)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := feed.ParseLetterboxd(strings.NewReader(""))
		assert.Error(t, err)
	})
}
