package tmdb

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/jermspeaks/slowtube/pkg/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestGetMovieDetails(t *testing.T) {
	t.Run("successful response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		mhttp.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "https://api.example.org/3/movie/550", req.URL.String())
			assert.Equal(t, "Bearer secret", req.Header.Get("Authorization"))
			return jsonResponse(http.StatusOK, `{"id": 550, "title": "Fight Club", "runtime": 139, "release_date": "1999-10-15"}`), nil
		})

		client := New("https://api.example.org", "secret", WithHTTPClient(mhttp))
		details, err := client.GetMovieDetails(context.Background(), 550)
		require.NoError(t, err)
		assert.Equal(t, int64(550), details.ID)
		assert.Equal(t, "Fight Club", details.Title)
		require.NotNil(t, details.Runtime)
		assert.Equal(t, int32(139), *details.Runtime)
		assert.Nil(t, details.Overview)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		mhttp.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusNotFound, `{"status_message": "The resource you requested could not be found."}`), nil)

		client := New("https://api.example.org", "secret", WithHTTPClient(mhttp))
		_, err := client.GetMovieDetails(context.Background(), 1)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})

	t.Run("server error carries status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		mhttp.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusInternalServerError, `boom`), nil)

		client := New("https://api.example.org", "secret", WithHTTPClient(mhttp))
		_, err := client.GetMovieDetails(context.Background(), 1)
		require.Error(t, err)
		assert.False(t, IsNotFound(err))

		apiErr, ok := err.(*Error)
		require.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	})
}

func TestGetSeasonDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	mhttp := mocks.NewMockHTTPClient(ctrl)

	mhttp.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "https://api.example.org/3/tv/1399/season/2", req.URL.String())
		return jsonResponse(http.StatusOK, `{"season_number": 2, "episodes": [{"season_number": 2, "episode_number": 1, "name": "The North Remembers"}]}`), nil
	})

	client := New("https://api.example.org", "secret", WithHTTPClient(mhttp))
	season, err := client.GetSeasonDetails(context.Background(), 1399, 2)
	require.NoError(t, err)
	require.Len(t, season.Episodes, 1)
	assert.Equal(t, int32(1), season.Episodes[0].EpisodeNumber)
	require.NotNil(t, season.Episodes[0].Name)
	assert.Equal(t, "The North Remembers", *season.Episodes[0].Name)
	assert.Nil(t, season.Episodes[0].Runtime)
}

func TestFindByExternalID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mhttp := mocks.NewMockHTTPClient(ctrl)

	mhttp.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/3/find/tt0137523", req.URL.Path)
		assert.Equal(t, "imdb_id", req.URL.Query().Get("external_source"))
		return jsonResponse(http.StatusOK, `{"movie_results": [{"id": 550, "title": "Fight Club"}], "tv_results": []}`), nil
	})

	client := New("https://api.example.org", "secret", WithHTTPClient(mhttp))
	results, err := client.FindByExternalID(context.Background(), "tt0137523")
	require.NoError(t, err)
	require.Len(t, results.MovieResults, 1)
	assert.Equal(t, int64(550), results.MovieResults[0].ID)
	assert.Empty(t, results.TvResults)
}

func TestSearchMovie(t *testing.T) {
	ctrl := gomock.NewController(t)
	mhttp := mocks.NewMockHTTPClient(ctrl)

	mhttp.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "Parasite", req.URL.Query().Get("query"))
		return jsonResponse(http.StatusOK, `{"page": 1, "total_results": 1, "results": [{"id": 496243, "title": "Parasite", "release_date": "2019-05-30"}]}`), nil
	})

	client := New("https://api.example.org", "secret", WithHTTPClient(mhttp))
	resp, err := client.SearchMovie(context.Background(), "Parasite")
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	require.NotNil(t, resp.Results[0].ReleaseDate)
	assert.Equal(t, "2019-05-30", *resp.Results[0].ReleaseDate)
}
