package youtube_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	mhttpMocks "github.com/jermspeaks/slowtube/pkg/http/mocks"
	"github.com/jermspeaks/slowtube/pkg/youtube"
	"github.com/jermspeaks/slowtube/pkg/youtube/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type staticCreds string

func (s staticCreds) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestClient_ChannelRelatedPlaylists(t *testing.T) {
	ctx := context.Background()

	t.Run("returns watch later playlist id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		httpMock := mhttpMocks.NewMockHTTPClient(ctrl)
		httpMock.EXPECT().Do(gomock.Any()).DoAndReturn(func(r *http.Request) (*http.Response, error) {
			assert.Equal(t, "/youtube/v3/channels", r.URL.Path)
			assert.Equal(t, "contentDetails", r.URL.Query().Get("part"))
			assert.Equal(t, "true", r.URL.Query().Get("mine"))
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			return jsonResponse(http.StatusOK, `{"items":[{"contentDetails":{"relatedPlaylists":{"watchLater":"WLabc","likes":"LLabc"}}}]}`), nil
		})

		client := youtube.New("https://youtube.googleapis.com/youtube/v3", staticCreds("tok"), youtube.WithHTTPClient(httpMock))
		related, err := client.ChannelRelatedPlaylists(ctx)
		require.NoError(t, err)
		assert.Equal(t, "WLabc", related.WatchLater)
	})

	t.Run("no channel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		httpMock := mhttpMocks.NewMockHTTPClient(ctrl)
		httpMock.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusOK, `{"items":[]}`), nil)

		client := youtube.New("https://youtube.googleapis.com/youtube/v3", staticCreds("tok"), youtube.WithHTTPClient(httpMock))
		_, err := client.ChannelRelatedPlaylists(ctx)
		var apiErr *youtube.Error
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.NotFound())
	})

	t.Run("unauthorized maps to auth required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		httpMock := mhttpMocks.NewMockHTTPClient(ctrl)
		httpMock.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusUnauthorized, `{}`), nil)

		client := youtube.New("https://youtube.googleapis.com/youtube/v3", staticCreds("tok"), youtube.WithHTTPClient(httpMock))
		_, err := client.ChannelRelatedPlaylists(ctx)
		assert.ErrorIs(t, err, youtube.ErrAuthRequired)
	})
}

func TestClient_PlaylistItems(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	httpMock := mhttpMocks.NewMockHTTPClient(ctrl)
	httpMock.EXPECT().Do(gomock.Any()).DoAndReturn(func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, "/youtube/v3/playlistItems", r.URL.Path)
		assert.Equal(t, "WLabc", r.URL.Query().Get("playlistId"))
		assert.Equal(t, "50", r.URL.Query().Get("maxResults"))
		assert.Equal(t, "tok2", r.URL.Query().Get("pageToken"))
		return jsonResponse(http.StatusOK, `{"nextPageToken":"tok3","items":[{"contentDetails":{"videoId":"abc"}},{"contentDetails":{"videoId":"def"}}]}`), nil
	})

	client := youtube.New("https://youtube.googleapis.com/youtube/v3", staticCreds("tok"), youtube.WithHTTPClient(httpMock))
	page, err := client.PlaylistItems(ctx, "WLabc", "tok2")
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "def"}, page.VideoIDs)
	assert.Equal(t, "tok3", page.NextPageToken)
}

func TestClient_Videos(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		httpMock := mhttpMocks.NewMockHTTPClient(ctrl)
		httpMock.EXPECT().Do(gomock.Any()).DoAndReturn(func(r *http.Request) (*http.Response, error) {
			assert.Equal(t, "/youtube/v3/videos", r.URL.Path)
			assert.Equal(t, "abc,def", r.URL.Query().Get("id"))
			return jsonResponse(http.StatusOK, `{"items":[{"id":"abc","snippet":{"title":"First","channelTitle":"chan","publishedAt":"2024-03-01T10:00:00Z","thumbnails":{"medium":{"url":"https://i.ytimg.com/m.jpg"}}},"contentDetails":{"duration":"PT4M13S"}}]}`), nil
		})

		client := youtube.New("https://youtube.googleapis.com/youtube/v3", staticCreds("tok"), youtube.WithHTTPClient(httpMock))
		videos, err := client.Videos(ctx, []string{"abc", "def"})
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, "abc", videos[0].ID)
		assert.Equal(t, "First", videos[0].Title)
		assert.Equal(t, "PT4M13S", videos[0].Duration)
		assert.Equal(t, "https://i.ytimg.com/m.jpg", videos[0].Thumbnails.BestURL())
	})

	t.Run("empty ids skips the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		httpMock := mhttpMocks.NewMockHTTPClient(ctrl)

		client := youtube.New("https://youtube.googleapis.com/youtube/v3", staticCreds("tok"), youtube.WithHTTPClient(httpMock))
		videos, err := client.Videos(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, videos)
	})

	t.Run("rejects oversized batches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		httpMock := mhttpMocks.NewMockHTTPClient(ctrl)

		ids := make([]string, youtube.MaxPageSize+1)
		client := youtube.New("https://youtube.googleapis.com/youtube/v3", staticCreds("tok"), youtube.WithHTTPClient(httpMock))
		_, err := client.Videos(ctx, ids)
		assert.Error(t, err)
	})
}

func TestClient_MyPlaylists(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	httpMock := mhttpMocks.NewMockHTTPClient(ctrl)
	httpMock.EXPECT().Do(gomock.Any()).DoAndReturn(func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, "/youtube/v3/playlists", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("mine"))
		return jsonResponse(http.StatusOK, `{"items":[{"id":"PL1","snippet":{"title":"Watch Later"}}]}`), nil
	})

	client := youtube.New("https://youtube.googleapis.com/youtube/v3", staticCreds("tok"), youtube.WithHTTPClient(httpMock))
	page, err := client.MyPlaylists(ctx, "")
	require.NoError(t, err)
	require.Len(t, page.Playlists, 1)
	assert.Equal(t, "PL1", page.Playlists[0].ID)
	assert.Equal(t, "Watch Later", page.Playlists[0].Title)
	assert.Empty(t, page.NextPageToken)
}

func TestClient_CredentialFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	httpMock := mhttpMocks.NewMockHTTPClient(ctrl)
	creds := mocks.NewMockCredentialProvider(ctrl)
	creds.EXPECT().Token(gomock.Any()).Return("", youtube.ErrAuthRequired)

	client := youtube.New("https://youtube.googleapis.com/youtube/v3", creds, youtube.WithHTTPClient(httpMock))
	_, err := client.PlaylistItems(ctx, "WL", "")
	assert.ErrorIs(t, err, youtube.ErrAuthRequired)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{input: "PT4M13S", expected: 4*time.Minute + 13*time.Second},
		{input: "PT1H2M3S", expected: time.Hour + 2*time.Minute + 3*time.Second},
		{input: "PT45S", expected: 45 * time.Second},
		{input: "P1DT6H", expected: 30 * time.Hour},
		{input: "PT0S", expected: 0},
		{input: "4M13S", wantErr: true},
		{input: "PTM", wantErr: true},
		{input: "PT3X", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := youtube.ParseDuration(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestFileTokenStore(t *testing.T) {
	store := youtube.NewFileTokenStore(t.TempDir() + "/token.json")

	_, err := store.GetToken()
	assert.ErrorIs(t, err, youtube.ErrAuthRequired)

	token := &youtube.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(time.Hour).UTC(),
	}
	require.NoError(t, store.SaveToken(token))

	loaded, err := store.GetToken()
	require.NoError(t, err)
	assert.Equal(t, token, loaded)
}

func TestOAuthCredentials_Token(t *testing.T) {
	ctx := context.Background()

	t.Run("missing token file requires auth", func(t *testing.T) {
		store := youtube.NewFileTokenStore(t.TempDir() + "/token.json")
		creds := youtube.NewOAuthCredentials("id", "secret", store)
		_, err := creds.Token(ctx)
		assert.ErrorIs(t, err, youtube.ErrAuthRequired)
	})

	t.Run("fresh token returned without refresh", func(t *testing.T) {
		store := youtube.NewFileTokenStore(t.TempDir() + "/token.json")
		require.NoError(t, store.SaveToken(&youtube.Token{
			AccessToken: "access",
			ExpiresAt:   time.Now().Add(time.Hour),
		}))

		creds := youtube.NewOAuthCredentials("id", "secret", store)
		token, err := creds.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "access", token)
	})

	t.Run("expired token refreshed and saved", func(t *testing.T) {
		path := t.TempDir() + "/token.json"
		store := youtube.NewFileTokenStore(path)
		require.NoError(t, store.SaveToken(&youtube.Token{
			AccessToken:  "stale",
			RefreshToken: "refresh",
			ExpiresAt:    time.Now().Add(-time.Hour),
		}))

		ctrl := gomock.NewController(t)
		httpMock := mhttpMocks.NewMockHTTPClient(ctrl)
		httpMock.EXPECT().Do(gomock.Any()).DoAndReturn(func(r *http.Request) (*http.Response, error) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "refresh", r.PostForm.Get("refresh_token"))
			assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
			return jsonResponse(http.StatusOK, `{"access_token":"fresh","expires_in":3600}`), nil
		})

		creds := youtube.NewOAuthCredentials("id", "secret", store, youtube.WithCredentialHTTPClient(httpMock))
		token, err := creds.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "fresh", token)

		saved, err := store.GetToken()
		require.NoError(t, err)
		assert.Equal(t, "fresh", saved.AccessToken)
		assert.Equal(t, "refresh", saved.RefreshToken)
		assert.True(t, saved.ExpiresAt.After(time.Now()))
	})

	t.Run("rejected refresh requires auth", func(t *testing.T) {
		store := youtube.NewFileTokenStore(t.TempDir() + "/token.json")
		require.NoError(t, store.SaveToken(&youtube.Token{
			AccessToken:  "stale",
			RefreshToken: "refresh",
			ExpiresAt:    time.Now().Add(-time.Hour),
		}))

		ctrl := gomock.NewController(t)
		httpMock := mhttpMocks.NewMockHTTPClient(ctrl)
		httpMock.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusBadRequest, `{"error":"invalid_grant"}`), nil)

		creds := youtube.NewOAuthCredentials("id", "secret", store, youtube.WithCredentialHTTPClient(httpMock))
		_, err := creds.Token(ctx)
		assert.ErrorIs(t, err, youtube.ErrAuthRequired)
	})

	t.Run("expired token without refresh token requires auth", func(t *testing.T) {
		store := youtube.NewFileTokenStore(t.TempDir() + "/token.json")
		require.NoError(t, store.SaveToken(&youtube.Token{
			AccessToken: "stale",
			ExpiresAt:   time.Now().Add(-time.Hour),
		}))

		creds := youtube.NewOAuthCredentials("id", "secret", store)
		_, err := creds.Token(ctx)
		assert.ErrorIs(t, err, youtube.ErrAuthRequired)
	})
}
