package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	mhttp "github.com/jermspeaks/slowtube/pkg/http"
)

const (
	// MaxPageSize is the largest page the platform's list endpoints return
	MaxPageSize = 50

	// WatchLaterPlaylistID is the reserved identifier of the built-in
	// watch-later playlist. Newer API versions reject it, so it is only one
	// of the resolution strategies.
	WatchLaterPlaylistID = "WL"
)

// Error is an error response from the video platform API
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("youtube api error: status %d: %s", e.StatusCode, e.Message)
}

// NotFound reports whether the error is a 404
func (e *Error) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// RelatedPlaylists lists the built-in playlists attached to a channel
type RelatedPlaylists struct {
	WatchLater string
	Likes      string
}

// PlaylistInfo is a playlist owned by the authenticated channel
type PlaylistInfo struct {
	ID    string
	Title string
}

// PlaylistsPage is one page of the authenticated channel's playlists
type PlaylistsPage struct {
	Playlists     []PlaylistInfo
	NextPageToken string
}

// PlaylistItemsPage is one page of video ids contained in a playlist
type PlaylistItemsPage struct {
	VideoIDs      []string
	NextPageToken string
}

// Thumbnail is a single thumbnail rendition
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Thumbnails holds the renditions the platform serves for a video
type Thumbnails struct {
	Default *Thumbnail `json:"default"`
	Medium  *Thumbnail `json:"medium"`
	High    *Thumbnail `json:"high"`
}

// BestURL returns the preferred thumbnail url, favoring medium over high over
// default. Empty when no rendition exists.
func (t Thumbnails) BestURL() string {
	for _, thumb := range []*Thumbnail{t.Medium, t.High, t.Default} {
		if thumb != nil && thumb.URL != "" {
			return thumb.URL
		}
	}
	return ""
}

// Video is the metadata for one platform video
type Video struct {
	ID          string
	Title       string
	Description string
	Channel     string
	Duration    string
	PublishedAt time.Time
	Thumbnails  Thumbnails
}

// ClientInterface describes the platform operations the managers need
type ClientInterface interface {
	ChannelRelatedPlaylists(ctx context.Context) (*RelatedPlaylists, error)
	PlaylistItems(ctx context.Context, playlistID, pageToken string) (*PlaylistItemsPage, error)
	Videos(ctx context.Context, ids []string) ([]Video, error)
	MyPlaylists(ctx context.Context, pageToken string) (*PlaylistsPage, error)
}

// Client calls the video platform's data API on behalf of an authenticated
// channel
type Client struct {
	baseURL string
	creds   CredentialProvider
	http    mhttp.HTTPClient
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient overrides the transport used by the client
func WithHTTPClient(client mhttp.HTTPClient) ClientOption {
	return func(c *Client) {
		c.http = client
	}
}

// New creates a platform client rooted at the given base url
func New(baseURL string, creds CredentialProvider, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		creds:   creds,
		http:    mhttp.NewRateLimitedHTTPClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ChannelRelatedPlaylists returns the built-in playlists of the authenticated
// channel
func (c *Client) ChannelRelatedPlaylists(ctx context.Context) (*RelatedPlaylists, error) {
	query := url.Values{}
	query.Set("part", "contentDetails")
	query.Set("mine", "true")

	var res struct {
		Items []struct {
			ContentDetails struct {
				RelatedPlaylists struct {
					WatchLater string `json:"watchLater"`
					Likes      string `json:"likes"`
				} `json:"relatedPlaylists"`
			} `json:"contentDetails"`
		} `json:"items"`
	}
	if err := c.get(ctx, "/channels", query, &res); err != nil {
		return nil, err
	}

	if len(res.Items) == 0 {
		return nil, &Error{StatusCode: http.StatusNotFound, Message: "no channel for authenticated user"}
	}

	related := res.Items[0].ContentDetails.RelatedPlaylists
	return &RelatedPlaylists{
		WatchLater: related.WatchLater,
		Likes:      related.Likes,
	}, nil
}

// PlaylistItems returns one page of video ids from the given playlist. Pass an
// empty pageToken for the first page.
func (c *Client) PlaylistItems(ctx context.Context, playlistID, pageToken string) (*PlaylistItemsPage, error) {
	query := url.Values{}
	query.Set("part", "contentDetails")
	query.Set("playlistId", playlistID)
	query.Set("maxResults", fmt.Sprint(MaxPageSize))
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}

	var res struct {
		NextPageToken string `json:"nextPageToken"`
		Items         []struct {
			ContentDetails struct {
				VideoID string `json:"videoId"`
			} `json:"contentDetails"`
		} `json:"items"`
	}
	if err := c.get(ctx, "/playlistItems", query, &res); err != nil {
		return nil, err
	}

	page := &PlaylistItemsPage{NextPageToken: res.NextPageToken}
	for _, item := range res.Items {
		if item.ContentDetails.VideoID == "" {
			continue
		}
		page.VideoIDs = append(page.VideoIDs, item.ContentDetails.VideoID)
	}

	return page, nil
}

// Videos returns metadata for the given video ids. The platform caps the ids
// per call at MaxPageSize; callers batch accordingly. Missing ids are simply
// absent from the result.
func (c *Client) Videos(ctx context.Context, ids []string) ([]Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > MaxPageSize {
		return nil, fmt.Errorf("too many video ids in one call: %d > %d", len(ids), MaxPageSize)
	}

	query := url.Values{}
	query.Set("part", "snippet,contentDetails")
	query.Set("id", strings.Join(ids, ","))

	var res struct {
		Items []struct {
			ID      string `json:"id"`
			Snippet struct {
				Title        string     `json:"title"`
				Description  string     `json:"description"`
				ChannelTitle string     `json:"channelTitle"`
				PublishedAt  time.Time  `json:"publishedAt"`
				Thumbnails   Thumbnails `json:"thumbnails"`
			} `json:"snippet"`
			ContentDetails struct {
				Duration string `json:"duration"`
			} `json:"contentDetails"`
		} `json:"items"`
	}
	if err := c.get(ctx, "/videos", query, &res); err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(res.Items))
	for _, item := range res.Items {
		videos = append(videos, Video{
			ID:          item.ID,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			Channel:     item.Snippet.ChannelTitle,
			Duration:    item.ContentDetails.Duration,
			PublishedAt: item.Snippet.PublishedAt,
			Thumbnails:  item.Snippet.Thumbnails,
		})
	}

	return videos, nil
}

// MyPlaylists returns one page of the playlists owned by the authenticated
// channel
func (c *Client) MyPlaylists(ctx context.Context, pageToken string) (*PlaylistsPage, error) {
	query := url.Values{}
	query.Set("part", "snippet")
	query.Set("mine", "true")
	query.Set("maxResults", fmt.Sprint(MaxPageSize))
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}

	var res struct {
		NextPageToken string `json:"nextPageToken"`
		Items         []struct {
			ID      string `json:"id"`
			Snippet struct {
				Title string `json:"title"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := c.get(ctx, "/playlists", query, &res); err != nil {
		return nil, err
	}

	page := &PlaylistsPage{NextPageToken: res.NextPageToken}
	for _, item := range res.Items {
		page.Playlists = append(page.Playlists, PlaylistInfo{
			ID:    item.ID,
			Title: item.Snippet.Title,
		})
	}

	return page, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	token, err := c.creds.Token(ctx)
	if err != nil {
		return err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return fmt.Errorf("request rejected with status %d: %w", res.StatusCode, ErrAuthRequired)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return parseErrorResponse(res)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func parseErrorResponse(res *http.Response) error {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	apiErr := &Error{StatusCode: res.StatusCode}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil {
		apiErr.Message = body.Error.Message
	}
	return apiErr
}
