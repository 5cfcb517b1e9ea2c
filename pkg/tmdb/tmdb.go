package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	mhttp "github.com/jermspeaks/slowtube/pkg/http"
)

// ReleaseDateFormat is the date layout used by the metadata API
const ReleaseDateFormat = "2006-01-02"

// Error is returned for any non-2xx response from the metadata API
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("tmdb: status %d: %s", e.StatusCode, e.Message)
}

// NotFound reports whether the upstream rejected the request with a 404
func (e *Error) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err is an upstream 404
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.NotFound()
}

// MovieDetails is a movie record with optional upstream fields left nil when absent
type MovieDetails struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    *string `json:"overview"`
	PosterPath  *string `json:"poster_path"`
	ReleaseDate *string `json:"release_date"`
	Runtime     *int32  `json:"runtime"`
	ImdbID      *string `json:"imdb_id"`
}

// SeriesDetails is a tv series record with optional upstream fields left nil when absent
type SeriesDetails struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Overview         *string `json:"overview"`
	PosterPath       *string `json:"poster_path"`
	FirstAirDate     *string `json:"first_air_date"`
	Status           *string `json:"status"`
	NumberOfSeasons  int32   `json:"number_of_seasons"`
	NumberOfEpisodes *int32  `json:"number_of_episodes"`
}

type SeasonDetails struct {
	SeasonNumber int32            `json:"season_number"`
	Episodes     []EpisodeDetails `json:"episodes"`
}

type EpisodeDetails struct {
	SeasonNumber  int32   `json:"season_number"`
	EpisodeNumber int32   `json:"episode_number"`
	Name          *string `json:"name"`
	Overview      *string `json:"overview"`
	AirDate       *string `json:"air_date"`
	Runtime       *int32  `json:"runtime"`
	StillPath     *string `json:"still_path"`
}

// FindResults is the response of the external-id cross-reference lookup
type FindResults struct {
	MovieResults []SearchMovieResult `json:"movie_results"`
	TvResults    []SearchTvResult    `json:"tv_results"`
}

type SearchMovieResult struct {
	ID          int64   `json:"id"`
	Title       *string `json:"title"`
	Overview    *string `json:"overview"`
	PosterPath  *string `json:"poster_path"`
	ReleaseDate *string `json:"release_date"`
}

type SearchTvResult struct {
	ID           int64   `json:"id"`
	Name         *string `json:"name"`
	Overview     *string `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	FirstAirDate *string `json:"first_air_date"`
}

type SearchMovieResponse struct {
	Page         int                 `json:"page"`
	TotalPages   int                 `json:"total_pages"`
	TotalResults int                 `json:"total_results"`
	Results      []SearchMovieResult `json:"results"`
}

// ClientInterface is the narrow metadata API contract the sync core consumes
type ClientInterface interface {
	GetMovieDetails(ctx context.Context, id int64) (*MovieDetails, error)
	GetSeriesDetails(ctx context.Context, id int64) (*SeriesDetails, error)
	GetSeasonDetails(ctx context.Context, id int64, seasonNumber int32) (*SeasonDetails, error)
	FindByExternalID(ctx context.Context, externalID string) (*FindResults, error)
	SearchMovie(ctx context.Context, query string) (*SearchMovieResponse, error)
}

// Client talks to the metadata API over a rate-limited http client
type Client struct {
	baseURL string
	apiKey  string
	http    mhttp.HTTPClient
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the transport used for requests
func WithHTTPClient(client mhttp.HTTPClient) Option {
	return func(c *Client) {
		c.http = client
	}
}

// New creates a metadata API client
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    mhttp.NewRateLimitedHTTPClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetMovieDetails fetches the details for a movie id
func (c *Client) GetMovieDetails(ctx context.Context, id int64) (*MovieDetails, error) {
	var details MovieDetails
	err := c.get(ctx, "/3/movie/"+strconv.FormatInt(id, 10), nil, &details)
	if err != nil {
		return nil, err
	}

	return &details, nil
}

// GetSeriesDetails fetches the details for a tv series id
func (c *Client) GetSeriesDetails(ctx context.Context, id int64) (*SeriesDetails, error) {
	var details SeriesDetails
	err := c.get(ctx, "/3/tv/"+strconv.FormatInt(id, 10), nil, &details)
	if err != nil {
		return nil, err
	}

	return &details, nil
}

// GetSeasonDetails fetches the episode list for one season of a series
func (c *Client) GetSeasonDetails(ctx context.Context, id int64, seasonNumber int32) (*SeasonDetails, error) {
	path := fmt.Sprintf("/3/tv/%d/season/%d", id, seasonNumber)

	var details SeasonDetails
	err := c.get(ctx, path, nil, &details)
	if err != nil {
		return nil, err
	}

	return &details, nil
}

// FindByExternalID cross-references a third-party id to movie and tv results
func (c *Client) FindByExternalID(ctx context.Context, externalID string) (*FindResults, error) {
	query := url.Values{}
	query.Set("external_source", "imdb_id")

	var results FindResults
	err := c.get(ctx, "/3/find/"+url.PathEscape(externalID), query, &results)
	if err != nil {
		return nil, err
	}

	return &results, nil
}

// SearchMovie queries movies by title
func (c *Client) SearchMovie(ctx context.Context, q string) (*SearchMovieResponse, error) {
	query := url.Values{}
	query.Set("query", q)

	var results SearchMovieResponse
	err := c.get(ctx, "/3/search/movie", query, &results)
	if err != nil {
		return nil, err
	}

	return &results, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u = u + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	req.Header.Add("accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return parseErrorResponse(res)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func parseErrorResponse(res *http.Response) error {
	apiErr := &Error{StatusCode: res.StatusCode}

	var body struct {
		StatusMessage string `json:"status_message"`
	}

	b, err := io.ReadAll(res.Body)
	if err == nil && json.Unmarshal(b, &body) == nil && body.StatusMessage != "" {
		apiErr.Message = body.StatusMessage
		return apiErr
	}

	apiErr.Message = res.Status
	return apiErr
}
