package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	mhttp "github.com/jermspeaks/slowtube/pkg/http"
	"github.com/jermspeaks/slowtube/pkg/logger"
)

// ErrAuthRequired indicates no usable session exists and the user must
// re-connect their account. Callers distinguish it from transient failures so
// the UI can prompt re-authentication instead of reporting a generic error.
var ErrAuthRequired = errors.New("youtube: authentication required")

const defaultTokenURL = "https://oauth2.googleapis.com/token"

// expiryLeeway refreshes tokens slightly before they actually expire
const expiryLeeway = time.Minute

// CredentialProvider yields a valid access token for the video platform
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

// Token is a stored OAuth session
type Token struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// TokenStore persists OAuth sessions between runs
type TokenStore interface {
	GetToken() (*Token, error)
	SaveToken(token *Token) error
}

// FileTokenStore implements TokenStore using a JSON file
type FileTokenStore struct {
	filepath string
}

// NewFileTokenStore creates a new file-based token store
func NewFileTokenStore(filepath string) *FileTokenStore {
	return &FileTokenStore{filepath: filepath}
}

// GetToken retrieves the token from the file
func (s *FileTokenStore) GetToken() (*Token, error) {
	data, err := os.ReadFile(s.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("token file not found: %w", ErrAuthRequired)
		}
		return nil, err
	}

	var token Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, err
	}

	return &token, nil
}

// SaveToken saves the token to the file
func (s *FileTokenStore) SaveToken(token *Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.filepath, data, 0600)
}

// OAuthCredentials is a CredentialProvider backed by a TokenStore, refreshing
// the access token through the platform's OAuth endpoint when it is close to
// expiry.
type OAuthCredentials struct {
	clientID     string
	clientSecret string
	store        TokenStore
	tokenURL     string
	http         mhttp.HTTPClient
}

// CredentialOption configures OAuthCredentials
type CredentialOption func(*OAuthCredentials)

// WithTokenURL overrides the OAuth token endpoint
func WithTokenURL(u string) CredentialOption {
	return func(c *OAuthCredentials) {
		c.tokenURL = u
	}
}

// WithCredentialHTTPClient overrides the transport used for token refresh
func WithCredentialHTTPClient(client mhttp.HTTPClient) CredentialOption {
	return func(c *OAuthCredentials) {
		c.http = client
	}
}

// NewOAuthCredentials creates a credential provider for the given OAuth app
func NewOAuthCredentials(clientID, clientSecret string, store TokenStore, opts ...CredentialOption) *OAuthCredentials {
	c := &OAuthCredentials{
		clientID:     clientID,
		clientSecret: clientSecret,
		store:        store,
		tokenURL:     defaultTokenURL,
		http:         mhttp.NewRateLimitedHTTPClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Token returns a valid access token, refreshing it first when expired.
// Returns ErrAuthRequired when no session is stored or the refresh is
// rejected.
func (c *OAuthCredentials) Token(ctx context.Context) (string, error) {
	token, err := c.store.GetToken()
	if err != nil {
		if errors.Is(err, ErrAuthRequired) {
			return "", err
		}
		return "", fmt.Errorf("failed to load token: %w", err)
	}

	if time.Until(token.ExpiresAt) > expiryLeeway {
		return token.AccessToken, nil
	}

	if token.RefreshToken == "" {
		return "", fmt.Errorf("token expired and no refresh token stored: %w", ErrAuthRequired)
	}

	return c.refresh(ctx, token.RefreshToken)
}

func (c *OAuthCredentials) refresh(ctx context.Context, refreshToken string) (string, error) {
	log := logger.FromCtx(ctx)

	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("refresh_token", refreshToken)
	form.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, bytes.NewBufferString(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("token refresh failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusBadRequest || res.StatusCode == http.StatusUnauthorized {
		b, _ := io.ReadAll(res.Body)
		log.Warnw("token refresh rejected", "status", res.StatusCode, "body", string(b))
		return "", fmt.Errorf("refresh rejected with status %d: %w", res.StatusCode, ErrAuthRequired)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", &Error{StatusCode: res.StatusCode, Message: "token refresh failed"}
	}

	var refreshed struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(res.Body).Decode(&refreshed); err != nil {
		return "", fmt.Errorf("failed to decode refresh response: %w", err)
	}

	token := &Token{
		AccessToken:  refreshed.AccessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(refreshed.ExpiresIn) * time.Second),
	}

	if err := c.store.SaveToken(token); err != nil {
		return "", fmt.Errorf("failed to save refreshed token: %w", err)
	}

	log.Debug("refreshed platform access token")
	return token.AccessToken, nil
}
