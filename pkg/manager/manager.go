// Package manager holds the synchronization core: identifier resolution,
// metadata fetch, episode reconciliation, and the import orchestrators built
// on top of them.
package manager

import (
	"time"

	"github.com/jermspeaks/slowtube/pkg/cache"
	"github.com/jermspeaks/slowtube/pkg/storage"
	"github.com/jermspeaks/slowtube/pkg/tmdb"
	"github.com/jermspeaks/slowtube/pkg/youtube"
)

type TMDBClientInterface tmdb.ClientInterface
type YouTubeClientInterface youtube.ClientInterface

// Pacing controls the fixed delays between sequential external calls and the
// progress-report cadence of batch imports
type Pacing struct {
	SeasonDelay     time.Duration
	ShowDelay       time.Duration
	EntryDelay      time.Duration
	ProgressEvery   int
	PlaylistScanMax int
}

// DefaultPacing matches the upstream APIs' tolerated request rates
func DefaultPacing() Pacing {
	return Pacing{
		SeasonDelay:     250 * time.Millisecond,
		ShowDelay:       500 * time.Millisecond,
		EntryDelay:      500 * time.Millisecond,
		ProgressEvery:   10,
		PlaylistScanMax: 10,
	}
}

type MediaManager struct {
	tmdb     TMDBClientInterface
	youtube  YouTubeClientInterface
	creds    youtube.CredentialProvider
	storage  storage.Storage
	pacing   Pacing
	findRefs *cache.Cache[string, CanonicalRef]
}

// Option configures a MediaManager
type Option func(*MediaManager)

// WithPacing overrides the default inter-call delays
func WithPacing(p Pacing) Option {
	return func(m *MediaManager) {
		m.pacing = p
	}
}

func New(tmdbClient TMDBClientInterface, youtubeClient YouTubeClientInterface, creds youtube.CredentialProvider, storage storage.Storage, opts ...Option) MediaManager {
	m := MediaManager{
		tmdb:     tmdbClient,
		youtube:  youtubeClient,
		creds:    creds,
		storage:  storage,
		pacing:   DefaultPacing(),
		findRefs: cache.New[string, CanonicalRef](),
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}
