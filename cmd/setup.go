package cmd

import (
	"log"
	"net/url"

	"github.com/jermspeaks/slowtube/config"
	"github.com/jermspeaks/slowtube/pkg/manager"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite"
	"github.com/jermspeaks/slowtube/pkg/tmdb"
	"github.com/jermspeaks/slowtube/pkg/youtube"
	"github.com/spf13/viper"
)

// newManager wires every dependency the sync core needs from the loaded
// configuration. Errors are fatal since nothing works without them.
func newManager() (manager.MediaManager, config.Config) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatalf("failed to read configurations: %v", err)
	}

	tmdbURL := url.URL{
		Scheme: cfg.TMDB.Scheme,
		Host:   cfg.TMDB.Host,
	}
	tmdbClient := tmdb.New(tmdbURL.String(), cfg.TMDB.APIKey)

	youtubeURL := url.URL{
		Scheme: cfg.YouTube.Scheme,
		Host:   cfg.YouTube.Host,
		Path:   "/youtube/v3",
	}
	creds := youtube.NewOAuthCredentials(cfg.YouTube.ClientID, cfg.YouTube.ClientSecret, youtube.NewFileTokenStore(cfg.YouTube.TokenFile))
	youtubeClient := youtube.New(youtubeURL.String(), creds)

	store, err := sqlite.New(cfg.Storage.FilePath)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}

	m := manager.New(tmdbClient, youtubeClient, creds, store, manager.WithPacing(manager.Pacing{
		SeasonDelay:     cfg.Sync.SeasonDelay,
		ShowDelay:       cfg.Sync.ShowDelay,
		EntryDelay:      cfg.Sync.EntryDelay,
		ProgressEvery:   cfg.Sync.ProgressEvery,
		PlaylistScanMax: cfg.Sync.PlaylistScanMax,
	}))

	return m, cfg
}
