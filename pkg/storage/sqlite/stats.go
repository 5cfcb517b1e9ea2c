package sqlite

import (
	"context"
	"fmt"

	"github.com/jermspeaks/slowtube/pkg/storage"
)

// GetLibraryStats returns counts of everything the library tracks
func (s SQLite) GetLibraryStats(ctx context.Context) (*storage.LibraryStats, error) {
	stats := &storage.LibraryStats{}

	counts := []struct {
		query string
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM "show"`, &stats.ShowCount},
		{`SELECT COUNT(*) FROM "movie"`, &stats.MovieCount},
		{`SELECT COUNT(*) FROM "episode"`, &stats.EpisodeCount},
		{`SELECT COUNT(*) FROM "episode" WHERE watched = 1`, &stats.WatchedEpisodeCount},
		{`SELECT COUNT(*) FROM "video"`, &stats.VideoCount},
		{`SELECT COUNT(*) FROM "video" WHERE state = 'feed'`, &stats.FeedVideoCount},
	}

	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to gather library stats: %w", err)
		}
	}

	return stats, nil
}
