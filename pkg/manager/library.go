package manager

import (
	"context"

	"github.com/jermspeaks/slowtube/pkg/storage"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/model"
)

// ListShows lists every tracked show
func (m MediaManager) ListShows(ctx context.Context) ([]*model.Show, error) {
	return m.storage.ListShows(ctx)
}

// ListMovies lists every tracked movie
func (m MediaManager) ListMovies(ctx context.Context) ([]*model.Movie, error) {
	return m.storage.ListMovies(ctx)
}

// ListVideos lists tracked videos, optionally narrowed to one triage state
func (m MediaManager) ListVideos(ctx context.Context, state storage.VideoState) ([]*model.Video, error) {
	if state == storage.VideoStateNew {
		return m.storage.ListVideos(ctx)
	}
	return m.storage.ListVideosByState(ctx, state)
}

// SetVideoState moves a video through its triage workflow
func (m MediaManager) SetVideoState(ctx context.Context, id int64, state storage.VideoState) error {
	return m.storage.UpdateVideoState(ctx, id, state)
}

// Stats summarizes the tracked library
func (m MediaManager) Stats(ctx context.Context) (*storage.LibraryStats, error) {
	return m.storage.GetLibraryStats(ctx)
}
