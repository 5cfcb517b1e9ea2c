package storage

import (
	"context"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jermspeaks/slowtube/pkg/machine"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")

// ErrUniqueConstraint indicates the row already exists under a uniqueness
// rule. Importers treat it as "already tracked" rather than a failure.
var ErrUniqueConstraint = errors.New("unique constraint violation")

type Storage interface {
	ShowStorage
	MovieStorage
	EpisodeStorage
	VideoStorage
	StatisticsStorage
}

type ShowStorage interface {
	CreateShow(ctx context.Context, show model.Show) (int64, error)
	GetShow(ctx context.Context, where sqlite.BoolExpression) (*model.Show, error)
	ListShows(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Show, error)
	UpdateShowMetadata(ctx context.Context, id int64, show model.Show) error
	UpdateShowSavedAt(ctx context.Context, id int64, savedAt time.Time) error
	UpdateShowRefreshedAt(ctx context.Context, id int64, refreshedAt time.Time) error
	UpdateShowArchived(ctx context.Context, id int64, archived bool) error
	DeleteShow(ctx context.Context, id int64) error
}

type MovieStorage interface {
	CreateMovie(ctx context.Context, movie model.Movie) (int64, error)
	GetMovie(ctx context.Context, where sqlite.BoolExpression) (*model.Movie, error)
	ListMovies(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Movie, error)
	UpdateMovieSavedAt(ctx context.Context, id int64, savedAt time.Time) error
	DeleteMovie(ctx context.Context, id int64) error
}

type EpisodeStorage interface {
	CreateEpisode(ctx context.Context, episode model.Episode) (int64, error)
	GetEpisode(ctx context.Context, where sqlite.BoolExpression) (*model.Episode, error)
	ListEpisodes(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Episode, error)
	// UpdateEpisodeMetadata replaces descriptive fields only. Watched state is
	// never touched by metadata updates.
	UpdateEpisodeMetadata(ctx context.Context, id int64, episode model.Episode) error
	UpdateEpisodeWatched(ctx context.Context, id int64, watched bool, watchedAt *time.Time) error
	DeleteEpisode(ctx context.Context, id int64) error
}

type VideoState string

const (
	VideoStateNew     VideoState = ""
	VideoStateFeed    VideoState = "feed"
	VideoStateInbox   VideoState = "inbox"
	VideoStateArchive VideoState = "archive"
)

// Video couples a stored video with its triage state
type Video struct {
	model.Video
}

func (v Video) Machine() *machine.StateMachine[VideoState] {
	return machine.New(VideoState(v.State),
		machine.From(VideoStateNew).To(VideoStateFeed),
		machine.From(VideoStateFeed).To(VideoStateInbox, VideoStateArchive),
		machine.From(VideoStateInbox).To(VideoStateArchive),
		machine.From(VideoStateArchive).To(VideoStateInbox),
	)
}

type VideoStorage interface {
	CreateVideo(ctx context.Context, video model.Video, initialState VideoState) (int64, error)
	GetVideo(ctx context.Context, where sqlite.BoolExpression) (*model.Video, error)
	ListVideos(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Video, error)
	ListVideosByState(ctx context.Context, state VideoState) ([]*model.Video, error)
	// UpdateVideoMetadata replaces descriptive fields only. Triage state and
	// the added timestamp are never touched by metadata updates.
	UpdateVideoMetadata(ctx context.Context, id int64, video model.Video) error
	UpdateVideoState(ctx context.Context, id int64, state VideoState) error
	DeleteVideo(ctx context.Context, id int64) error
}

// LibraryStats summarizes what the library currently tracks
type LibraryStats struct {
	ShowCount           int64 `json:"showCount"`
	MovieCount          int64 `json:"movieCount"`
	EpisodeCount        int64 `json:"episodeCount"`
	WatchedEpisodeCount int64 `json:"watchedEpisodeCount"`
	VideoCount          int64 `json:"videoCount"`
	FeedVideoCount      int64 `json:"feedVideoCount"`
}

type StatisticsStorage interface {
	GetLibraryStats(ctx context.Context) (*LibraryStats, error)
}
