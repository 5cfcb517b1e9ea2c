package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jermspeaks/slowtube/pkg/storage"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/model"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/table"
)

// CreateVideo stores a video with its initial triage state. Duplicate
// platform ids surface as storage.ErrUniqueConstraint.
func (s SQLite) CreateVideo(ctx context.Context, video model.Video, initialState storage.VideoState) (int64, error) {
	if err := (storage.Video{Video: video}).Machine().ToState(initialState); err != nil {
		return 0, err
	}
	video.State = string(initialState)

	stmt := table.Video.
		INSERT(table.Video.MutableColumns).
		MODEL(video).
		RETURNING(table.Video.ID)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		if errors.Is(err, storage.ErrUniqueConstraint) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to create video: %w", err)
	}

	return result.LastInsertId()
}

// GetVideo gets a video for the given where
func (s SQLite) GetVideo(ctx context.Context, where sqlite.BoolExpression) (*model.Video, error) {
	stmt := table.Video.
		SELECT(table.Video.AllColumns).
		FROM(table.Video).
		WHERE(where)

	var video model.Video
	err := stmt.QueryContext(ctx, s.db, &video)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	return &video, nil
}

// ListVideos lists stored videos matching the optional where expressions,
// newest platform publish date first
func (s SQLite) ListVideos(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Video, error) {
	stmt := table.Video.
		SELECT(table.Video.AllColumns).
		FROM(table.Video).
		ORDER_BY(table.Video.PublishedAt.DESC())

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}

	videos := make([]*model.Video, 0)
	err := stmt.QueryContext(ctx, s.db, &videos)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	return videos, nil
}

// ListVideosByState lists all videos in a given triage state
func (s SQLite) ListVideosByState(ctx context.Context, state storage.VideoState) ([]*model.Video, error) {
	return s.ListVideos(ctx, table.Video.State.EQ(sqlite.String(string(state))))
}

// UpdateVideoMetadata replaces descriptive fields of a video. The triage
// state and added timestamp are deliberately not part of the update.
func (s SQLite) UpdateVideoMetadata(ctx context.Context, id int64, video model.Video) error {
	stmt := table.Video.
		UPDATE().
		SET(
			table.Video.Title.SET(sqlite.String(video.Title)),
			table.Video.Description.SET(stringOrNull(video.Description)),
			table.Video.Channel.SET(stringOrNull(video.Channel)),
			table.Video.DurationSeconds.SET(intOrNull(video.DurationSeconds)),
			table.Video.ThumbnailURL.SET(stringOrNull(video.ThumbnailURL)),
			table.Video.PublishedAt.SET(timestampOrNull(video.PublishedAt)),
		).
		WHERE(table.Video.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update video metadata: %w", err)
	}

	return nil
}

// UpdateVideoState transitions a video to a new triage state, validating the
// transition against the video state machine
func (s SQLite) UpdateVideoState(ctx context.Context, id int64, state storage.VideoState) error {
	video, err := s.GetVideo(ctx, table.Video.ID.EQ(sqlite.Int64(id)))
	if err != nil {
		return err
	}

	if err := (storage.Video{Video: *video}).Machine().ToState(state); err != nil {
		return fmt.Errorf("cannot move video from %q to %q: %w", video.State, state, err)
	}

	stmt := table.Video.
		UPDATE().
		SET(table.Video.State.SET(sqlite.String(string(state)))).
		WHERE(table.Video.ID.EQ(sqlite.Int64(id)))

	_, err = s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update video state: %w", err)
	}

	return nil
}

// DeleteVideo removes a video by id
func (s SQLite) DeleteVideo(ctx context.Context, id int64) error {
	stmt := table.Video.
		DELETE().
		WHERE(table.Video.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	return nil
}
