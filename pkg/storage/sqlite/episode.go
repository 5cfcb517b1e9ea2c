package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jermspeaks/slowtube/pkg/storage"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/model"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/table"
)

// CreateEpisode stores an episode. Inserting an episode whose
// (show, season, episode) identity already exists surfaces as
// storage.ErrUniqueConstraint.
func (s SQLite) CreateEpisode(ctx context.Context, episode model.Episode) (int64, error) {
	stmt := table.Episode.
		INSERT(table.Episode.MutableColumns).
		MODEL(episode).
		RETURNING(table.Episode.ID)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		if errors.Is(err, storage.ErrUniqueConstraint) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to create episode: %w", err)
	}

	return result.LastInsertId()
}

// GetEpisode gets an episode for the given where
func (s SQLite) GetEpisode(ctx context.Context, where sqlite.BoolExpression) (*model.Episode, error) {
	stmt := table.Episode.
		SELECT(table.Episode.AllColumns).
		FROM(table.Episode).
		WHERE(where)

	var episode model.Episode
	err := stmt.QueryContext(ctx, s.db, &episode)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get episode: %w", err)
	}

	return &episode, nil
}

// ListEpisodes lists episodes matching the optional where expressions ordered
// by season then episode number
func (s SQLite) ListEpisodes(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Episode, error) {
	stmt := table.Episode.
		SELECT(table.Episode.AllColumns).
		FROM(table.Episode).
		ORDER_BY(table.Episode.SeasonNumber.ASC(), table.Episode.EpisodeNumber.ASC())

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}

	episodes := make([]*model.Episode, 0)
	err := stmt.QueryContext(ctx, s.db, &episodes)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}

	return episodes, nil
}

// UpdateEpisodeMetadata replaces descriptive fields of an episode. The
// watched flag and timestamp are deliberately not part of the update.
func (s SQLite) UpdateEpisodeMetadata(ctx context.Context, id int64, episode model.Episode) error {
	stmt := table.Episode.
		UPDATE().
		SET(
			table.Episode.TmdbID.SET(intOrNull(episode.TmdbID)),
			table.Episode.Title.SET(stringOrNull(episode.Title)),
			table.Episode.Overview.SET(stringOrNull(episode.Overview)),
			table.Episode.StillPath.SET(stringOrNull(episode.StillPath)),
			table.Episode.AirDate.SET(timestampOrNull(episode.AirDate)),
			table.Episode.Runtime.SET(intOrNull(episode.Runtime)),
		).
		WHERE(table.Episode.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update episode metadata: %w", err)
	}

	return nil
}

// UpdateEpisodeWatched flips the watched flag for an episode
func (s SQLite) UpdateEpisodeWatched(ctx context.Context, id int64, watched bool, watchedAt *time.Time) error {
	stmt := table.Episode.
		UPDATE().
		SET(
			table.Episode.Watched.SET(sqlite.Bool(watched)),
			table.Episode.WatchedAt.SET(timestampOrNull(watchedAt)),
		).
		WHERE(table.Episode.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update episode watched: %w", err)
	}

	return nil
}

// DeleteEpisode removes an episode by id
func (s SQLite) DeleteEpisode(ctx context.Context, id int64) error {
	stmt := table.Episode.
		DELETE().
		WHERE(table.Episode.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete episode: %w", err)
	}

	return nil
}
