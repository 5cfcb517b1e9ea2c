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

// CreateShow stores a show in the database. Duplicate library ids surface as
// storage.ErrUniqueConstraint.
func (s SQLite) CreateShow(ctx context.Context, show model.Show) (int64, error) {
	stmt := table.Show.
		INSERT(table.Show.MutableColumns).
		MODEL(show).
		RETURNING(table.Show.ID)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		if errors.Is(err, storage.ErrUniqueConstraint) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to create show: %w", err)
	}

	return result.LastInsertId()
}

// GetShow gets a show for the given where
func (s SQLite) GetShow(ctx context.Context, where sqlite.BoolExpression) (*model.Show, error) {
	stmt := table.Show.
		SELECT(table.Show.AllColumns).
		FROM(table.Show).
		WHERE(where)

	var show model.Show
	err := stmt.QueryContext(ctx, s.db, &show)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get show: %w", err)
	}

	return &show, nil
}

// ListShows lists stored shows matching the optional where expressions
func (s SQLite) ListShows(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Show, error) {
	stmt := table.Show.
		SELECT(table.Show.AllColumns).
		FROM(table.Show).
		ORDER_BY(table.Show.Title.ASC())

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}

	shows := make([]*model.Show, 0)
	err := stmt.QueryContext(ctx, s.db, &shows)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	return shows, nil
}

// UpdateShowMetadata replaces the descriptive fields of a show. SavedAt is
// left untouched.
func (s SQLite) UpdateShowMetadata(ctx context.Context, id int64, show model.Show) error {
	stmt := table.Show.
		UPDATE().
		SET(
			table.Show.Title.SET(sqlite.String(show.Title)),
			table.Show.Overview.SET(stringOrNull(show.Overview)),
			table.Show.PosterPath.SET(stringOrNull(show.PosterPath)),
			table.Show.FirstAirDate.SET(timestampOrNull(show.FirstAirDate)),
			table.Show.Status.SET(stringOrNull(show.Status)),
			table.Show.SeasonCount.SET(intOrNull(show.SeasonCount)),
			table.Show.EpisodeCount.SET(intOrNull(show.EpisodeCount)),
		).
		WHERE(table.Show.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update show metadata: %w", err)
	}

	return nil
}

// UpdateShowSavedAt sets when the show was saved by the user
func (s SQLite) UpdateShowSavedAt(ctx context.Context, id int64, savedAt time.Time) error {
	stmt := table.Show.
		UPDATE().
		SET(table.Show.SavedAt.SET(timestampLiteral(savedAt))).
		WHERE(table.Show.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update show saved at: %w", err)
	}

	return nil
}

// UpdateShowRefreshedAt records when the show's metadata was last refreshed
func (s SQLite) UpdateShowRefreshedAt(ctx context.Context, id int64, refreshedAt time.Time) error {
	stmt := table.Show.
		UPDATE().
		SET(table.Show.LastRefreshedAt.SET(timestampLiteral(refreshedAt))).
		WHERE(table.Show.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update show refreshed at: %w", err)
	}

	return nil
}

// UpdateShowArchived flips whether the show is excluded from full refreshes
func (s SQLite) UpdateShowArchived(ctx context.Context, id int64, archived bool) error {
	stmt := table.Show.
		UPDATE().
		SET(table.Show.Archived.SET(sqlite.Bool(archived))).
		WHERE(table.Show.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update show archived: %w", err)
	}

	return nil
}

// DeleteShow removes a show by id. Episodes cascade.
func (s SQLite) DeleteShow(ctx context.Context, id int64) error {
	stmt := table.Show.
		DELETE().
		WHERE(table.Show.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete show: %w", err)
	}

	return nil
}

// mattn/go-sqlite3 parses this layout back into time.Time on scan.
const sqliteTimeLayout = "2006-01-02 15:04:05.999999999-07:00"

func timestampLiteral(t time.Time) sqlite.TimestampExpression {
	return sqlite.TimestampExp(sqlite.String(t.UTC().Format(sqliteTimeLayout)))
}

func stringOrNull(s *string) sqlite.StringExpression {
	if s == nil {
		return sqlite.StringExp(sqlite.NULL)
	}
	return sqlite.String(*s)
}

func timestampOrNull(t *time.Time) sqlite.TimestampExpression {
	if t == nil {
		return sqlite.TimestampExp(sqlite.NULL)
	}
	return timestampLiteral(*t)
}

func intOrNull(i *int32) sqlite.IntegerExpression {
	if i == nil {
		return sqlite.IntExp(sqlite.NULL)
	}
	return sqlite.Int32(*i)
}
