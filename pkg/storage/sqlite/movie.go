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

// CreateMovie stores a movie in the database. Duplicate library ids surface
// as storage.ErrUniqueConstraint.
func (s SQLite) CreateMovie(ctx context.Context, movie model.Movie) (int64, error) {
	stmt := table.Movie.
		INSERT(table.Movie.MutableColumns).
		MODEL(movie).
		RETURNING(table.Movie.ID)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		if errors.Is(err, storage.ErrUniqueConstraint) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to create movie: %w", err)
	}

	return result.LastInsertId()
}

// GetMovie gets a movie for the given where
func (s SQLite) GetMovie(ctx context.Context, where sqlite.BoolExpression) (*model.Movie, error) {
	stmt := table.Movie.
		SELECT(table.Movie.AllColumns).
		FROM(table.Movie).
		WHERE(where)

	var movie model.Movie
	err := stmt.QueryContext(ctx, s.db, &movie)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	return &movie, nil
}

// ListMovies lists stored movies matching the optional where expressions
func (s SQLite) ListMovies(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Movie, error) {
	stmt := table.Movie.
		SELECT(table.Movie.AllColumns).
		FROM(table.Movie).
		ORDER_BY(table.Movie.Title.ASC())

	if len(where) > 0 {
		stmt = stmt.WHERE(sqlite.AND(where...))
	}

	movies := make([]*model.Movie, 0)
	err := stmt.QueryContext(ctx, s.db, &movies)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	return movies, nil
}

// UpdateMovieSavedAt sets when the movie was saved by the user
func (s SQLite) UpdateMovieSavedAt(ctx context.Context, id int64, savedAt time.Time) error {
	stmt := table.Movie.
		UPDATE().
		SET(table.Movie.SavedAt.SET(timestampLiteral(savedAt))).
		WHERE(table.Movie.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update movie saved at: %w", err)
	}

	return nil
}

// DeleteMovie removes a movie by id
func (s SQLite) DeleteMovie(ctx context.Context, id int64) error {
	stmt := table.Movie.
		DELETE().
		WHERE(table.Movie.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	return nil
}
