package manager

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/jermspeaks/slowtube/pkg/feed"
	"github.com/jermspeaks/slowtube/pkg/logger"
	"github.com/jermspeaks/slowtube/pkg/pacer"
	"github.com/jermspeaks/slowtube/pkg/storage"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/model"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/table"
)

// ImportBatch walks a list of saved-media entries sequentially with a fixed
// inter-entry delay, resolving each reference and importing anything not yet
// tracked. A single entry can skip or fail without affecting the rest.
func (m MediaManager) ImportBatch(ctx context.Context, entries []feed.SavedEntry, expected RefKind) (ImportSummary, error) {
	summary := ImportSummary{
		RunID:   uuid.NewString(),
		Total:   len(entries),
		Results: make([]EntryResult, 0, len(entries)),
	}
	log := logger.FromCtx(ctx).With("run", summary.RunID)

	err := pacer.Each(ctx, entries, m.pacing.EntryDelay, func(ctx context.Context, i int, entry feed.SavedEntry) error {
		if m.pacing.ProgressEvery > 0 && i > 0 && i%m.pacing.ProgressEvery == 0 {
			log.Infow("import progress", "processed", i, "total", summary.Total)
		}

		result := m.importEntry(ctx, entry, expected)
		summary.Results = append(summary.Results, result)

		switch result.Status {
		case EntryStatusImported:
			summary.Imported++
			if result.Kind == MediaKindTV {
				summary.TvShows++
			} else {
				summary.Movies++
			}
		case EntryStatusSkipped:
			summary.Skipped++
		case EntryStatusFailed:
			summary.Errors++
		}
		return nil
	}, nil)
	if err != nil {
		return summary, err
	}

	log.Infow("import finished", "total", summary.Total, "imported", summary.Imported, "skipped", summary.Skipped, "errors", summary.Errors)
	return summary, nil
}

func (m MediaManager) importEntry(ctx context.Context, entry feed.SavedEntry, expected RefKind) EntryResult {
	log := logger.FromCtx(ctx)
	result := EntryResult{Ref: entry.ExternalRef}

	ref, err := m.ResolveRef(ctx, entry.ExternalRef, expected)
	if err != nil {
		if errors.Is(err, ErrSkippedRef) {
			result.Status = EntryStatusSkipped
			result.Reason = err.Error()
			return result
		}
		log.Errorw("failed to resolve entry", "ref", entry.ExternalRef, "error", err)
		result.Status = EntryStatusFailed
		result.Reason = err.Error()
		return result
	}

	result.Kind = ref.Kind
	savedAt := entry.SavedAt()

	switch ref.Kind {
	case MediaKindTV:
		result.Status = m.importShow(ctx, ref.TmdbID, savedAt, &result)
	default:
		result.Status = m.importMovie(ctx, ref.TmdbID, savedAt, &result)
	}
	return result
}

func (m MediaManager) importShow(ctx context.Context, tmdbID int64, savedAt time.Time, result *EntryResult) EntryStatus {
	log := logger.FromCtx(ctx)

	existing, err := m.storage.GetShow(ctx, table.Show.TmdbID.EQ(sqlite.Int64(tmdbID)))
	if err == nil {
		if err := m.bumpShowSavedAt(ctx, existing, savedAt); err != nil {
			result.Reason = err.Error()
			return EntryStatusFailed
		}
		log.Debugw("show already exists", "tmdbID", tmdbID)
		return EntryStatusExists
	}
	if !errors.Is(err, storage.ErrNotFound) {
		result.Reason = err.Error()
		return EntryStatusFailed
	}

	show, err := m.FetchShow(ctx, tmdbID)
	if err != nil {
		result.Reason = err.Error()
		return EntryStatusFailed
	}
	show.SavedAt = &savedAt

	id, err := m.storage.CreateShow(ctx, show)
	if err != nil {
		if errors.Is(err, storage.ErrUniqueConstraint) {
			return EntryStatusExists
		}
		result.Reason = err.Error()
		return EntryStatusFailed
	}

	// best effort: episode failures never undo the show creation
	episodes, err := m.FetchEpisodes(ctx, tmdbID)
	if err != nil {
		log.Warnw("imported show without episodes", "tmdbID", tmdbID, "error", err)
		return EntryStatusImported
	}
	if _, err := m.ReconcileEpisodes(ctx, id, episodes); err != nil {
		log.Warnw("failed to store episodes", "tmdbID", tmdbID, "error", err)
	}

	return EntryStatusImported
}

func (m MediaManager) importMovie(ctx context.Context, tmdbID int64, savedAt time.Time, result *EntryResult) EntryStatus {
	log := logger.FromCtx(ctx)

	existing, err := m.storage.GetMovie(ctx, table.Movie.TmdbID.EQ(sqlite.Int64(tmdbID)))
	if err == nil {
		if err := m.bumpMovieSavedAt(ctx, existing, savedAt); err != nil {
			result.Reason = err.Error()
			return EntryStatusFailed
		}
		log.Debugw("movie already exists", "tmdbID", tmdbID)
		return EntryStatusExists
	}
	if !errors.Is(err, storage.ErrNotFound) {
		result.Reason = err.Error()
		return EntryStatusFailed
	}

	movie, err := m.FetchMovie(ctx, tmdbID)
	if err != nil {
		result.Reason = err.Error()
		return EntryStatusFailed
	}
	movie.SavedAt = &savedAt

	if _, err := m.storage.CreateMovie(ctx, movie); err != nil {
		if errors.Is(err, storage.ErrUniqueConstraint) {
			return EntryStatusExists
		}
		result.Reason = err.Error()
		return EntryStatusFailed
	}

	return EntryStatusImported
}

// bumpShowSavedAt overwrites the saved timestamp only when the new one is
// strictly later
func (m MediaManager) bumpShowSavedAt(ctx context.Context, show *model.Show, savedAt time.Time) error {
	if show.SavedAt != nil && !savedAt.After(*show.SavedAt) {
		return nil
	}
	return m.storage.UpdateShowSavedAt(ctx, int64(show.ID), savedAt)
}

func (m MediaManager) bumpMovieSavedAt(ctx context.Context, movie *model.Movie, savedAt time.Time) error {
	if movie.SavedAt != nil && !savedAt.After(*movie.SavedAt) {
		return nil
	}
	return m.storage.UpdateMovieSavedAt(ctx, int64(movie.ID), savedAt)
}

// ImportFromCSV imports a Letterboxd watchlist by title+year matching against
// the metadata API's movie search. Titles with no acceptable match land in
// NotFound and count as skipped, not as errors.
func (m MediaManager) ImportFromCSV(ctx context.Context, entries []feed.LetterboxdEntry) (CSVImportSummary, error) {
	log := logger.FromCtx(ctx)

	summary := CSVImportSummary{
		RunID:    uuid.NewString(),
		Total:    len(entries),
		NotFound: make([]string, 0),
	}

	err := pacer.Each(ctx, entries, m.pacing.EntryDelay, func(ctx context.Context, i int, entry feed.LetterboxdEntry) error {
		if m.pacing.ProgressEvery > 0 && i > 0 && i%m.pacing.ProgressEvery == 0 {
			log.Infow("csv import progress", "processed", i, "total", summary.Total)
		}

		match, err := m.matchMovieByTitle(ctx, entry.Name, entry.Year)
		if err != nil {
			if errors.Is(err, ErrSkippedRef) {
				summary.Skipped++
				summary.NotFound = append(summary.NotFound, entry.Name)
				return nil
			}
			summary.Errors++
			return fmt.Errorf("failed to match %q: %w", entry.Name, err)
		}

		var result EntryResult
		status := m.importMovie(ctx, match, entry.Date, &result)
		switch status {
		case EntryStatusImported:
			summary.Imported++
		case EntryStatusExists:
			summary.Skipped++
		case EntryStatusFailed:
			summary.Errors++
		}
		return nil
	}, func(i int, err error) {
		log.Errorw("csv import entry failed", "title", entries[i].Name, "error", err)
	})
	if err != nil {
		return summary, err
	}

	return summary, nil
}

// matchMovieByTitle searches the metadata API and picks the first result
// whose release year matches the entry's. The search ranking already orders
// candidates by relevance. No year match resolves to ErrSkippedRef.
func (m MediaManager) matchMovieByTitle(ctx context.Context, title string, year int) (int64, error) {
	res, err := m.tmdb.SearchMovie(ctx, title)
	if err != nil {
		return 0, err
	}

	for _, candidate := range res.Results {
		if year > 0 && releaseYear(candidate.ReleaseDate) != year {
			continue
		}
		return candidate.ID, nil
	}

	return 0, fmt.Errorf("no result for %q (%d): %w", title, year, ErrSkippedRef)
}

// releaseYear reads the year out of an upstream release date string
func releaseYear(date *string) int {
	if date == nil || len(*date) < 4 {
		return 0
	}
	var year int
	if _, err := fmt.Sscanf(strings.TrimSpace(*date)[:4], "%d", &year); err != nil {
		return 0
	}
	return year
}
