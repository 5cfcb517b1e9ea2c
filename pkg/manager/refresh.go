package manager

import (
	"context"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jermspeaks/slowtube/pkg/logger"
	"github.com/jermspeaks/slowtube/pkg/pacer"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/model"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/table"
)

// RefreshShow re-fetches metadata and episodes for one stored show and
// reconciles them into storage. A missing local show surfaces as
// storage.ErrNotFound; upstream failures come back inside the result so
// batch callers can keep going.
func (m MediaManager) RefreshShow(ctx context.Context, id int64) (RefreshResult, error) {
	log := logger.FromCtx(ctx)

	show, err := m.storage.GetShow(ctx, table.Show.ID.EQ(sqlite.Int64(id)))
	if err != nil {
		return RefreshResult{ShowID: id, Error: err.Error()}, err
	}

	result := RefreshResult{ShowID: id, Title: show.Title}

	fetched, err := m.FetchShow(ctx, int64(show.TmdbID))
	if err != nil {
		log.Errorw("failed to refresh show metadata", "show", id, "error", err)
		result.Error = err.Error()
		return result, nil
	}

	if err := m.storage.UpdateShowMetadata(ctx, id, fetched); err != nil {
		result.Error = err.Error()
		return result, nil
	}

	episodes, err := m.FetchEpisodes(ctx, int64(show.TmdbID))
	if err != nil {
		log.Errorw("failed to fetch episodes", "show", id, "error", err)
		result.Error = err.Error()
		return result, nil
	}

	reconciled, err := m.ReconcileEpisodes(ctx, id, episodes)
	if err != nil {
		result.Error = err.Error()
		return result, nil
	}

	if err := m.storage.UpdateShowRefreshedAt(ctx, id, time.Now().UTC()); err != nil {
		log.Warnw("failed to record refresh time", "show", id, "error", err)
	}

	result.Success = true
	result.NewEpisodes = reconciled.Created
	result.UpdatedEpisodes = reconciled.Updated
	log.Infow("refreshed show", "show", id, "title", show.Title, "created", reconciled.Created, "updated", reconciled.Updated)
	return result, nil
}

// RefreshAllShows refreshes every stored show sequentially with a fixed
// inter-show delay. One show's failure never aborts the batch.
func (m MediaManager) RefreshAllShows(ctx context.Context, includeArchived bool) (RefreshAllResult, error) {
	var shows []*model.Show
	var err error
	if includeArchived {
		shows, err = m.storage.ListShows(ctx)
	} else {
		shows, err = m.storage.ListShows(ctx, table.Show.Archived.EQ(sqlite.Bool(false)))
	}
	if err != nil {
		return RefreshAllResult{}, err
	}

	summary := RefreshAllResult{
		Total:   len(shows),
		Results: make([]RefreshResult, 0, len(shows)),
	}

	err = pacer.Each(ctx, shows, m.pacing.ShowDelay, func(ctx context.Context, _ int, show *model.Show) error {
		result, err := m.RefreshShow(ctx, int64(show.ID))
		summary.Results = append(summary.Results, result)
		if result.Success {
			summary.Successful++
		} else {
			summary.Failed++
		}
		return err
	}, func(i int, err error) {
		log := logger.FromCtx(ctx)
		log.Errorw("failed to refresh show", "show", shows[i].ID, "error", err)
	})
	if err != nil {
		return summary, err
	}

	return summary, nil
}
