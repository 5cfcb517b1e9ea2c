package manager

import (
	"context"
	"errors"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jermspeaks/slowtube/pkg/logger"
	"github.com/jermspeaks/slowtube/pkg/storage"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/model"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/table"
)

type episodeKey struct {
	season  int32
	episode int32
}

// ReconcileEpisodes merges a freshly fetched episode list into a show's
// stored episodes. Existing episodes keep their watched state untouched; new
// ones are created unwatched. Episodes absent from the fetch are never
// deleted, so upstream renumbering cannot destroy watch history.
func (m MediaManager) ReconcileEpisodes(ctx context.Context, showID int64, fetched []model.Episode) (ReconcileResult, error) {
	log := logger.FromCtx(ctx)

	existing, err := m.storage.ListEpisodes(ctx, table.Episode.ShowID.EQ(sqlite.Int64(showID)))
	if err != nil {
		return ReconcileResult{}, err
	}

	known := make(map[episodeKey]*model.Episode, len(existing))
	for _, e := range existing {
		known[episodeKey{season: e.SeasonNumber, episode: e.EpisodeNumber}] = e
	}

	var result ReconcileResult
	for _, e := range fetched {
		e.ShowID = int32(showID)
		key := episodeKey{season: e.SeasonNumber, episode: e.EpisodeNumber}

		current, ok := known[key]
		if !ok {
			_, err := m.storage.CreateEpisode(ctx, e)
			if err != nil {
				// a concurrent refresh already created it
				if errors.Is(err, storage.ErrUniqueConstraint) {
					continue
				}
				log.Errorw("failed to create episode", "show", showID, "season", e.SeasonNumber, "episode", e.EpisodeNumber, "error", err)
				continue
			}
			result.Created++
			continue
		}

		if err := m.storage.UpdateEpisodeMetadata(ctx, int64(current.ID), e); err != nil {
			log.Errorw("failed to update episode", "show", showID, "season", e.SeasonNumber, "episode", e.EpisodeNumber, "error", err)
			continue
		}
		result.Updated++
	}

	return result, nil
}
