package manager

import (
	"context"
	"fmt"
	"time"

	"github.com/jermspeaks/slowtube/pkg/logger"
	"github.com/jermspeaks/slowtube/pkg/pacer"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/model"
	"github.com/jermspeaks/slowtube/pkg/tmdb"
)

// FetchMovie retrieves movie details and normalizes them into a local record
func (m MediaManager) FetchMovie(ctx context.Context, tmdbID int64) (model.Movie, error) {
	details, err := m.tmdb.GetMovieDetails(ctx, tmdbID)
	if err != nil {
		return model.Movie{}, fmt.Errorf("failed to fetch movie %d: %w", tmdbID, err)
	}

	return model.Movie{
		TmdbID:      int32(details.ID),
		Title:       details.Title,
		Overview:    details.Overview,
		PosterPath:  details.PosterPath,
		ReleaseDate: parseReleaseDate(details.ReleaseDate),
		Runtime:     details.Runtime,
	}, nil
}

// FetchShow retrieves series details and normalizes them into a local record
func (m MediaManager) FetchShow(ctx context.Context, tmdbID int64) (model.Show, error) {
	details, err := m.tmdb.GetSeriesDetails(ctx, tmdbID)
	if err != nil {
		return model.Show{}, fmt.Errorf("failed to fetch show %d: %w", tmdbID, err)
	}

	seasons := details.NumberOfSeasons
	return model.Show{
		TmdbID:       int32(details.ID),
		Title:        details.Name,
		Overview:     details.Overview,
		PosterPath:   details.PosterPath,
		FirstAirDate: parseReleaseDate(details.FirstAirDate),
		Status:       details.Status,
		SeasonCount:  &seasons,
		EpisodeCount: details.NumberOfEpisodes,
	}, nil
}

// FetchEpisodes retrieves every episode of a show season by season. Seasons
// are fetched sequentially with a fixed pacing delay; a failed season is
// logged and omitted rather than failing the whole call.
func (m MediaManager) FetchEpisodes(ctx context.Context, tmdbID int64) ([]model.Episode, error) {
	log := logger.FromCtx(ctx)

	details, err := m.tmdb.GetSeriesDetails(ctx, tmdbID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch show %d: %w", tmdbID, err)
	}

	seasons := make([]int32, 0, details.NumberOfSeasons)
	for n := int32(1); n <= details.NumberOfSeasons; n++ {
		seasons = append(seasons, n)
	}

	var episodes []model.Episode
	err = pacer.Each(ctx, seasons, m.pacing.SeasonDelay, func(ctx context.Context, _ int, season int32) error {
		seasonDetails, err := m.tmdb.GetSeasonDetails(ctx, tmdbID, season)
		if err != nil {
			return fmt.Errorf("failed to fetch season %d: %w", season, err)
		}

		for _, e := range seasonDetails.Episodes {
			episodes = append(episodes, model.Episode{
				SeasonNumber:  e.SeasonNumber,
				EpisodeNumber: e.EpisodeNumber,
				Title:         e.Name,
				Overview:      e.Overview,
				StillPath:     e.StillPath,
				AirDate:       parseReleaseDate(e.AirDate),
				Runtime:       e.Runtime,
			})
		}
		return nil
	}, func(season int, err error) {
		log.Warnw("skipping season", "show", tmdbID, "season", seasons[season], "error", err)
	})
	if err != nil {
		return nil, err
	}

	return episodes, nil
}

func parseReleaseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(tmdb.ReleaseDateFormat, *s)
	if err != nil {
		return nil
	}
	return &t
}
