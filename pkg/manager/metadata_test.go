package manager

import (
	"context"
	"net/http"
	"testing"

	"github.com/jermspeaks/slowtube/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFetchMovie(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	fixture.tmdb.EXPECT().GetMovieDetails(gomock.Any(), int64(550)).Return(&tmdb.MovieDetails{
		ID:          550,
		Title:       "Fight Club",
		Overview:    ptr("an overview"),
		ReleaseDate: ptr("1999-10-15"),
		Runtime:     ptr(int32(139)),
	}, nil)

	movie, err := fixture.manager.FetchMovie(ctx, 550)
	require.NoError(t, err)
	assert.Equal(t, int32(550), movie.TmdbID)
	assert.Equal(t, "Fight Club", movie.Title)
	require.NotNil(t, movie.ReleaseDate)
	assert.Equal(t, 1999, movie.ReleaseDate.Year())
	assert.Equal(t, int32(139), *movie.Runtime)
}

func TestFetchShow(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	fixture.tmdb.EXPECT().GetSeriesDetails(gomock.Any(), int64(1399)).Return(&tmdb.SeriesDetails{
		ID:               1399,
		Name:             "Game of Thrones",
		FirstAirDate:     ptr("2011-04-17"),
		Status:           ptr("Ended"),
		NumberOfSeasons:  8,
		NumberOfEpisodes: ptr(int32(73)),
	}, nil)

	show, err := fixture.manager.FetchShow(ctx, 1399)
	require.NoError(t, err)
	assert.Equal(t, int32(1399), show.TmdbID)
	assert.Equal(t, "Game of Thrones", show.Title)
	assert.Equal(t, ptr("Ended"), show.Status)
	require.NotNil(t, show.SeasonCount)
	assert.Equal(t, int32(8), *show.SeasonCount)
	require.NotNil(t, show.EpisodeCount)
	assert.Equal(t, int32(73), *show.EpisodeCount)
}

func TestFetchEpisodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	fixture.tmdb.EXPECT().GetSeriesDetails(gomock.Any(), int64(100)).Return(&tmdb.SeriesDetails{
		ID:              100,
		Name:            "A Show",
		NumberOfSeasons: 2,
	}, nil)
	fixture.tmdb.EXPECT().GetSeasonDetails(gomock.Any(), int64(100), int32(1)).Return(&tmdb.SeasonDetails{
		SeasonNumber: 1,
		Episodes: []tmdb.EpisodeDetails{
			{SeasonNumber: 1, EpisodeNumber: 1, Name: ptr("Pilot"), AirDate: ptr("2020-01-01"), StillPath: ptr("/pilot.jpg")},
			{SeasonNumber: 1, EpisodeNumber: 2, Name: ptr("Second")},
		},
	}, nil)
	fixture.tmdb.EXPECT().GetSeasonDetails(gomock.Any(), int64(100), int32(2)).Return(&tmdb.SeasonDetails{
		SeasonNumber: 2,
		Episodes: []tmdb.EpisodeDetails{
			{SeasonNumber: 2, EpisodeNumber: 1, Name: ptr("Return")},
		},
	}, nil)

	episodes, err := fixture.manager.FetchEpisodes(ctx, 100)
	require.NoError(t, err)
	require.Len(t, episodes, 3)
	assert.Equal(t, "Pilot", *episodes[0].Title)
	assert.Equal(t, ptr("/pilot.jpg"), episodes[0].StillPath)
	assert.Equal(t, int32(2), episodes[2].SeasonNumber)
}

func TestFetchEpisodes_SkipsFailedSeason(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	fixture.tmdb.EXPECT().GetSeriesDetails(gomock.Any(), int64(100)).Return(&tmdb.SeriesDetails{
		ID:              100,
		Name:            "A Show",
		NumberOfSeasons: 2,
	}, nil)
	fixture.tmdb.EXPECT().GetSeasonDetails(gomock.Any(), int64(100), int32(1)).Return(nil, &tmdb.Error{StatusCode: http.StatusInternalServerError})
	fixture.tmdb.EXPECT().GetSeasonDetails(gomock.Any(), int64(100), int32(2)).Return(&tmdb.SeasonDetails{
		SeasonNumber: 2,
		Episodes: []tmdb.EpisodeDetails{
			{SeasonNumber: 2, EpisodeNumber: 1, Name: ptr("Survivor")},
		},
	}, nil)

	episodes, err := fixture.manager.FetchEpisodes(ctx, 100)
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, int32(2), episodes[0].SeasonNumber)
}
