package manager

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jermspeaks/slowtube/pkg/storage"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/model"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/table"
	"github.com/jermspeaks/slowtube/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func expectShowUpstream(fixture testFixture, tmdbID int64, title string, episodes int) {
	fixture.tmdb.EXPECT().GetSeriesDetails(gomock.Any(), tmdbID).Return(&tmdb.SeriesDetails{
		ID:              tmdbID,
		Name:            title,
		Status:          ptr("Returning Series"),
		NumberOfSeasons: 1,
	}, nil).AnyTimes()

	seasonEpisodes := make([]tmdb.EpisodeDetails, 0, episodes)
	for episode := 1; episode <= episodes; episode++ {
		seasonEpisodes = append(seasonEpisodes, tmdb.EpisodeDetails{
			SeasonNumber:  1,
			EpisodeNumber: int32(episode),
		})
	}
	fixture.tmdb.EXPECT().GetSeasonDetails(gomock.Any(), tmdbID, int32(1)).Return(&tmdb.SeasonDetails{
		SeasonNumber: 1,
		Episodes:     seasonEpisodes,
	}, nil).AnyTimes()
}

func TestRefreshShow(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	showID, err := fixture.storage.CreateShow(ctx, model.Show{TmdbID: 100, Title: "Old Title"})
	require.NoError(t, err)

	expectShowUpstream(fixture, 100, "New Title", 2)

	result, err := fixture.manager.RefreshShow(ctx, showID)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.NewEpisodes)
	assert.Equal(t, 0, result.UpdatedEpisodes)

	show, err := fixture.storage.GetShow(ctx, table.Show.ID.EQ(sqlite.Int64(showID)))
	require.NoError(t, err)
	assert.Equal(t, "New Title", show.Title)
	assert.Equal(t, ptr("Returning Series"), show.Status)
	assert.NotNil(t, show.LastRefreshedAt)
}

func TestRefreshShow_MissingLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	_, err := fixture.manager.RefreshShow(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRefreshShow_UpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	showID, err := fixture.storage.CreateShow(ctx, model.Show{TmdbID: 100, Title: "A Show"})
	require.NoError(t, err)

	fixture.tmdb.EXPECT().GetSeriesDetails(gomock.Any(), int64(100)).Return(nil, &tmdb.Error{StatusCode: http.StatusInternalServerError}).AnyTimes()

	result, err := fixture.manager.RefreshShow(ctx, showID)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestRefreshAllShows_FailureIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	_, err := fixture.storage.CreateShow(ctx, model.Show{TmdbID: 100, Title: "Healthy"})
	require.NoError(t, err)
	_, err = fixture.storage.CreateShow(ctx, model.Show{TmdbID: 200, Title: "Broken"})
	require.NoError(t, err)

	expectShowUpstream(fixture, 100, "Healthy", 1)
	fixture.tmdb.EXPECT().GetSeriesDetails(gomock.Any(), int64(200)).Return(nil, &tmdb.Error{StatusCode: http.StatusInternalServerError}).AnyTimes()

	summary, err := fixture.manager.RefreshAllShows(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Successful)
	assert.Equal(t, 1, summary.Failed)
}

func TestRefreshAllShows_ArchivedFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	_, err := fixture.storage.CreateShow(ctx, model.Show{TmdbID: 100, Title: "Active"})
	require.NoError(t, err)
	archivedID, err := fixture.storage.CreateShow(ctx, model.Show{TmdbID: 200, Title: "Retired"})
	require.NoError(t, err)
	require.NoError(t, fixture.storage.UpdateShowArchived(ctx, archivedID, true))

	expectShowUpstream(fixture, 100, "Active", 1)

	summary, err := fixture.manager.RefreshAllShows(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)

	expectShowUpstream(fixture, 200, "Retired", 1)

	summary, err = fixture.manager.RefreshAllShows(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
}
