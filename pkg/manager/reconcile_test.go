package manager

import (
	"context"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/model"
	"github.com/jermspeaks/slowtube/pkg/storage/sqlite/schema/gen/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReconcileEpisodes_PreservesWatchedState(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	showID, err := fixture.storage.CreateShow(ctx, model.Show{TmdbID: 100, Title: "A Show"})
	require.NoError(t, err)

	episodeID, err := fixture.storage.CreateEpisode(ctx, model.Episode{
		ShowID:        int32(showID),
		SeasonNumber:  1,
		EpisodeNumber: 1,
		Title:         ptr("Pilot"),
	})
	require.NoError(t, err)

	watchedAt := time.Now().UTC().Truncate(time.Second)
	err = fixture.storage.UpdateEpisodeWatched(ctx, episodeID, true, &watchedAt)
	require.NoError(t, err)

	fetched := []model.Episode{
		{SeasonNumber: 1, EpisodeNumber: 1, Title: ptr("Pilot (remastered)"), Runtime: ptr(int32(42)), StillPath: ptr("/still1.jpg")},
		{SeasonNumber: 1, EpisodeNumber: 2, Title: ptr("Second")},
	}

	result, err := fixture.manager.ReconcileEpisodes(ctx, showID, fetched)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)

	updated, err := fixture.storage.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int64(episodeID)))
	require.NoError(t, err)
	assert.Equal(t, "Pilot (remastered)", *updated.Title)
	assert.Equal(t, ptr("/still1.jpg"), updated.StillPath)
	assert.True(t, updated.Watched)
	require.NotNil(t, updated.WatchedAt)

	created, err := fixture.storage.GetEpisode(ctx,
		table.Episode.ShowID.EQ(sqlite.Int64(showID)).
			AND(table.Episode.SeasonNumber.EQ(sqlite.Int32(1))).
			AND(table.Episode.EpisodeNumber.EQ(sqlite.Int32(2))))
	require.NoError(t, err)
	assert.False(t, created.Watched)
}

func TestReconcileEpisodes_NeverDeletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	showID, err := fixture.storage.CreateShow(ctx, model.Show{TmdbID: 100, Title: "A Show"})
	require.NoError(t, err)

	for episode := int32(1); episode <= 3; episode++ {
		_, err := fixture.storage.CreateEpisode(ctx, model.Episode{
			ShowID:        int32(showID),
			SeasonNumber:  1,
			EpisodeNumber: episode,
		})
		require.NoError(t, err)
	}

	// upstream dropped episodes 2 and 3
	fetched := []model.Episode{
		{SeasonNumber: 1, EpisodeNumber: 1, Title: ptr("Only survivor")},
	}

	result, err := fixture.manager.ReconcileEpisodes(ctx, showID, fetched)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)

	episodes, err := fixture.storage.ListEpisodes(ctx, table.Episode.ShowID.EQ(sqlite.Int64(showID)))
	require.NoError(t, err)
	assert.Len(t, episodes, 3)
}

func TestReconcileEpisodes_EmptyShow(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	showID, err := fixture.storage.CreateShow(ctx, model.Show{TmdbID: 100, Title: "A Show"})
	require.NoError(t, err)

	fetched := []model.Episode{
		{SeasonNumber: 1, EpisodeNumber: 1},
		{SeasonNumber: 1, EpisodeNumber: 2},
		{SeasonNumber: 2, EpisodeNumber: 1},
	}

	result, err := fixture.manager.ReconcileEpisodes(ctx, showID, fetched)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 0, result.Updated)
}
