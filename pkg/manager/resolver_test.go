package manager

import (
	"context"
	"net/http"
	"testing"

	"github.com/jermspeaks/slowtube/pkg/logger"
	"github.com/jermspeaks/slowtube/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func notFoundErr() error {
	return &tmdb.Error{StatusCode: http.StatusNotFound, Message: "not found"}
}

func TestResolveRef_CanonicalPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	fixture.tmdb.EXPECT().GetSeriesDetails(gomock.Any(), int64(550)).Return(nil, notFoundErr())
	fixture.tmdb.EXPECT().GetMovieDetails(gomock.Any(), int64(550)).Return(&tmdb.MovieDetails{ID: 550, Title: "Fight Club"}, nil)

	ref, err := fixture.manager.ResolveRef(ctx, "tmdb:550", RefKindUnknown)
	require.NoError(t, err)
	assert.Equal(t, CanonicalRef{TmdbID: 550, Kind: MediaKindMovie}, ref)
}

func TestResolveRef_BareDigitsProbesTvFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	fixture.tmdb.EXPECT().GetSeriesDetails(gomock.Any(), int64(1399)).Return(&tmdb.SeriesDetails{ID: 1399, Name: "Game of Thrones"}, nil)

	ref, err := fixture.manager.ResolveRef(ctx, "1399", RefKindUnknown)
	require.NoError(t, err)
	assert.Equal(t, CanonicalRef{TmdbID: 1399, Kind: MediaKindTV}, ref)
}

func TestResolveRef_BothNamespacesUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	fixture.tmdb.EXPECT().GetSeriesDetails(gomock.Any(), int64(999999)).Return(nil, notFoundErr())
	fixture.tmdb.EXPECT().GetMovieDetails(gomock.Any(), int64(999999)).Return(nil, notFoundErr())

	_, err := fixture.manager.ResolveRef(ctx, "999999", RefKindUnknown)
	assert.ErrorIs(t, err, ErrSkippedRef)
}

func TestResolveRef_UpstreamFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	fixture.tmdb.EXPECT().GetSeriesDetails(gomock.Any(), int64(42)).Return(nil, &tmdb.Error{StatusCode: http.StatusInternalServerError})

	_, err := fixture.manager.ResolveRef(ctx, "42", RefKindUnknown)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSkippedRef)
}

func TestResolveRef_ThirdPartyPrefersMovie(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)

	core, logs := observer.New(zap.WarnLevel)
	ctx := logger.WithCtx(context.Background(), zap.New(core).Sugar())

	fixture.tmdb.EXPECT().FindByExternalID(gomock.Any(), "tt0137523").Return(&tmdb.FindResults{
		MovieResults: []tmdb.SearchMovieResult{{ID: 550, Title: ptr("Fight Club")}},
		TvResults:    []tmdb.SearchTvResult{{ID: 4608, Name: ptr("Fight Club the Series")}},
	}, nil)

	ref, err := fixture.manager.ResolveRef(ctx, "tt0137523", RefKindUnknown)
	require.NoError(t, err)
	assert.Equal(t, CanonicalRef{TmdbID: 550, Kind: MediaKindMovie}, ref)

	warned := logs.FilterMessage("cross-reference matches both movie and tv, preferring movie").All()
	require.Len(t, warned, 1)
	assert.Equal(t, "tt0137523", warned[0].ContextMap()["ref"])
}

func TestResolveRef_ThirdPartyIsMemoized(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	fixture.tmdb.EXPECT().FindByExternalID(gomock.Any(), "tt0944947").Return(&tmdb.FindResults{
		TvResults: []tmdb.SearchTvResult{{ID: 1399, Name: ptr("Game of Thrones")}},
	}, nil).Times(1)

	first, err := fixture.manager.ResolveRef(ctx, "tt0944947", RefKindUnknown)
	require.NoError(t, err)

	second, err := fixture.manager.ResolveRef(ctx, "tt0944947", RefKindUnknown)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, CanonicalRef{TmdbID: 1399, Kind: MediaKindTV}, second)
}

func TestResolveRef_ThirdPartyNoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	fixture.tmdb.EXPECT().FindByExternalID(gomock.Any(), "tt0000001").Return(&tmdb.FindResults{}, nil)

	_, err := fixture.manager.ResolveRef(ctx, "tt0000001", RefKindUnknown)
	assert.ErrorIs(t, err, ErrSkippedRef)
}

func TestResolveRef_ExpectedKindSkipsSniffing(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	// the raw value would not match the third-party pattern on its own
	fixture.tmdb.EXPECT().FindByExternalID(gomock.Any(), "some-external-id").Return(&tmdb.FindResults{
		MovieResults: []tmdb.SearchMovieResult{{ID: 603, Title: ptr("The Matrix")}},
	}, nil)

	ref, err := fixture.manager.ResolveRef(ctx, "some-external-id", RefKindThirdParty)
	require.NoError(t, err)
	assert.Equal(t, CanonicalRef{TmdbID: 603, Kind: MediaKindMovie}, ref)
}

func TestResolveRef_UnsupportedFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	fixture := newTestFixture(t, ctrl)
	ctx := context.Background()

	for _, raw := range []string{"", "banana", "tt", "tmdb:", "12a34"} {
		_, err := fixture.manager.ResolveRef(ctx, raw, RefKindUnknown)
		assert.ErrorIs(t, err, ErrSkippedRef, "raw %q", raw)
	}
}
