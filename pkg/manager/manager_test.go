package manager

import (
	"context"
	"testing"

	"github.com/jermspeaks/slowtube/pkg/storage"
	mediaSqlite "github.com/jermspeaks/slowtube/pkg/storage/sqlite"
	tmdbMocks "github.com/jermspeaks/slowtube/pkg/tmdb/mocks"
	youtubeMocks "github.com/jermspeaks/slowtube/pkg/youtube/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// staticCreds always hands out the same access token
type staticCreds string

func (s staticCreds) Token(_ context.Context) (string, error) {
	return string(s), nil
}

// failingCreds always fails with the configured error
type failingCreds struct {
	err error
}

func (f failingCreds) Token(_ context.Context) (string, error) {
	return "", f.err
}

type testFixture struct {
	manager MediaManager
	tmdb    *tmdbMocks.MockClientInterface
	youtube *youtubeMocks.MockClientInterface
	storage storage.Storage
}

// newTestFixture wires a manager against an in-memory store and mocked
// upstream clients, with all pacing delays removed
func newTestFixture(t *testing.T, ctrl *gomock.Controller) testFixture {
	t.Helper()

	store, err := mediaSqlite.New(":memory:")
	require.NoError(t, err)

	tmdbMock := tmdbMocks.NewMockClientInterface(ctrl)
	youtubeMock := youtubeMocks.NewMockClientInterface(ctrl)

	m := New(tmdbMock, youtubeMock, staticCreds("test-token"), store,
		WithPacing(Pacing{ProgressEvery: 10, PlaylistScanMax: 10}))

	return testFixture{
		manager: m,
		tmdb:    tmdbMock,
		youtube: youtubeMock,
		storage: store,
	}
}

func ptr[T any](v T) *T {
	return &v
}
