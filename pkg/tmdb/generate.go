package tmdb

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_tmdb_client.go github.com/jermspeaks/slowtube/pkg/tmdb ClientInterface
