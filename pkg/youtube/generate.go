package youtube

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_youtube_client.go github.com/jermspeaks/slowtube/pkg/youtube ClientInterface,CredentialProvider
