package telegram

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go -package=mocks

// Client resolves Bot API file ids into downloadable URLs.
type Client interface {
	FileURL(fileID string) (string, error)
}
