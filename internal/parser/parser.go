package parser

import "github.com/orgball2608/inline-bot-layout/internal/domain"

//go:generate go run go.uber.org/mock/mockgen -source=parser.go -destination=mocks/mock.go -package=mocks

// Client turns a Bot API inline results feed into domain results. It builds
// media handles, so it must run on the UI thread.
type Client interface {
	ParseResults(data []byte) ([]*domain.Result, error)
}
