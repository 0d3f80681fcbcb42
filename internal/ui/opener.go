package ui

import (
	"context"
	"net/url"

	"github.com/orgball2608/inline-bot-layout/internal/layout"
	"github.com/orgball2608/inline-bot-layout/pkg/errors"
	"github.com/orgball2608/inline-bot-layout/pkg/logger"
)

// LogOpener records link activations; there is no browser on a server.
type LogOpener struct {
	logger logger.Logger
}

var _ layout.LinkOpener = (*LogOpener)(nil)

func NewLogOpener(log logger.Logger) *LogOpener {
	return &LogOpener{logger: log.WithComponent("opener")}
}

func (o *LogOpener) OpenURL(ctx context.Context, rawURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeUnsupported, "cannot open "+rawURL)
	}
	o.logger.Info("Open link", "url", rawURL, "host", u.Host)
	return nil
}
