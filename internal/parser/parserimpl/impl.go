package parserimpl

import (
	"encoding/json"
	"fmt"

	"github.com/orgball2608/inline-bot-layout/internal/domain"
	"github.com/orgball2608/inline-bot-layout/internal/media"
	"github.com/orgball2608/inline-bot-layout/internal/parser"
	"github.com/orgball2608/inline-bot-layout/pkg/errors"
	"github.com/orgball2608/inline-bot-layout/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Logger logger.Logger
	Store  *media.Store
}

type ParserImpl struct {
	Logger logger.Logger
	Store  *media.Store
}

func New(opts Opts) *ParserImpl {
	return &ParserImpl{
		Logger: opts.Logger.WithComponent("parser"),
		Store:  opts.Store,
	}
}

var _ parser.Client = (*ParserImpl)(nil)

// ParseResults decodes a JSON array of inline results. Elements that fail to
// decode are logged and skipped; unknown types come back as ResultTypeUnknown.
func (p *ParserImpl) ParseResults(data []byte) ([]*domain.Result, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(fmt.Errorf("%w: %v", errors.ErrInvalidInput, err), errors.CodeBadResult, "decode results feed")
	}

	results := make([]*domain.Result, 0, len(raw))
	for i, msg := range raw {
		result, err := p.parseResult(msg)
		if err != nil {
			p.Logger.Warn("Skipping malformed result", "index", i, "error", err)
			continue
		}
		if result.Type == domain.ResultTypeUnknown {
			p.Logger.Debug("Unsupported result type", "index", i, "id", result.ID)
		}
		results = append(results, result)
	}

	p.Logger.Info("Parsed results feed", "total", len(raw), "parsed", len(results))
	return results, nil
}
