package ui

import (
	"github.com/orgball2608/inline-bot-layout/internal/domain"
	"github.com/orgball2608/inline-bot-layout/internal/layout"
	"github.com/orgball2608/inline-bot-layout/pkg/logger"
	"github.com/samber/lo"
)

// ListStats is what /debug/layout reports about the visible list.
type ListStats struct {
	Items  int            `json:"items"`
	ByKind map[string]int `json:"by_kind"`
}

// List owns the items currently shown. Every method must run on the loop.
type List struct {
	factory    *layout.Factory
	forceThumb bool
	logger     logger.Logger
	items      []layout.Item
}

var _ ItemSource = (*List)(nil)

func NewList(factory *layout.Factory, forceThumb bool, log logger.Logger) *List {
	return &List{
		factory:    factory,
		forceThumb: forceThumb,
		logger:     log.WithComponent("list"),
	}
}

// Replace shows results in order, skipping kinds without a layout, and
// returns the number of items created.
func (l *List) Replace(results []*domain.Result) int {
	items := lo.FilterMap(results, func(r *domain.Result, _ int) (layout.Item, bool) {
		item := l.factory.CreateLayout(r, l.forceThumb)
		return item, item != nil
	})
	if skipped := len(results) - len(items); skipped > 0 {
		l.logger.Warn("Skipped results without layout", "count", skipped)
	}
	l.show(items)
	return len(items)
}

func (l *List) ShowSavedGifs(docs []domain.Document) int {
	items := lo.FilterMap(docs, func(doc domain.Document, _ int) (layout.Item, bool) {
		item := l.factory.CreateLayoutGif(doc)
		return item, item != nil
	})
	l.show(items)
	return len(items)
}

func (l *List) Clear() {
	for _, item := range l.items {
		item.SetPosition(-1)
		item.Destroy()
	}
	l.items = nil
}

func (l *List) Len() int {
	return len(l.items)
}

// Items returns a copy of the visible items.
func (l *List) Items() []layout.Item {
	return append([]layout.Item(nil), l.items...)
}

func (l *List) Stats() ListStats {
	return ListStats{
		Items:  len(l.items),
		ByKind: lo.CountValuesBy(l.items, kindOf),
	}
}

func (l *List) show(items []layout.Item) {
	l.Clear()
	l.items = items
	for i, item := range items {
		item.SetPosition(i)
		item.Preload()
	}
	l.logger.Debug("List replaced", "items", len(items))
}

func kindOf(item layout.Item) string {
	switch item.(type) {
	case *layout.Photo:
		return "photo"
	case *layout.File:
		return "file"
	case *layout.Video:
		return "video"
	case *layout.Sticker:
		return "sticker"
	case *layout.Gif:
		return "gif"
	case *layout.Article:
		return "article"
	case *layout.Game:
		return "game"
	case *layout.Contact:
		return "contact"
	default:
		return "unknown"
	}
}
