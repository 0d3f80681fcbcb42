package ui

import (
	"github.com/orgball2608/inline-bot-layout/internal/domain"
	"github.com/orgball2608/inline-bot-layout/internal/layout"
	"github.com/orgball2608/inline-bot-layout/internal/media"
	"github.com/orgball2608/inline-bot-layout/pkg/logger"
)

// ItemSource exposes the items currently on screen.
type ItemSource interface {
	Items() []layout.Item
}

// Broadcaster turns media completions into item updates.
type Broadcaster struct {
	registry *layout.DocumentRegistry
	items    ItemSource
	logger   logger.Logger
}

var _ media.Notifier = (*Broadcaster)(nil)

func NewBroadcaster(registry *layout.DocumentRegistry, items ItemSource, log logger.Logger) *Broadcaster {
	return &Broadcaster{
		registry: registry,
		items:    items,
		logger:   log.WithComponent("broadcaster"),
	}
}

func (b *Broadcaster) DocumentReady(doc domain.Document) {
	items := b.registry.Lookup(doc)
	b.logger.Debug("Document ready", "document", uint64(doc.ID()), "items", len(items))
	for _, item := range items {
		item.Update()
	}
}

// ImageReady covers images no document owns: result thumbnails and photos.
func (b *Broadcaster) ImageReady(img domain.Image) {
	if b.items == nil {
		return
	}
	for _, item := range b.items.Items() {
		if showsImage(item, img) {
			item.Update()
		}
	}
}

func showsImage(item layout.Item, img domain.Image) bool {
	if thumb := item.ResultThumb(); thumb != nil && thumb == img {
		return true
	}
	for _, photo := range []domain.Photo{item.ResultPhoto(), item.Photo()} {
		if photo == nil {
			continue
		}
		if photo.Thumb() == img || photo.Medium() == img {
			return true
		}
	}
	return false
}
