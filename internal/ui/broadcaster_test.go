package ui

import (
	"testing"

	"github.com/orgball2608/inline-bot-layout/internal/domain"
	"github.com/orgball2608/inline-bot-layout/internal/layout"
	"github.com/orgball2608/inline-bot-layout/internal/layout/mocks"
	"github.com/orgball2608/inline-bot-layout/internal/media"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBroadcaster_DocumentReadyUpdatesViewers(t *testing.T) {
	ctrl := gomock.NewController(t)
	repainter := mocks.NewMockRepainter(ctrl)
	factory := layout.NewFactory(layout.Opts{Repainter: repainter})
	list := NewList(factory, false, testLogger())
	store := media.NewStore(nil)
	doc := store.Document(media.DocumentSpec{Location: media.URLLocation("https://x/a.gif")})
	other := store.Document(media.DocumentSpec{Location: media.URLLocation("https://x/b.gif")})

	list.ShowSavedGifs([]domain.Document{doc, other, doc})
	items := list.Items()
	require.Len(t, items, 3)

	repainter.EXPECT().RepaintItem(sameItem(items[0]))
	repainter.EXPECT().RepaintItem(sameItem(items[2]))

	NewBroadcaster(factory.Registry(), list, testLogger()).DocumentReady(doc)
}

func TestBroadcaster_ImageReadyUpdatesItemsShowingIt(t *testing.T) {
	ctrl := gomock.NewController(t)
	repainter := mocks.NewMockRepainter(ctrl)
	factory := layout.NewFactory(layout.Opts{Repainter: repainter})
	list := NewList(factory, false, testLogger())
	store := media.NewStore(nil)

	thumb := store.Image(media.URLLocation("https://x/t.jpg"))
	photo := store.Photo(media.URLLocation("https://x/p.jpg"), media.URLLocation("https://x/p_s.jpg"))
	list.Replace([]*domain.Result{
		{Type: domain.ResultTypeArticle, Thumb: thumb},
		{Type: domain.ResultTypeArticle},
		{Type: domain.ResultTypePhoto, Photo: photo},
	})
	items := list.Items()
	broadcaster := NewBroadcaster(factory.Registry(), list, testLogger())

	repainter.EXPECT().RepaintItem(sameItem(items[0]))
	broadcaster.ImageReady(thumb)

	repainter.EXPECT().RepaintItem(sameItem(items[2]))
	broadcaster.ImageReady(photo.Medium())
}

func TestBroadcaster_WithoutItemSource(t *testing.T) {
	broadcaster := NewBroadcaster(layout.NewDocumentRegistry(), nil, testLogger())
	img := media.NewStore(nil).Image(media.URLLocation("https://x/t.jpg"))

	require.NotPanics(t, func() { broadcaster.ImageReady(img) })
}
