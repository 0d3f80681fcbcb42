package ui

import (
	"testing"

	"github.com/orgball2608/inline-bot-layout/internal/domain"
	"github.com/orgball2608/inline-bot-layout/internal/layout"
	"github.com/orgball2608/inline-bot-layout/internal/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Replace(t *testing.T) {
	requester := &recordingRequester{}
	store := media.NewStore(requester)
	factory := layout.NewFactory(layout.Opts{})
	list := NewList(factory, false, testLogger())

	doc := store.Document(media.DocumentSpec{
		Location: media.URLLocation("https://cdn.example.com/a.mp4"),
		Thumb:    media.URLLocation("https://cdn.example.com/a.jpg"),
	})
	n := list.Replace([]*domain.Result{
		{Type: domain.ResultTypeArticle, Thumb: store.Image(media.URLLocation("https://cdn.example.com/t.jpg"))},
		{Type: domain.ResultTypeUnknown},
		nil,
		{Type: domain.ResultTypeGif, Document: doc},
	})

	require.Equal(t, 2, n)
	items := list.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 0, items[0].Position())
	assert.Equal(t, 1, items[1].Position())
	assert.Len(t, requester.images, 2, "every item is preloaded")
	assert.Equal(t, layout.RegistryStats{Documents: 1, Items: 1}, factory.Registry().Stats())
	assert.Equal(t, ListStats{Items: 2, ByKind: map[string]int{"article": 1, "gif": 1}}, list.Stats())

	list.Replace(nil)

	assert.Zero(t, list.Len())
	assert.Equal(t, -1, items[1].Position())
	assert.Equal(t, layout.RegistryStats{}, factory.Registry().Stats())
}

func TestList_ShowSavedGifs(t *testing.T) {
	store := media.NewStore(nil)
	factory := layout.NewFactory(layout.Opts{})
	list := NewList(factory, false, testLogger())
	doc := store.Document(media.DocumentSpec{Location: media.FileLocation("CgACAgQAAxkBAAI")})

	n := list.ShowSavedGifs([]domain.Document{doc, nil, doc})

	assert.Equal(t, 2, n)
	assert.Len(t, factory.Registry().Lookup(doc), 2)
	gif, ok := list.Items()[0].(*layout.Gif)
	require.True(t, ok)
	assert.True(t, gif.Forced())
}

func TestList_Clear(t *testing.T) {
	store := media.NewStore(nil)
	factory := layout.NewFactory(layout.Opts{})
	list := NewList(factory, true, testLogger())
	doc := store.Document(media.DocumentSpec{Location: media.URLLocation("https://x/s.webp"), MimeType: "image/webp"})

	list.Replace([]*domain.Result{{Type: domain.ResultTypeSticker, Document: doc}})
	items := list.Items()
	list.Clear()
	list.Clear()

	assert.Zero(t, list.Len())
	assert.Equal(t, -1, items[0].Position())
	assert.Nil(t, factory.Registry().Lookup(doc))
}

func TestList_ItemsIsACopy(t *testing.T) {
	list := NewList(layout.NewFactory(layout.Opts{}), false, testLogger())
	list.Replace([]*domain.Result{{Type: domain.ResultTypeContact, ID: "1"}})

	items := list.Items()
	items[0] = nil

	assert.NotNil(t, list.Items()[0])
}
