package media

import (
	"testing"

	"github.com/orgball2608/inline-bot-layout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRequester struct {
	images    []*Image
	documents []*Document
}

func (r *countingRequester) RequestImage(img *Image)       { r.images = append(r.images, img) }
func (r *countingRequester) RequestDocument(doc *Document) { r.documents = append(r.documents, doc) }

func TestStore_DocumentIdentity(t *testing.T) {
	store := NewStore(nil)
	spec := DocumentSpec{Location: FileLocation("BQACAgIAAx0"), MimeType: "application/pdf"}

	first := store.Document(spec)
	second := store.Document(spec)
	other := store.Document(DocumentSpec{Location: FileLocation("BQACAgIAAx1")})

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.NotEqual(t, first.ID(), other.ID())
	assert.Nil(t, store.Document(DocumentSpec{}))

	got, ok := store.DocumentByID(first.ID())
	assert.True(t, ok)
	assert.Same(t, first, got)
}

func TestStore_StickerFlag(t *testing.T) {
	store := NewStore(nil)

	assert.True(t, store.Document(DocumentSpec{Location: URLLocation("https://x/a.webp"), MimeType: "image/webp"}).IsSticker())
	assert.True(t, store.Document(DocumentSpec{Location: URLLocation("https://x/b"), Sticker: true}).IsSticker())
	assert.False(t, store.Document(DocumentSpec{Location: URLLocation("https://x/c.mp4"), MimeType: "video/mp4"}).IsSticker())
}

func TestStore_DocumentThumb(t *testing.T) {
	store := NewStore(nil)

	bare := store.Document(DocumentSpec{Location: URLLocation("https://x/a.zip")})
	require.NotNil(t, bare.Thumb())
	assert.True(t, domain.IsNullImage(bare.Thumb()))

	withThumb := store.Document(DocumentSpec{Location: URLLocation("https://x/b.zip"), Thumb: URLLocation("https://x/b.jpg")})
	assert.False(t, domain.IsNullImage(withThumb.Thumb()))
}

func TestStore_PhotoSharesImages(t *testing.T) {
	store := NewStore(nil)
	medium, thumb := URLLocation("https://x/p.jpg"), URLLocation("https://x/p_s.jpg")

	photo := store.Photo(medium, thumb)
	require.NotNil(t, photo)
	assert.Same(t, photo, store.Photo(medium, thumb))
	assert.Same(t, photo.Thumb(), store.Image(thumb))
	assert.Same(t, photo.Medium(), store.Image(medium))

	thumbOnly := store.Photo(Location{}, URLLocation("https://x/t.jpg"))
	require.NotNil(t, thumbOnly)
	assert.True(t, thumbOnly.Medium().IsNull())

	assert.Nil(t, store.Photo(Location{}, Location{}))
}

func TestStore_ImageZeroLocation(t *testing.T) {
	assert.Nil(t, NewStore(nil).Image(Location{}))
}

func TestImage_LoadOnce(t *testing.T) {
	requester := &countingRequester{}
	store := NewStore(requester)
	img := store.image(URLLocation("https://x/a.png"))

	img.Load()
	img.Load()
	assert.Len(t, requester.images, 1)

	img.finish(nil, assert.AnError)
	assert.True(t, img.Failed())
	img.Load()
	assert.Len(t, requester.images, 2, "failed images can be retried")

	(&Image{}).Load()
	var missing *Image
	assert.NotPanics(t, missing.Load)
	assert.True(t, missing.IsNull())
	assert.Len(t, requester.images, 2)
}

func TestDocument_LoadOnce(t *testing.T) {
	requester := &countingRequester{}
	doc := NewStore(requester).Document(DocumentSpec{Location: URLLocation("https://x/a.bin")})

	doc.Load()
	doc.Load()
	require.Len(t, requester.documents, 1)
	assert.False(t, doc.Loaded())

	doc.finish([]byte("abc"), nil)
	assert.True(t, doc.Loaded())
	assert.Equal(t, int64(3), doc.Size())
	doc.Load()
	assert.Len(t, requester.documents, 1)
}

func TestLocation_Key(t *testing.T) {
	assert.Equal(t, "url:https://x", URLLocation(" https://x ").Key())
	assert.Equal(t, "tg:abc", FileLocation("abc").Key())
	assert.Equal(t, "geo:51.500000,-0.120000", GeoLocation(51.5, -0.12).Key())
	assert.True(t, URLLocation("").IsZero())
	assert.Empty(t, Location{}.Key())
}
