package media

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/orgball2608/inline-bot-layout/internal/domain"
)

// DocumentSpec describes a document as it arrives from a result feed.
type DocumentSpec struct {
	Location Location
	MimeType string
	Thumb    Location
	Sticker  bool
}

// Store hands out one handle per location so that every item showing the
// same file shares its load state. It is not safe for concurrent use.
type Store struct {
	requester Requester
	documents map[domain.DocumentID]*Document
	photos    map[domain.PhotoID]*Photo
	images    map[string]*Image
}

func NewStore(requester Requester) *Store {
	return &Store{
		requester: requester,
		documents: make(map[domain.DocumentID]*Document),
		photos:    make(map[domain.PhotoID]*Photo),
		images:    make(map[string]*Image),
	}
}

func locationID(loc Location) uint64 {
	return xxhash.Sum64String(loc.Key())
}

// Document returns nil for a zero location.
func (s *Store) Document(spec DocumentSpec) *Document {
	if spec.Location.IsZero() {
		return nil
	}
	id := domain.DocumentID(locationID(spec.Location))
	if doc, ok := s.documents[id]; ok {
		return doc
	}

	doc := &Document{
		id:        id,
		location:  spec.Location,
		mimeType:  spec.MimeType,
		sticker:   spec.Sticker || isStickerMime(spec.MimeType),
		requester: s.requester,
	}
	doc.thumb = &Image{location: spec.Thumb, owner: doc, requester: s.requester}
	s.documents[id] = doc
	return doc
}

// Photo returns nil when neither size is known.
func (s *Store) Photo(medium, thumb Location) *Photo {
	if medium.IsZero() && thumb.IsZero() {
		return nil
	}
	key := medium
	if key.IsZero() {
		key = thumb
	}
	id := domain.PhotoID(locationID(key))
	if photo, ok := s.photos[id]; ok {
		return photo
	}

	photo := &Photo{
		id:     id,
		thumb:  s.image(thumb),
		medium: s.image(medium),
	}
	s.photos[id] = photo
	return photo
}

// Image returns a nil interface for a zero location, never a typed nil.
func (s *Store) Image(loc Location) domain.Image {
	if loc.IsZero() {
		return nil
	}
	return s.image(loc)
}

func (s *Store) image(loc Location) *Image {
	if loc.IsZero() {
		return &Image{}
	}
	key := loc.Key()
	if img, ok := s.images[key]; ok {
		return img
	}
	img := &Image{location: loc, requester: s.requester}
	s.images[key] = img
	return img
}

func (s *Store) DocumentByID(id domain.DocumentID) (*Document, bool) {
	doc, ok := s.documents[id]
	return doc, ok
}

func (s *Store) Len() (documents, photos, images int) {
	return len(s.documents), len(s.photos), len(s.images)
}

func isStickerMime(mimeType string) bool {
	switch strings.ToLower(mimeType) {
	case "image/webp", "application/x-tgsticker":
		return true
	}
	return false
}
