// Package layout holds the inline result layout items, the factory that
// builds them from results and the registry that maps documents to the items
// showing them.
//
// Everything in this package runs on the UI thread; nothing here locks.
package layout

import (
	"image"

	"github.com/orgball2608/inline-bot-layout/internal/domain"
)

// Item is the protocol shared by every layout variant. The set of variants is
// closed: only this package can implement Item.
type Item interface {
	SetPosition(position int)
	// Position is the index in the owning list, or -1 when the item is not placed.
	Position() int

	Result() *domain.Result
	Document() domain.Document
	Photo() domain.Photo

	// PreviewDocument returns the shown document only when it is a sticker or fully loaded.
	PreviewDocument() domain.Document
	PreviewPhoto() domain.Photo

	Preload()
	Update()

	ResultDocument() domain.Document
	ResultPhoto() domain.Photo
	ResultThumb() domain.Image
	ResultDuration() int
	ResultURL() string
	ResultURLHandler() ClickHandler
	ResultContentURLHandler() ClickHandler
	ResultContactAvatar(width, height int) image.Image
	ResultThumbLetter() string

	// Destroy releases the item's registry entries. The owner calls it exactly
	// when it evicts the item; further calls are no-ops.
	Destroy()

	base() *itemBase
}

type sourceKind int

const (
	sourceNone sourceKind = iota
	sourceResult
	sourceDocument
	sourcePhoto
)

// source is the single primary-media selector of an item.
type source struct {
	kind     sourceKind
	result   *domain.Result
	document domain.Document
	photo    domain.Photo
}

func fromResult(r *domain.Result) source {
	if r == nil {
		return source{}
	}
	return source{kind: sourceResult, result: r}
}

func fromDocument(d domain.Document) source {
	if d == nil {
		return source{}
	}
	return source{kind: sourceDocument, document: d}
}

func fromPhoto(p domain.Photo) source {
	if p == nil {
		return source{}
	}
	return source{kind: sourcePhoto, photo: p}
}

type itemBase struct {
	self      Item
	factory   *Factory
	src       source
	position  int
	tracked   domain.Document
	destroyed bool
}

func (b *itemBase) init(self Item, f *Factory, src source) {
	b.self = self
	b.factory = f
	b.src = src
	b.position = -1
}

func (b *itemBase) base() *itemBase {
	return b
}

// track registers the item as a viewer of doc until Destroy.
func (b *itemBase) track(doc domain.Document) {
	if doc == nil || b.tracked != nil {
		return
	}
	b.tracked = doc
	b.factory.registry.Register(doc, b.self)
}

func (b *itemBase) SetPosition(position int) {
	b.position = position
}

func (b *itemBase) Position() int {
	return b.position
}

func (b *itemBase) Result() *domain.Result {
	return b.src.result
}

func (b *itemBase) Document() domain.Document {
	return b.src.document
}

func (b *itemBase) Photo() domain.Photo {
	return b.src.photo
}

func (b *itemBase) PreviewDocument() domain.Document {
	var doc domain.Document
	switch b.src.kind {
	case sourceDocument:
		doc = b.src.document
	case sourceResult:
		doc = b.src.result.Document
	}
	if doc != nil && (doc.IsSticker() || doc.Loaded()) {
		return doc
	}
	return nil
}

func (b *itemBase) PreviewPhoto() domain.Photo {
	switch b.src.kind {
	case sourcePhoto:
		return b.src.photo
	case sourceResult:
		return b.src.result.Photo
	}
	return nil
}

func (b *itemBase) Preload() {
	switch b.src.kind {
	case sourceResult:
		r := b.src.result
		switch {
		case r.Photo != nil:
			load(r.Photo.Thumb())
		case r.Document != nil:
			load(r.Document.Thumb())
		case !domain.IsNullImage(r.Thumb):
			r.Thumb.Load()
		}
	case sourceDocument:
		load(b.src.document.Thumb())
	case sourcePhoto:
		load(b.src.photo.Medium())
	}
}

func load(img domain.Image) {
	if img != nil {
		img.Load()
	}
}

func (b *itemBase) Update() {
	if b.position < 0 || b.factory.repainter == nil {
		return
	}
	b.factory.repainter.RepaintItem(b.self)
}

func (b *itemBase) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	if b.tracked != nil {
		b.factory.registry.Unregister(b.tracked, b.self)
		b.tracked = nil
	}
}
