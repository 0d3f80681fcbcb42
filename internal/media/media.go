// Package media implements the shared media handles used by layout items and
// the loader that fills them. Handle state is only touched on the UI thread:
// the loader does its I/O elsewhere and posts completions back.
package media

import (
	"image"

	"github.com/orgball2608/inline-bot-layout/internal/domain"
)

// Requester starts asynchronous loads. Loader is the production implementation.
type Requester interface {
	RequestImage(img *Image)
	RequestDocument(doc *Document)
}

type loadState int

const (
	stateIdle loadState = iota
	stateLoading
	stateLoaded
	stateFailed
)

type Image struct {
	location  Location
	owner     *Document
	requester Requester
	state     loadState
	pixels    image.Image
}

var _ domain.Image = (*Image)(nil)

func (i *Image) IsNull() bool {
	return i == nil || i.location.IsZero()
}

// Load is a no-op while a request is in flight or after success; a failed
// image may be requested again.
func (i *Image) Load() {
	if i.IsNull() || i.requester == nil {
		return
	}
	if i.state == stateLoading || i.state == stateLoaded {
		return
	}
	i.state = stateLoading
	i.requester.RequestImage(i)
}

func (i *Image) Loaded() bool {
	return i != nil && i.state == stateLoaded
}

func (i *Image) Failed() bool {
	return i != nil && i.state == stateFailed
}

// Pixels is nil until the image is loaded.
func (i *Image) Pixels() image.Image {
	if i == nil {
		return nil
	}
	return i.pixels
}

func (i *Image) Location() Location {
	if i == nil {
		return Location{}
	}
	return i.location
}

func (i *Image) finish(pixels image.Image, err error) {
	if err != nil {
		i.state = stateFailed
		return
	}
	i.pixels = pixels
	i.state = stateLoaded
}

type Document struct {
	id        domain.DocumentID
	location  Location
	mimeType  string
	sticker   bool
	thumb     *Image
	requester Requester
	state     loadState
	data      []byte
}

var _ domain.Document = (*Document)(nil)

func (d *Document) ID() domain.DocumentID {
	return d.id
}

func (d *Document) Thumb() domain.Image {
	return d.thumb
}

func (d *Document) IsSticker() bool {
	return d.sticker
}

func (d *Document) MimeType() string {
	return d.mimeType
}

func (d *Document) Location() Location {
	return d.location
}

func (d *Document) Load() {
	if d.requester == nil || d.location.IsZero() {
		return
	}
	if d.state == stateLoading || d.state == stateLoaded {
		return
	}
	d.state = stateLoading
	d.requester.RequestDocument(d)
}

func (d *Document) Loaded() bool {
	return d.state == stateLoaded
}

// Size is the byte length of the downloaded content, 0 before that.
func (d *Document) Size() int64 {
	return int64(len(d.data))
}

func (d *Document) Data() []byte {
	return d.data
}

func (d *Document) finish(data []byte, err error) {
	if err != nil {
		d.state = stateFailed
		return
	}
	d.data = data
	d.state = stateLoaded
}

type Photo struct {
	id     domain.PhotoID
	thumb  *Image
	medium *Image
}

var _ domain.Photo = (*Photo)(nil)

func (p *Photo) ID() domain.PhotoID {
	return p.id
}

func (p *Photo) Thumb() domain.Image {
	return p.thumb
}

func (p *Photo) Medium() domain.Image {
	return p.medium
}
