package layout_test

import (
	"github.com/orgball2608/inline-bot-layout/internal/domain"
	"github.com/orgball2608/inline-bot-layout/internal/layout"
)

type fakeImage struct {
	null   bool
	loaded bool
	loads  int
}

func (i *fakeImage) IsNull() bool { return i.null }
func (i *fakeImage) Load()        { i.loads++ }
func (i *fakeImage) Loaded() bool { return i.loaded }

type fakeDocument struct {
	id      domain.DocumentID
	thumb   *fakeImage
	sticker bool
	loaded  bool
	size    int64
}

func (d *fakeDocument) ID() domain.DocumentID { return d.id }
func (d *fakeDocument) IsSticker() bool       { return d.sticker }
func (d *fakeDocument) Load()                 { d.loaded = true }
func (d *fakeDocument) Loaded() bool          { return d.loaded }
func (d *fakeDocument) Size() int64           { return d.size }

func (d *fakeDocument) Thumb() domain.Image {
	if d.thumb == nil {
		return nil
	}
	return d.thumb
}

type fakePhoto struct {
	id     domain.PhotoID
	thumb  *fakeImage
	medium *fakeImage
}

func (p *fakePhoto) ID() domain.PhotoID { return p.id }

func (p *fakePhoto) Thumb() domain.Image {
	if p.thumb == nil {
		return nil
	}
	return p.thumb
}

func (p *fakePhoto) Medium() domain.Image {
	if p.medium == nil {
		return nil
	}
	return p.medium
}

func newTestFactory() *layout.Factory {
	return layout.NewFactory(layout.Opts{Registry: layout.NewDocumentRegistry()})
}
