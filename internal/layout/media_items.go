package layout

import (
	"github.com/orgball2608/inline-bot-layout/internal/domain"
	"github.com/orgball2608/inline-bot-layout/pkg/formatter"
)

type Photo struct {
	itemBase
}

func newPhoto(f *Factory, src source) *Photo {
	p := &Photo{}
	p.init(p, f, src)
	return p
}

func (p *Photo) ShownPhoto() domain.Photo {
	return p.PreviewPhoto()
}

// File covers audio and generic file results. It follows its document so a
// finished download refreshes the size line.
type File struct {
	itemBase
}

func newFile(f *Factory, r *domain.Result) *File {
	v := &File{}
	v.init(v, f, fromResult(r))
	v.track(r.Document)
	return v
}

// Preload fetches the document after its preview so the size line can fill in.
func (v *File) Preload() {
	v.itemBase.Preload()
	loadDocument(v.Result().Document)
}

func (v *File) Title() string {
	return v.resultTitle()
}

// Description prefers the result's own text, then an audio duration, then
// the size of a downloaded document.
func (v *File) Description() string {
	if d := v.resultDescription(); d != "" {
		return d
	}
	r := v.Result()
	if r.Type == domain.ResultTypeAudio && r.Duration > 0 {
		return formatter.FormatDuration(r.Duration)
	}
	if doc, ok := r.Document.(interface{ Size() int64 }); ok && r.Document.Loaded() {
		return formatter.FormatSize(doc.Size())
	}
	return ""
}

type Video struct {
	itemBase
}

func newVideo(f *Factory, r *domain.Result) *Video {
	v := &Video{}
	v.init(v, f, fromResult(r))
	return v
}

func (v *Video) Title() string {
	return v.resultTitle()
}

func (v *Video) Description() string {
	return v.resultDescription()
}

// DurationText is empty when the result carries no duration.
func (v *Video) DurationText() string {
	if d := v.ResultDuration(); d > 0 {
		return formatter.FormatDuration(d)
	}
	return ""
}

type Sticker struct {
	itemBase
}

func newSticker(f *Factory, r *domain.Result) *Sticker {
	s := &Sticker{}
	s.init(s, f, fromResult(r))
	s.track(r.Document)
	return s
}

func (s *Sticker) Preload() {
	s.itemBase.Preload()
	loadDocument(s.Result().Document)
}

// Ready reports whether the sticker can be drawn instead of its placeholder.
func (s *Sticker) Ready() bool {
	return s.PreviewDocument() != nil
}

// Gif is built either from a gif result or directly from a document.
type Gif struct {
	itemBase
	forced bool
}

func newGif(f *Factory, src source, forced bool) *Gif {
	g := &Gif{forced: forced}
	g.init(g, f, src)
	g.track(g.ShownDocument())
	return g
}

// Preload starts the animation download once the preview is requested.
func (g *Gif) Preload() {
	g.itemBase.Preload()
	loadDocument(g.ShownDocument())
}

func (g *Gif) ShownDocument() domain.Document {
	if doc := g.Document(); doc != nil {
		return doc
	}
	return g.ResultDocument()
}

// Forced is set for gifs built without a result.
func (g *Gif) Forced() bool {
	return g.forced
}

func loadDocument(doc domain.Document) {
	if doc != nil && !doc.Loaded() {
		doc.Load()
	}
}
