package layout

import (
	"github.com/orgball2608/inline-bot-layout/internal/domain"
)

type Opts struct {
	// Registry is shared with whoever broadcasts media readiness. A fresh one
	// is created when nil.
	Registry  *DocumentRegistry
	Repainter Repainter
	Opener    LinkOpener
	Userpics  Userpics
}

// Factory builds layout items and hands them the collaborators they need.
// Items it returns are owned by the caller, who must Destroy them on eviction.
type Factory struct {
	registry  *DocumentRegistry
	repainter Repainter
	opener    LinkOpener
	userpics  Userpics
}

func NewFactory(opts Opts) *Factory {
	registry := opts.Registry
	if registry == nil {
		registry = NewDocumentRegistry()
	}
	return &Factory{
		registry:  registry,
		repainter: opts.Repainter,
		opener:    opts.Opener,
		userpics:  opts.Userpics,
	}
}

func (f *Factory) Registry() *DocumentRegistry {
	return f.registry
}

type constructor func(f *Factory, r *domain.Result, forceThumb bool) Item

// New kinds are added here and nowhere else.
var constructors = map[domain.ResultType]constructor{
	domain.ResultTypePhoto: func(f *Factory, r *domain.Result, _ bool) Item {
		return newPhoto(f, fromResult(r))
	},
	domain.ResultTypeAudio: func(f *Factory, r *domain.Result, _ bool) Item {
		return newFile(f, r)
	},
	domain.ResultTypeFile: func(f *Factory, r *domain.Result, _ bool) Item {
		return newFile(f, r)
	},
	domain.ResultTypeVideo: func(f *Factory, r *domain.Result, _ bool) Item {
		return newVideo(f, r)
	},
	domain.ResultTypeSticker: func(f *Factory, r *domain.Result, _ bool) Item {
		return newSticker(f, r)
	},
	domain.ResultTypeGif: func(f *Factory, r *domain.Result, _ bool) Item {
		return newGif(f, fromResult(r), false)
	},
	domain.ResultTypeArticle: func(f *Factory, r *domain.Result, forceThumb bool) Item {
		return newArticle(f, r, forceThumb)
	},
	domain.ResultTypeGeo: func(f *Factory, r *domain.Result, forceThumb bool) Item {
		return newArticle(f, r, forceThumb)
	},
	domain.ResultTypeVenue: func(f *Factory, r *domain.Result, forceThumb bool) Item {
		return newArticle(f, r, forceThumb)
	},
	domain.ResultTypeGame: func(f *Factory, r *domain.Result, _ bool) Item {
		return newGame(f, r)
	},
	domain.ResultTypeContact: func(f *Factory, r *domain.Result, _ bool) Item {
		return newContact(f, r)
	},
}

// CreateLayout builds the variant for result's kind. Kinds without a variant
// yield nil, which callers treat as "nothing to show".
func (f *Factory) CreateLayout(result *domain.Result, forceThumb bool) Item {
	if result == nil {
		return nil
	}
	create, ok := constructors[result.Type]
	if !ok {
		return nil
	}
	return create(f, result, forceThumb)
}

// CreateLayoutGif builds a forced gif item straight from a document, as for
// saved gifs that have no surrounding result.
func (f *Factory) CreateLayoutGif(document domain.Document) Item {
	if document == nil {
		return nil
	}
	return newGif(f, fromDocument(document), true)
}

// CreateLayoutPhoto builds a photo item backed by a bare photo handle.
func (f *Factory) CreateLayoutPhoto(photo domain.Photo) Item {
	if photo == nil {
		return nil
	}
	return newPhoto(f, fromPhoto(photo))
}
