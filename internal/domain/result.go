package domain

import "fmt"

// ResultType is the kind tag of an inline bot result.
type ResultType int

const (
	ResultTypeUnknown ResultType = iota
	ResultTypePhoto
	ResultTypeAudio
	ResultTypeFile
	ResultTypeVideo
	ResultTypeSticker
	ResultTypeGif
	ResultTypeArticle
	ResultTypeGeo
	ResultTypeVenue
	ResultTypeGame
	ResultTypeContact
)

func (t ResultType) String() string {
	switch t {
	case ResultTypeUnknown:
		return "unknown"
	case ResultTypePhoto:
		return "photo"
	case ResultTypeAudio:
		return "audio"
	case ResultTypeFile:
		return "file"
	case ResultTypeVideo:
		return "video"
	case ResultTypeSticker:
		return "sticker"
	case ResultTypeGif:
		return "gif"
	case ResultTypeArticle:
		return "article"
	case ResultTypeGeo:
		return "geo"
	case ResultTypeVenue:
		return "venue"
	case ResultTypeGame:
		return "game"
	case ResultTypeContact:
		return "contact"
	default:
		return fmt.Sprintf("ResultType(%d)", int(t))
	}
}

// Result describes one inline search hit. It is built once by the parser and
// only read afterwards.
type Result struct {
	ID   string
	Type ResultType

	Document      Document // optional
	Photo         Photo    // optional
	Thumb         Image    // optional raw thumbnail
	LocationThumb Image    // optional map preview for geo and venue results

	Title       string
	Description string
	URL         string
	ContentURL  string
	Duration    int // seconds
}
