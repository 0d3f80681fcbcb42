package layout

import (
	"image"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/orgball2608/inline-bot-layout/internal/domain"
)

// The Result* projections read the backing result; items without one get zero values.

func (b *itemBase) ResultDocument() domain.Document {
	if r := b.src.result; r != nil {
		return r.Document
	}
	return nil
}

func (b *itemBase) ResultPhoto() domain.Photo {
	if r := b.src.result; r != nil {
		return r.Photo
	}
	return nil
}

// ResultThumb picks the photo thumb, then the raw thumb, then the location thumb.
// It returns nil when the item has no result.
func (b *itemBase) ResultThumb() domain.Image {
	r := b.src.result
	if r == nil {
		return nil
	}
	if r.Photo != nil {
		if thumb := r.Photo.Thumb(); !domain.IsNullImage(thumb) {
			return thumb
		}
	}
	if !domain.IsNullImage(r.Thumb) {
		return r.Thumb
	}
	return r.LocationThumb
}

func (b *itemBase) ResultDuration() int {
	if r := b.src.result; r != nil {
		return r.Duration
	}
	return 0
}

func (b *itemBase) ResultURL() string {
	if r := b.src.result; r != nil {
		return r.URL
	}
	return ""
}

func (b *itemBase) ResultURLHandler() ClickHandler {
	if r := b.src.result; r != nil && r.URL != "" {
		return NewURLClickHandler(r.URL, b.factory.opener)
	}
	return nil
}

func (b *itemBase) ResultContentURLHandler() ClickHandler {
	if r := b.src.result; r != nil && r.ContentURL != "" {
		return NewURLClickHandler(r.ContentURL, b.factory.opener)
	}
	return nil
}

func (b *itemBase) ResultContactAvatar(width, height int) image.Image {
	r := b.src.result
	if r == nil || r.Type != domain.ResultTypeContact || b.factory.userpics == nil {
		return nil
	}
	count := b.factory.userpics.Count()
	if count <= 0 {
		return nil
	}
	return b.factory.userpics.Circled(ContactPaletteIndex(r.ID, count), width, height)
}

func (b *itemBase) ResultThumbLetter() string {
	if r := b.src.result; r != nil {
		return ThumbLetter(r.URL, r.Title)
	}
	return ""
}

func (b *itemBase) resultTitle() string {
	if r := b.src.result; r != nil {
		return r.Title
	}
	return ""
}

func (b *itemBase) resultDescription() string {
	if r := b.src.result; r != nil {
		return r.Description
	}
	return ""
}

// ContactPaletteIndex maps a result id onto one of count palette entries.
func ContactPaletteIndex(id string, count int) int {
	if count <= 0 {
		return 0
	}
	return int(xxhash.Sum64String(id) % uint64(count))
}

// ThumbLetter derives the fallback glyph for a result: the first letter of the
// registrable label of the url's host ("E" for http://www.example.com/x),
// else the first letter of the title, else "".
func ThumbLetter(url, title string) string {
	parts := strings.Split(url, "/")
	host := parts[0]
	if len(parts) > 2 && strings.HasSuffix(host, ":") && parts[1] == "" {
		host = parts[2]
	}
	if at := strings.LastIndexByte(host, '@'); at >= 0 {
		host = host[at+1:]
	}
	if labels := strings.Split(host, "."); len(labels) > 1 {
		if letter := upperFirst(labels[len(labels)-2]); letter != "" {
			return letter
		}
	}
	return upperFirst(title)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
