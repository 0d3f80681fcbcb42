package parserimpl

import (
	"encoding/json"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/inline-bot-layout/internal/domain"
	"github.com/orgball2608/inline-bot-layout/internal/media"
	"github.com/orgball2608/inline-bot-layout/pkg/errors"
)

// header carries the fields needed to pick the concrete Bot API type.
type header struct {
	Type           string `json:"type"`
	ID             string `json:"id"`
	PhotoFileID    string `json:"photo_file_id"`
	GIFFileID      string `json:"gif_file_id"`
	MPEG4FileID    string `json:"mpeg4_file_id"`
	VideoFileID    string `json:"video_file_id"`
	AudioFileID    string `json:"audio_file_id"`
	VoiceFileID    string `json:"voice_file_id"`
	DocumentFileID string `json:"document_file_id"`
	StickerFileID  string `json:"sticker_file_id"`
}

func (p *ParserImpl) parseResult(msg json.RawMessage) (*domain.Result, error) {
	var h header
	if err := json.Unmarshal(msg, &h); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeBadResult, "decode result header")
	}
	if h.ID == "" {
		return nil, errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeBadResult, "result without id")
	}

	switch h.Type {
	case "article":
		return decode(msg, p.article)
	case "photo":
		if h.PhotoFileID != "" {
			return decode(msg, p.cachedPhoto)
		}
		return decode(msg, p.photo)
	case "gif":
		if h.GIFFileID != "" {
			return decode(msg, p.cachedGIF)
		}
		return decode(msg, p.gif)
	case "mpeg4_gif":
		if h.MPEG4FileID != "" {
			return decode(msg, p.cachedMPEG4GIF)
		}
		return decode(msg, p.mpeg4GIF)
	case "video":
		if h.VideoFileID != "" {
			return decode(msg, p.cachedVideo)
		}
		return decode(msg, p.video)
	case "audio":
		if h.AudioFileID != "" {
			return decode(msg, p.cachedAudio)
		}
		return decode(msg, p.audio)
	case "voice":
		if h.VoiceFileID != "" {
			return decode(msg, p.cachedVoice)
		}
		return decode(msg, p.voice)
	case "document":
		if h.DocumentFileID != "" {
			return decode(msg, p.cachedDocument)
		}
		return decode(msg, p.document)
	case "sticker":
		return decode(msg, p.cachedSticker)
	case "location":
		return decode(msg, p.location)
	case "venue":
		return decode(msg, p.venue)
	case "contact":
		return decode(msg, p.contact)
	case "game":
		return decode(msg, p.game)
	default:
		return &domain.Result{ID: h.ID, Type: domain.ResultTypeUnknown}, nil
	}
}

func decode[T any](msg json.RawMessage, convert func(T) *domain.Result) (*domain.Result, error) {
	var v T
	if err := json.Unmarshal(msg, &v); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeBadResult, fmt.Sprintf("decode %T", v))
	}
	return convert(v), nil
}

func (p *ParserImpl) image(rawURL string) domain.Image {
	return p.Store.Image(media.URLLocation(rawURL))
}

func (p *ParserImpl) mediaPhoto(medium, thumb media.Location) domain.Photo {
	if photo := p.Store.Photo(medium, thumb); photo != nil {
		return photo
	}
	return nil
}

func (p *ParserImpl) mediaDocument(spec media.DocumentSpec) domain.Document {
	if doc := p.Store.Document(spec); doc != nil {
		return doc
	}
	return nil
}

func (p *ParserImpl) article(r tgbotapi.InlineQueryResultArticle) *domain.Result {
	return &domain.Result{
		ID:          r.ID,
		Type:        domain.ResultTypeArticle,
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		Thumb:       p.image(r.ThumbURL),
	}
}

func (p *ParserImpl) photo(r tgbotapi.InlineQueryResultPhoto) *domain.Result {
	return &domain.Result{
		ID:          r.ID,
		Type:        domain.ResultTypePhoto,
		Title:       r.Title,
		Description: r.Description,
		ContentURL:  r.URL,
		Photo:       p.mediaPhoto(media.URLLocation(r.URL), media.URLLocation(r.ThumbURL)),
	}
}

func (p *ParserImpl) cachedPhoto(r tgbotapi.InlineQueryResultCachedPhoto) *domain.Result {
	loc := media.FileLocation(r.PhotoID)
	return &domain.Result{
		ID:          r.ID,
		Type:        domain.ResultTypePhoto,
		Title:       r.Title,
		Description: r.Description,
		Photo:       p.mediaPhoto(loc, loc),
	}
}

func (p *ParserImpl) gif(r tgbotapi.InlineQueryResultGIF) *domain.Result {
	return &domain.Result{
		ID:         r.ID,
		Type:       domain.ResultTypeGif,
		Title:      r.Title,
		Duration:   r.Duration,
		ContentURL: r.URL,
		Document: p.mediaDocument(media.DocumentSpec{
			Location: media.URLLocation(r.URL),
			MimeType: "image/gif",
			Thumb:    media.URLLocation(r.ThumbURL),
		}),
	}
}

func (p *ParserImpl) cachedGIF(r tgbotapi.InlineQueryResultCachedGIF) *domain.Result {
	return &domain.Result{
		ID:       r.ID,
		Type:     domain.ResultTypeGif,
		Title:    r.Title,
		Document: p.mediaDocument(media.DocumentSpec{Location: media.FileLocation(r.GIFID), MimeType: "image/gif"}),
	}
}

func (p *ParserImpl) mpeg4GIF(r tgbotapi.InlineQueryResultMPEG4GIF) *domain.Result {
	return &domain.Result{
		ID:         r.ID,
		Type:       domain.ResultTypeGif,
		Title:      r.Title,
		Duration:   r.Duration,
		ContentURL: r.URL,
		Document: p.mediaDocument(media.DocumentSpec{
			Location: media.URLLocation(r.URL),
			MimeType: "video/mp4",
			Thumb:    media.URLLocation(r.ThumbURL),
		}),
	}
}

func (p *ParserImpl) cachedMPEG4GIF(r tgbotapi.InlineQueryResultCachedMPEG4GIF) *domain.Result {
	return &domain.Result{
		ID:       r.ID,
		Type:     domain.ResultTypeGif,
		Title:    r.Title,
		Document: p.mediaDocument(media.DocumentSpec{Location: media.FileLocation(r.MPEG4FileID), MimeType: "video/mp4"}),
	}
}

func (p *ParserImpl) video(r tgbotapi.InlineQueryResultVideo) *domain.Result {
	return &domain.Result{
		ID:          r.ID,
		Type:        domain.ResultTypeVideo,
		Title:       r.Title,
		Description: r.Description,
		Duration:    r.Duration,
		ContentURL:  r.URL,
		Thumb:       p.image(r.ThumbURL),
	}
}

func (p *ParserImpl) cachedVideo(r tgbotapi.InlineQueryResultCachedVideo) *domain.Result {
	return &domain.Result{
		ID:          r.ID,
		Type:        domain.ResultTypeVideo,
		Title:       r.Title,
		Description: r.Description,
		Document:    p.mediaDocument(media.DocumentSpec{Location: media.FileLocation(r.VideoID), MimeType: "video/mp4"}),
	}
}

func (p *ParserImpl) audio(r tgbotapi.InlineQueryResultAudio) *domain.Result {
	return &domain.Result{
		ID:          r.ID,
		Type:        domain.ResultTypeAudio,
		Title:       r.Title,
		Description: r.Performer,
		Duration:    r.Duration,
		ContentURL:  r.URL,
	}
}

func (p *ParserImpl) cachedAudio(r tgbotapi.InlineQueryResultCachedAudio) *domain.Result {
	return &domain.Result{
		ID:       r.ID,
		Type:     domain.ResultTypeAudio,
		Document: p.mediaDocument(media.DocumentSpec{Location: media.FileLocation(r.AudioID), MimeType: "audio/mpeg"}),
	}
}

func (p *ParserImpl) voice(r tgbotapi.InlineQueryResultVoice) *domain.Result {
	return &domain.Result{
		ID:         r.ID,
		Type:       domain.ResultTypeAudio,
		Title:      r.Title,
		Duration:   r.Duration,
		ContentURL: r.URL,
	}
}

func (p *ParserImpl) cachedVoice(r tgbotapi.InlineQueryResultCachedVoice) *domain.Result {
	return &domain.Result{
		ID:       r.ID,
		Type:     domain.ResultTypeAudio,
		Title:    r.Title,
		Document: p.mediaDocument(media.DocumentSpec{Location: media.FileLocation(r.VoiceID), MimeType: "audio/ogg"}),
	}
}

func (p *ParserImpl) document(r tgbotapi.InlineQueryResultDocument) *domain.Result {
	return &domain.Result{
		ID:          r.ID,
		Type:        domain.ResultTypeFile,
		Title:       r.Title,
		Description: r.Description,
		ContentURL:  r.URL,
		Document: p.mediaDocument(media.DocumentSpec{
			Location: media.URLLocation(r.URL),
			MimeType: r.MimeType,
			Thumb:    media.URLLocation(r.ThumbURL),
		}),
	}
}

func (p *ParserImpl) cachedDocument(r tgbotapi.InlineQueryResultCachedDocument) *domain.Result {
	return &domain.Result{
		ID:          r.ID,
		Type:        domain.ResultTypeFile,
		Title:       r.Title,
		Description: r.Description,
		Document:    p.mediaDocument(media.DocumentSpec{Location: media.FileLocation(r.DocumentID)}),
	}
}

func (p *ParserImpl) cachedSticker(r tgbotapi.InlineQueryResultCachedSticker) *domain.Result {
	return &domain.Result{
		ID:       r.ID,
		Type:     domain.ResultTypeSticker,
		Title:    r.Title,
		Document: p.mediaDocument(media.DocumentSpec{Location: media.FileLocation(r.StickerID), Sticker: true}),
	}
}

func (p *ParserImpl) location(r tgbotapi.InlineQueryResultLocation) *domain.Result {
	return &domain.Result{
		ID:            r.ID,
		Type:          domain.ResultTypeGeo,
		Title:         r.Title,
		Description:   fmt.Sprintf("%.6f, %.6f", r.Latitude, r.Longitude),
		Thumb:         p.image(r.ThumbURL),
		LocationThumb: p.Store.Image(media.GeoLocation(r.Latitude, r.Longitude)),
	}
}

func (p *ParserImpl) venue(r tgbotapi.InlineQueryResultVenue) *domain.Result {
	return &domain.Result{
		ID:            r.ID,
		Type:          domain.ResultTypeVenue,
		Title:         r.Title,
		Description:   r.Address,
		Thumb:         p.image(r.ThumbURL),
		LocationThumb: p.Store.Image(media.GeoLocation(r.Latitude, r.Longitude)),
	}
}

func (p *ParserImpl) contact(r tgbotapi.InlineQueryResultContact) *domain.Result {
	return &domain.Result{
		ID:          r.ID,
		Type:        domain.ResultTypeContact,
		Title:       strings.TrimSpace(r.FirstName + " " + r.LastName),
		Description: r.PhoneNumber,
		Thumb:       p.image(r.ThumbURL),
	}
}

func (p *ParserImpl) game(r tgbotapi.InlineQueryResultGame) *domain.Result {
	return &domain.Result{
		ID:    r.ID,
		Type:  domain.ResultTypeGame,
		Title: r.GameShortName,
	}
}
