package parserimpl

import (
	"io"
	"testing"

	"github.com/orgball2608/inline-bot-layout/internal/domain"
	"github.com/orgball2608/inline-bot-layout/internal/layout"
	"github.com/orgball2608/inline-bot-layout/internal/media"
	"github.com/orgball2608/inline-bot-layout/pkg/errors"
	"github.com/orgball2608/inline-bot-layout/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *ParserImpl {
	return New(Opts{
		Logger: logger.New(logger.Opts{Env: "test", Writer: io.Discard}),
		Store:  media.NewStore(nil),
	})
}

const feed = `[
	{"type":"article","id":"a1","title":"Go","description":"The Go site","url":"https://go.dev","thumb_url":"https://go.dev/t.png"},
	{"type":"photo","id":"p1","photo_url":"https://x/p.jpg","thumb_url":"https://x/p_s.jpg","title":"Cat"},
	{"type":"photo","id":"p2","photo_file_id":"AgACAgIAAxkBAAI"},
	{"type":"gif","id":"g1","gif_url":"https://x/g.gif","thumb_url":"https://x/g.jpg","gif_duration":4},
	{"type":"mpeg4_gif","id":"g2","mpeg4_file_id":"CgACAgQAAxkBAAI"},
	{"type":"video","id":"v1","video_url":"https://x/v.mp4","mime_type":"video/mp4","thumb_url":"https://x/v.jpg","title":"Talk","video_duration":3725},
	{"type":"audio","id":"au1","audio_url":"https://x/a.mp3","title":"Song","performer":"Band","audio_duration":185},
	{"type":"voice","id":"vo1","voice_file_id":"AwACAgIAAxkBAAI","title":"Memo"},
	{"type":"document","id":"d1","title":"report.pdf","document_url":"https://x/r.pdf","mime_type":"application/pdf"},
	{"type":"sticker","id":"s1","sticker_file_id":"CAACAgIAAxkBAAI"},
	{"type":"location","id":"l1","latitude":51.5,"longitude":-0.12,"title":"London"},
	{"type":"venue","id":"ve1","latitude":48.8584,"longitude":2.2945,"title":"Eiffel Tower","address":"Champ de Mars"},
	{"type":"contact","id":"c1","phone_number":"+100","first_name":"Ann","last_name":"Lee"},
	{"type":"game","id":"gm1","game_short_name":"tetris"},
	{"type":"hologram","id":"h1"}
]`

func TestParseResults_AllKinds(t *testing.T) {
	results, err := newTestParser().ParseResults([]byte(feed))
	require.NoError(t, err)
	require.Len(t, results, 15)

	byID := make(map[string]*domain.Result, len(results))
	for _, r := range results {
		byID[r.ID] = r
	}

	article := byID["a1"]
	assert.Equal(t, domain.ResultTypeArticle, article.Type)
	assert.Equal(t, "https://go.dev", article.URL)
	require.NotNil(t, article.Thumb)
	assert.False(t, article.Thumb.IsNull())

	assert.Equal(t, domain.ResultTypePhoto, byID["p1"].Type)
	require.NotNil(t, byID["p1"].Photo)
	assert.False(t, byID["p1"].Photo.Medium().IsNull())
	require.NotNil(t, byID["p2"].Photo)

	gif := byID["g1"]
	assert.Equal(t, domain.ResultTypeGif, gif.Type)
	require.NotNil(t, gif.Document)
	assert.False(t, gif.Document.Thumb().IsNull())
	assert.Equal(t, 4, gif.Duration)
	require.NotNil(t, byID["g2"].Document)

	video := byID["v1"]
	assert.Equal(t, domain.ResultTypeVideo, video.Type)
	assert.Equal(t, 3725, video.Duration)
	assert.Equal(t, "https://x/v.mp4", video.ContentURL)
	assert.Nil(t, video.Document)

	assert.Equal(t, domain.ResultTypeAudio, byID["au1"].Type)
	assert.Equal(t, "Band", byID["au1"].Description)
	assert.Equal(t, domain.ResultTypeAudio, byID["vo1"].Type)
	require.NotNil(t, byID["vo1"].Document)

	assert.Equal(t, domain.ResultTypeFile, byID["d1"].Type)
	require.NotNil(t, byID["d1"].Document)
	assert.Nil(t, byID["d1"].Thumb)

	sticker := byID["s1"]
	assert.Equal(t, domain.ResultTypeSticker, sticker.Type)
	require.NotNil(t, sticker.Document)
	assert.True(t, sticker.Document.IsSticker())

	geo := byID["l1"]
	assert.Equal(t, domain.ResultTypeGeo, geo.Type)
	assert.Nil(t, geo.Thumb)
	require.NotNil(t, geo.LocationThumb)
	assert.Equal(t, "51.500000, -0.120000", geo.Description)

	assert.Equal(t, domain.ResultTypeVenue, byID["ve1"].Type)
	assert.Equal(t, "Champ de Mars", byID["ve1"].Description)

	assert.Equal(t, "Ann Lee", byID["c1"].Title)
	assert.Equal(t, "+100", byID["c1"].Description)

	assert.Equal(t, "tetris", byID["gm1"].Title)
	assert.Equal(t, domain.ResultTypeUnknown, byID["h1"].Type)
}

func TestParseResults_SharesHandles(t *testing.T) {
	results, err := newTestParser().ParseResults([]byte(`[
		{"type":"gif","id":"1","gif_url":"https://x/same.gif","thumb_url":"https://x/t.jpg"},
		{"type":"gif","id":"2","gif_url":"https://x/same.gif","thumb_url":"https://x/t.jpg"}
	]`))
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Same(t, results[0].Document, results[1].Document)
}

func TestParseResults_SkipsMalformedElements(t *testing.T) {
	results, err := newTestParser().ParseResults([]byte(`[
		{"type":"article","title":"no id"},
		{"type":"video","id":"v","video_duration":"long"},
		"not an object",
		{"type":"article","id":"ok","title":"fine"}
	]`))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "ok", results[0].ID)
}

func TestParseResults_InvalidFeed(t *testing.T) {
	_, err := newTestParser().ParseResults([]byte(`{"type":"article"}`))

	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
	assert.Equal(t, errors.CodeBadResult, errors.GetCode(err))
}

func TestParseResults_FeedsTheFactory(t *testing.T) {
	results, err := newTestParser().ParseResults([]byte(feed))
	require.NoError(t, err)

	factory := layout.NewFactory(layout.Opts{})
	created := 0
	for _, r := range results {
		if factory.CreateLayout(r, false) != nil {
			created++
		}
	}

	assert.Equal(t, len(results)-1, created)
	assert.Equal(t, 5, factory.Registry().Stats().Documents)
}
