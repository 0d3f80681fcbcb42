package layout

import (
	"image"

	"github.com/orgball2608/inline-bot-layout/internal/domain"
)

// Article renders article, geo and venue results as a text row with an
// optional thumbnail on the left.
type Article struct {
	itemBase
	withThumb bool
}

func newArticle(f *Factory, r *domain.Result, forceThumb bool) *Article {
	a := &Article{}
	a.init(a, f, fromResult(r))
	a.withThumb = forceThumb || r.Photo != nil ||
		!domain.IsNullImage(r.Thumb) || !domain.IsNullImage(r.LocationThumb)
	return a
}

// WithThumb reports whether the row reserves a thumbnail slot.
func (a *Article) WithThumb() bool {
	return a.withThumb
}

func (a *Article) Title() string {
	return a.resultTitle()
}

func (a *Article) Description() string {
	return a.resultDescription()
}

func (a *Article) Thumb() domain.Image {
	if !a.withThumb {
		return nil
	}
	return a.ResultThumb()
}

// Letter is drawn in the thumbnail slot when there is no image to put there.
func (a *Article) Letter() string {
	if !a.withThumb || !domain.IsNullImage(a.ResultThumb()) {
		return ""
	}
	return a.ResultThumbLetter()
}

type Game struct {
	itemBase
}

func newGame(f *Factory, r *domain.Result) *Game {
	g := &Game{}
	g.init(g, f, fromResult(r))
	return g
}

func (g *Game) Title() string {
	return g.resultTitle()
}

func (g *Game) Description() string {
	return g.resultDescription()
}

func (g *Game) Thumb() domain.Image {
	return g.ResultThumb()
}

type Contact struct {
	itemBase
}

func newContact(f *Factory, r *domain.Result) *Contact {
	c := &Contact{}
	c.init(c, f, fromResult(r))
	return c
}

func (c *Contact) Title() string {
	return c.resultTitle()
}

// Description holds the phone number.
func (c *Contact) Description() string {
	return c.resultDescription()
}

// Avatar falls back to the default userpic when the result has no thumbnail.
func (c *Contact) Avatar(width, height int) (domain.Image, image.Image) {
	if thumb := c.ResultThumb(); !domain.IsNullImage(thumb) {
		return thumb, nil
	}
	return nil, c.ResultContactAvatar(width, height)
}
