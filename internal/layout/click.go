package layout

import (
	"context"
	"strings"
)

// ClickHandler is what rendering code attaches to a clickable area.
type ClickHandler interface {
	Click(ctx context.Context) error
	URL() string
	// Text is the readable form shown in tooltips.
	Text() string
}

type URLClickHandler struct {
	url    string
	opener LinkOpener
}

var _ ClickHandler = (*URLClickHandler)(nil)

func NewURLClickHandler(url string, opener LinkOpener) *URLClickHandler {
	return &URLClickHandler{url: url, opener: opener}
}

func (h *URLClickHandler) Click(ctx context.Context) error {
	if h.opener == nil {
		return nil
	}
	return h.opener.OpenURL(ctx, h.url)
}

func (h *URLClickHandler) URL() string {
	return h.url
}

func (h *URLClickHandler) Text() string {
	text := h.url
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(strings.ToLower(text), scheme) {
			text = text[len(scheme):]
			break
		}
	}
	return strings.TrimSuffix(text, "/")
}
