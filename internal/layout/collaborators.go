package layout

import (
	"context"
	"image"
)

//go:generate go run go.uber.org/mock/mockgen -source=collaborators.go -destination=mocks/mock.go -package=mocks

// Repainter schedules a repaint of one item on the next frame.
type Repainter interface {
	RepaintItem(item Item)
}

// LinkOpener performs the navigation behind a URL click handler.
type LinkOpener interface {
	OpenURL(ctx context.Context, url string) error
}

// Userpics provides the default avatar palette used for contacts.
type Userpics interface {
	Count() int
	// Circled returns the palette entry at index rendered as a circle of the given size.
	Circled(index, width, height int) image.Image
}
