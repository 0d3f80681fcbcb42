package domain

type (
	DocumentID uint64
	PhotoID    uint64
)

//go:generate go run go.uber.org/mock/mockgen -source=media.go -destination=mocks/mock.go -package=mocks

// Image is one quality tier of a loadable picture.
type Image interface {
	IsNull() bool
	// Load requests the image asynchronously and returns immediately.
	Load()
	Loaded() bool
}

// Document is a shared file handle: gif, sticker, audio or generic file.
type Document interface {
	ID() DocumentID
	Thumb() Image
	IsSticker() bool
	Load()
	Loaded() bool
}

// Photo is a shared picture handle with a thumb and a medium tier.
type Photo interface {
	ID() PhotoID
	Thumb() Image
	Medium() Image
}

// IsNullImage reports whether img is absent, including a typed nil.
func IsNullImage(img Image) bool {
	return img == nil || img.IsNull()
}
