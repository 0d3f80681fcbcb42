// Package avatar draws the default round userpics shown for contacts
// without a photo.
package avatar

import (
	"image"
	"image/color"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/draw"
)

const baseSize = 64

// Top and bottom gradient stops of each palette entry.
var defaultColors = [][2]color.RGBA{
	{{0xff, 0x88, 0x5e, 0xff}, {0xff, 0x51, 0x6a, 0xff}},
	{{0xff, 0xcd, 0x6a, 0xff}, {0xff, 0xa8, 0x5c, 0xff}},
	{{0x82, 0xb1, 0xff, 0xff}, {0x66, 0x5f, 0xff, 0xff}},
	{{0xa0, 0xde, 0x7e, 0xff}, {0x54, 0xcb, 0x68, 0xff}},
	{{0x53, 0xed, 0xd6, 0xff}, {0x28, 0xc9, 0xb7, 0xff}},
	{{0x72, 0xd5, 0xfd, 0xff}, {0x2a, 0x9e, 0xf1, 0xff}},
	{{0xe0, 0xa2, 0xf3, 0xff}, {0xd6, 0x69, 0xed, 0xff}},
	{{0xff, 0x9a, 0xb8, 0xff}, {0xff, 0x6f, 0x91, 0xff}},
}

type cacheKey struct {
	index, w, h int
}

type Palette struct {
	bases []*image.RGBA
	cache *lru.Cache[cacheKey, *image.RGBA]
}

func New(cacheSize int) (*Palette, error) {
	if cacheSize <= 0 {
		cacheSize = 1
	}
	cache, err := lru.New[cacheKey, *image.RGBA](cacheSize)
	if err != nil {
		return nil, err
	}

	bases := make([]*image.RGBA, len(defaultColors))
	for i, stops := range defaultColors {
		bases[i] = gradient(stops[0], stops[1])
	}
	return &Palette{bases: bases, cache: cache}, nil
}

func (p *Palette) Count() int {
	return len(p.bases)
}

// Circled returns the palette entry scaled to w x h and clipped to a circle.
// The result is shared and must not be modified.
func (p *Palette) Circled(index, w, h int) image.Image {
	if w <= 0 || h <= 0 || len(p.bases) == 0 {
		return nil
	}
	index %= len(p.bases)
	if index < 0 {
		index += len(p.bases)
	}

	key := cacheKey{index: index, w: w, h: h}
	if img, ok := p.cache.Get(key); ok {
		return img
	}

	rect := image.Rect(0, 0, w, h)
	scaled := image.NewRGBA(rect)
	draw.BiLinear.Scale(scaled, rect, p.bases[index], p.bases[index].Bounds(), draw.Src, nil)

	out := image.NewRGBA(rect)
	draw.DrawMask(out, rect, scaled, image.Point{}, newCircle(w, h), image.Point{}, draw.Over)

	p.cache.Add(key, out)
	return out
}

func gradient(top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, baseSize, baseSize))
	for y := 0; y < baseSize; y++ {
		t := float64(y) / float64(baseSize-1)
		c := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 0xff,
		}
		for x := 0; x < baseSize; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// circle is an alpha mask with a one pixel soft edge.
type circle struct {
	w, h   int
	cx, cy float64
	r      float64
}

func newCircle(w, h int) *circle {
	return &circle{
		w:  w,
		h:  h,
		cx: float64(w) / 2,
		cy: float64(h) / 2,
		r:  math.Min(float64(w), float64(h)) / 2,
	}
}

func (c *circle) ColorModel() color.Model {
	return color.AlphaModel
}

func (c *circle) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.w, c.h)
}

func (c *circle) At(x, y int) color.Color {
	d := math.Hypot(float64(x)+0.5-c.cx, float64(y)+0.5-c.cy)
	coverage := c.r - d + 0.5
	switch {
	case coverage >= 1:
		return color.Alpha{A: 0xff}
	case coverage <= 0:
		return color.Alpha{}
	default:
		return color.Alpha{A: uint8(coverage * 0xff)}
	}
}
