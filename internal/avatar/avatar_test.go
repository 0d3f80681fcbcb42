package avatar

import (
	"image"
	"testing"

	"github.com/orgball2608/inline-bot-layout/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ layout.Userpics = (*Palette)(nil)

func TestPalette_Circled(t *testing.T) {
	palette, err := New(8)
	require.NoError(t, err)
	assert.Equal(t, 8, palette.Count())

	img := palette.Circled(3, 40, 40)
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 40, 40), img.Bounds())

	_, _, _, cornerAlpha := img.At(0, 0).RGBA()
	_, _, _, centerAlpha := img.At(20, 20).RGBA()
	assert.Zero(t, cornerAlpha)
	assert.Equal(t, uint32(0xffff), centerAlpha)
}

func TestPalette_CachesBySize(t *testing.T) {
	palette, err := New(8)
	require.NoError(t, err)

	first := palette.Circled(1, 32, 32)
	assert.Same(t, first, palette.Circled(1, 32, 32))
	assert.Same(t, first, palette.Circled(9, 32, 32), "index wraps around the palette")
	assert.NotSame(t, first, palette.Circled(1, 48, 48))
}

func TestPalette_EntriesDiffer(t *testing.T) {
	palette, err := New(8)
	require.NoError(t, err)

	a := palette.Circled(0, 16, 16).At(8, 8)
	b := palette.Circled(2, 16, 16).At(8, 8)

	assert.NotEqual(t, a, b)
}

func TestPalette_InvalidSize(t *testing.T) {
	palette, err := New(0)
	require.NoError(t, err)

	assert.Nil(t, palette.Circled(0, 0, 10))
	assert.Nil(t, palette.Circled(0, 10, -1))
	assert.NotNil(t, palette.Circled(-1, 10, 10))
}
