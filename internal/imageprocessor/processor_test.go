package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: uint8(x % 256), A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestThumbnailFitsBoundingBox(t *testing.T) {
	p := NewProcessor(85)

	out, err := p.Thumbnail(testImage(t, 1600, 800))
	require.NoError(t, err)

	thumb, err := imaging.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, ThumbnailSize, thumb.Bounds().Dx())
	assert.Equal(t, ThumbnailSize/2, thumb.Bounds().Dy())
}

func TestThumbnailSmallImageNotUpscaled(t *testing.T) {
	p := NewProcessor(85)

	out, err := p.Thumbnail(testImage(t, 100, 50))
	require.NoError(t, err)

	thumb, err := imaging.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 100, thumb.Bounds().Dx())
}

func TestValidateRejectsGarbage(t *testing.T) {
	p := NewProcessor(85)
	_, err := p.Validate(strings.NewReader("definitely not an image"))
	assert.Error(t, err)
}
