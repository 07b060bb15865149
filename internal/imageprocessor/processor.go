package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// ThumbnailSize is the bounding box gallery thumbnails are fitted into.
const ThumbnailSize = 400

// Processor produces JPEG thumbnails for uploaded photos.
type Processor struct {
	quality int
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{quality: quality}
}

// Thumbnail decodes the image, fits it into a ThumbnailSize box preserving
// aspect ratio, and re-encodes it as JPEG.
func (p *Processor) Thumbnail(reader io.Reader) (io.Reader, error) {
	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := imaging.Fit(img, ThumbnailSize, ThumbnailSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(p.quality)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return &buf, nil
}

// Validate confirms the payload decodes as an image and returns its bounds.
func (p *Processor) Validate(reader io.Reader) (image.Rectangle, error) {
	img, err := imaging.Decode(reader)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("not a valid image: %w", err)
	}
	return img.Bounds(), nil
}
