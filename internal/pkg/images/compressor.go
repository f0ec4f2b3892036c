package images

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
)

// Compressor recompresses uploaded images: anything wider than MaxWidth is
// scaled down (never up) and re-encoded at the configured quality.
type Compressor struct {
	maxWidth int
	quality  int
}

func NewCompressor(maxWidth, quality int) *Compressor {
	if maxWidth <= 0 {
		maxWidth = 1920
	}
	if quality <= 0 || quality > 100 {
		quality = 80
	}
	return &Compressor{maxWidth: maxWidth, quality: quality}
}

// Compress decodes, resizes and re-encodes the image. The returned bytes keep
// the original format.
func (c *Compressor) Compress(data []byte, contentType string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = c.Fit(img)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: c.quality})
	case "png":
		err = png.Encode(&buf, img)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	// Recompression can lose against an already optimized source.
	if buf.Len() >= len(data) {
		return data, nil
	}
	return buf.Bytes(), nil
}

// Fit scales the image down to the configured max width, preserving aspect
// ratio. Images already within bounds are returned unchanged.
func (c *Compressor) Fit(img image.Image) image.Image {
	if img.Bounds().Dx() <= c.maxWidth {
		return img
	}
	return imaging.Resize(img, c.maxWidth, 0, imaging.Lanczos)
}
