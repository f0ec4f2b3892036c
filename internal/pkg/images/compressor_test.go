package images

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}))
	return buf.Bytes()
}

func TestFitCapsWidth(t *testing.T) {
	c := NewCompressor(800, 80)

	wide := image.NewRGBA(image.Rect(0, 0, 1600, 900))
	fitted := c.Fit(wide)

	assert.Equal(t, 800, fitted.Bounds().Dx())
	assert.Equal(t, 450, fitted.Bounds().Dy(), "aspect ratio is preserved")
}

func TestFitNeverUpsizes(t *testing.T) {
	c := NewCompressor(1920, 80)

	small := image.NewRGBA(image.Rect(0, 0, 400, 300))
	fitted := c.Fit(small)

	assert.Equal(t, 400, fitted.Bounds().Dx())
	assert.Equal(t, 300, fitted.Bounds().Dy())
}

func TestCompressResizesOversizedImage(t *testing.T) {
	c := NewCompressor(800, 70)

	data := testJPEG(t, 1600, 1200)
	compressed, err := c.Compress(data, "image/jpeg")
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(compressed))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.LessOrEqual(t, img.Bounds().Dx(), 800)
}

func TestCompressRejectsNonImage(t *testing.T) {
	c := NewCompressor(800, 80)

	_, err := c.Compress([]byte("not an image"), "image/jpeg")
	assert.Error(t, err)
}

func TestCompressKeepsSmallerOriginal(t *testing.T) {
	c := NewCompressor(1920, 100)

	// Tiny image, nothing to resize; re-encoding at quality 100 cannot win.
	data := testJPEG(t, 10, 10)
	compressed, err := c.Compress(data, "image/jpeg")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(compressed), len(data))
}
