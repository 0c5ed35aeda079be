package processor

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Output formats.
const (
	FormatRaw  = "raw"
	FormatWebP = "webp"
)

const defaultQuality = 85

// encodeImage converts the downloaded bytes into the requested output format.
// FormatRaw returns data unchanged.
func encodeImage(data []byte, format string, quality int) ([]byte, error) {
	switch format {
	case "", FormatRaw:
		return data, nil
	case FormatWebP:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}

	img, src, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}

	if quality <= 0 || quality > 100 {
		quality = defaultQuality
	}

	log.Debug().
		Str("source_format", src).
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Int("quality", quality).
		Msg("Re-encoding map image as webp")

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: float32(quality)}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}

	return buf.Bytes(), nil
}
