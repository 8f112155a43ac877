// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logo

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/kennethjason07/hallticket-gndecb/models"
)

// Image types understood by the PDF backend
const (
	TypeJPG = "JPG"
	TypePNG = "PNG"
)

var (
	ErrEmpty            = errors.New("logo is empty")
	ErrUnsupportedImage = errors.New("unsupported logo image")
)

//go:embed assets/logo.jpg
var defaultJPG []byte

// Default returns the bundled institution logo.
func Default() *models.Logo {
	return &models.Logo{Data: defaultJPG, Type: TypeJPG}
}

// Load decodes an uploaded image. JPEGs are embedded as-is once their
// header parses, the same check the PDF backend applies; every other format
// (png, gif, bmp, tiff, webp) is fully decoded and re-encoded as an 8-bit PNG.
func Load(data []byte) (*models.Logo, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedImage
		}
		return nil, fmt.Errorf("failed to decode logo: %w", err)
	}

	if format == "jpeg" {
		if cfg.Width == 0 || cfg.Height == 0 {
			return nil, fmt.Errorf("%w: jpeg has no dimensions", ErrUnsupportedImage)
		}
		return &models.Logo{Data: data, Type: TypeJPG}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode logo: %w", err)
	}

	encoded, err := encodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode %s logo: %w", format, err)
	}
	return &models.Logo{Data: encoded, Type: TypePNG}, nil
}

// LoadFile reads and decodes a logo from disk.
func LoadFile(path string) (*models.Logo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read logo file: %w", err)
	}
	return Load(data)
}

func encodePNG(img image.Image) ([]byte, error) {
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, nrgba); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
