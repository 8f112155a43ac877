// Copyright (c) 2025 Kenneth Jason.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logo

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/kennethjason07/hallticket-gndecb/testutil"
)

func TestDefault(t *testing.T) {
	l := Default()
	if l.Type != TypeJPG {
		t.Errorf("Expected JPG default logo, got %s", l.Type)
	}
	if !bytes.HasPrefix(l.Data, []byte{0xFF, 0xD8, 0xFF}) {
		t.Error("Expected default logo to be a JPEG stream")
	}

	// The bundled logo must itself pass through Load unchanged
	loaded, err := Load(l.Data)
	if err != nil {
		t.Fatalf("Load(default) failed: %v", err)
	}
	if loaded.Type != TypeJPG || !bytes.Equal(loaded.Data, l.Data) {
		t.Error("Expected default logo to load as-is")
	}
}

func TestDefaultAsLogoFile(t *testing.T) {
	// The bundled bytes are also accepted when configured as a logo path
	path := filepath.Join(t.TempDir(), "logo.jpg")
	if err := os.WriteFile(path, Default().Data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	l, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile(default) failed: %v", err)
	}
	if l.Type != TypeJPG {
		t.Errorf("Expected JPG, got %s", l.Type)
	}
}

func TestLoadJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		img.Set(x, x, color.RGBA{B: 255, A: 255})
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("jpeg.Encode failed: %v", err)
	}
	full := buf.Bytes()

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{name: "complete", data: full},
		// Scan data is not decoded; the header is enough to embed
		{name: "scan cut short", data: full[:len(full)-len(full)/4]},
		{name: "header only", data: full[:20], wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Load(tt.data)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if l.Type != TypeJPG || !bytes.Equal(l.Data, tt.data) {
				t.Error("Expected JPEG to pass through unchanged")
			}
		})
	}
}

func TestLoadPNG(t *testing.T) {
	l, err := Load(testutil.BuildPNG(t))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if l.Type != TypePNG {
		t.Errorf("Expected PNG, got %s", l.Type)
	}
	if _, err := png.Decode(bytes.NewReader(l.Data)); err != nil {
		t.Errorf("Re-encoded logo is not a valid PNG: %v", err)
	}
}

func TestLoadBMPConvertsToPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{G: 255, A: 255})
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatalf("bmp.Encode failed: %v", err)
	}

	l, err := Load(buf.Bytes())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if l.Type != TypePNG {
		t.Errorf("Expected BMP to be converted to PNG, got %s", l.Type)
	}
	decoded, err := png.Decode(bytes.NewReader(l.Data))
	if err != nil {
		t.Fatalf("Converted logo is not a valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 4 {
		t.Errorf("Expected 4x4 image, got %v", decoded.Bounds())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"empty", nil, ErrEmpty},
		{"garbage", []byte("definitely not an image"), ErrUnsupportedImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("truncated png", func(t *testing.T) {
		data := testutil.BuildPNG(t)
		if _, err := Load(data[:len(data)/2]); err == nil {
			t.Error("Expected error for truncated png")
		}
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	if err := os.WriteFile(path, testutil.BuildPNG(t), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	l, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if l.Type != TypePNG {
		t.Errorf("Expected PNG, got %s", l.Type)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}
