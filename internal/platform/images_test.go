package platform

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, dir string, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	path := filepath.Join(dir, "fixture.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create fixture: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatalf("Failed to encode fixture: %v", err)
	}
	return path
}

func TestLoadThumbnail(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 200, 100)

	thumb, err := LoadThumbnail(path, 50)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	bounds := thumb.Bounds()
	if bounds.Dy() != 50 {
		t.Errorf("Expected height 50, got %d", bounds.Dy())
	}

	// 2:1 aspect ratio must be preserved
	if bounds.Dx() != 100 {
		t.Errorf("Expected width 100 to preserve aspect ratio, got %d", bounds.Dx())
	}
}

func TestLoadThumbnail_ClampsHeight(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), 10, 10)

	thumb, err := LoadThumbnail(path, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if thumb.Bounds().Dy() != MinThumbnailHeight {
		t.Errorf("Expected height clamped to %d, got %d", MinThumbnailHeight, thumb.Bounds().Dy())
	}
}

func TestLoadThumbnail_MissingFile(t *testing.T) {
	_, err := LoadThumbnail(filepath.Join(t.TempDir(), "nope.png"), 50)
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadThumbnail_NotAnImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	if _, err := LoadThumbnail(path, 50); err == nil {
		t.Error("Expected decode error for non-image file")
	}
}

func TestSaveThumbnail(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, 40, 40)

	thumb, err := LoadThumbnail(src, 20)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tests := []struct {
		name     string
		filename string
		expectOK bool
	}{
		{"png output", "out.png", true},
		{"jpeg output", "out.jpg", true},
		{"unsupported format", "out.gif", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SaveThumbnail(thumb, filepath.Join(dir, tt.filename))
			if tt.expectOK && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if !tt.expectOK && err == nil {
				t.Error("Expected error for unsupported format")
			}
		})
	}
}
