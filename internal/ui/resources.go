package ui

import (
	"bytes"
	"image/png"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/recipekit/recipebox/internal/platform"
)

const (
	AppIcon = "recipebox.png"
)

// LoadLogoResource loads the app logo from the bundle directories
func LoadLogoResource() (fyne.Resource, error) {
	path, err := platform.FindImageAsset(platform.AssetSearchPaths(), AppIcon)
	if err != nil {
		return nil, err
	}
	return fyne.LoadResourceFromPath(path)
}

// LoadRecipeImage loads a recipe's image asset by the name stored in the
// catalog document. The name is a local asset name, not a URL.
func LoadRecipeImage(imageName string) (fyne.Resource, error) {
	path, err := platform.FindImageAsset(platform.AssetSearchPaths(), imageName)
	if err != nil {
		return nil, err
	}
	return fyne.LoadResourceFromPath(path)
}

// LoadRecipeThumbnail loads a recipe's image scaled to the given row height.
// The full-size asset stays on disk; only the scaled copy is held in memory.
func LoadRecipeThumbnail(imageName string, height int) (fyne.Resource, error) {
	path, err := platform.FindImageAsset(platform.AssetSearchPaths(), imageName)
	if err != nil {
		return nil, err
	}

	img, err := platform.LoadThumbnail(path, uint(height))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return fyne.NewStaticResource(filepath.Base(path), buf.Bytes()), nil
}
