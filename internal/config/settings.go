package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage        = "app_language"
	KeyCatalogResource = "catalog_resource_name"
	KeyShowImages      = "show_images"
	KeyThumbnailHeight = "thumbnail_height"
	KeyLastRecipeID    = "last_recipe_id"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultCatalogResource = "Recipes"
	DefaultShowImages      = true
	DefaultThumbnailHeight = 96

	MinThumbnailHeight = 64
	MaxThumbnailHeight = 512
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetCatalogResource returns the logical name of the bundled catalog document
func (s *Settings) GetCatalogResource() string {
	name := s.app.Preferences().String(KeyCatalogResource)
	if name == "" {
		s.SetCatalogResource(DefaultCatalogResource)
		return DefaultCatalogResource
	}
	return name
}

// SetCatalogResource sets the catalog resource name
func (s *Settings) SetCatalogResource(name string) {
	if name == "" {
		name = DefaultCatalogResource
	}
	s.app.Preferences().SetString(KeyCatalogResource, name)
}

// GetShowImages returns whether recipe thumbnails are shown in the list
func (s *Settings) GetShowImages() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowImages, DefaultShowImages)
}

// SetShowImages sets whether recipe thumbnails are shown
func (s *Settings) SetShowImages(show bool) {
	s.app.Preferences().SetBool(KeyShowImages, show)
}

// GetThumbnailHeight returns the list thumbnail height in pixels
func (s *Settings) GetThumbnailHeight() int {
	value := s.app.Preferences().Int(KeyThumbnailHeight)
	if value <= 0 {
		s.SetThumbnailHeight(DefaultThumbnailHeight)
		return DefaultThumbnailHeight
	}
	return value
}

// SetThumbnailHeight sets the list thumbnail height, clamped to a sane range
func (s *Settings) SetThumbnailHeight(height int) {
	if height < MinThumbnailHeight {
		height = MinThumbnailHeight
	}
	if height > MaxThumbnailHeight {
		height = MaxThumbnailHeight
	}
	s.app.Preferences().SetInt(KeyThumbnailHeight, height)
}

// GetLastRecipeID returns the id of the recipe last opened in the detail view
func (s *Settings) GetLastRecipeID() string {
	return s.app.Preferences().String(KeyLastRecipeID)
}

// SetLastRecipeID remembers the recipe last opened in the detail view
func (s *Settings) SetLastRecipeID(id string) {
	s.app.Preferences().SetString(KeyLastRecipeID, id)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
