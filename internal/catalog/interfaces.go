package catalog

import (
	"github.com/recipekit/recipebox/internal/model"
)

// Loader defines the interface for the catalog service as consumed by the UI.
type Loader interface {
	SetUpdateCallback(func(Snapshot))
	Load(resourceName string) error
	LoadAsync(resourceName string)
	Recipes() []model.Recipe
	RecipeByID(id string) (model.Recipe, bool)
	State() model.LoadState
	LastError() error
}

// Source abstracts where catalog documents come from so the pipeline can be
// tested without a packaged bundle.
type Source interface {
	// Open locates a resource by logical name and extension and returns its
	// full contents. A missing resource wraps ErrResourceNotFound.
	Open(name, ext string) ([]byte, error)
}
