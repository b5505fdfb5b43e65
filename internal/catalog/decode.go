package catalog

import (
	"encoding/json"

	"github.com/recipekit/recipebox/internal/model"
)

// Decode parses raw catalog document bytes into the typed collection. Fields
// not named in the schema are ignored; optional fields decode to nil when
// absent or null, never to an empty string.
func Decode(data []byte) (model.RecipeCollection, error) {
	var collection model.RecipeCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		return model.RecipeCollection{}, err
	}
	return collection, nil
}

// Filter retains only recipes whose name is present, preserving relative
// document order. Duplicate ids are passed through unchanged and the source
// collection is not mutated.
func Filter(collection model.RecipeCollection) []model.Recipe {
	recipes := make([]model.Recipe, 0, len(collection.Recipes))
	for _, recipe := range collection.Recipes {
		if recipe.HasName() {
			recipes = append(recipes, recipe)
		}
	}
	return recipes
}
