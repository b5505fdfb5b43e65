package model

import "strings"

// Recipe represents a single recipe as found in the bundled catalog document.
// Name is a pointer because the document may omit it entirely; a nil Name
// means "absent", which is distinct from an empty string and excludes the
// recipe from the published catalog.
type Recipe struct {
	ID          string       `json:"id"`
	Name        *string      `json:"name,omitempty"`
	Description string       `json:"description"`
	Tags        []string     `json:"tag"`
	Ingredients []Ingredient `json:"ingredient"`
	Steps       []RecipeStep `json:"step"`
	Image       string       `json:"image"` // local asset name, not a URL
}

// Ingredient represents a single ingredient line. All fields are optional in
// the source document and decode to nil when absent or null.
type Ingredient struct {
	Amount      *string `json:"amount,omitempty"`
	Unit        *string `json:"unit,omitempty"`
	Name        *string `json:"name,omitempty"`
	Preparation *string `json:"preparation,omitempty"`
}

// RecipeStep represents one instruction in a recipe. Order within the Steps
// slice is the cooking order and must be preserved as decoded.
type RecipeStep struct {
	Description string `json:"description"`
}

// RecipeCollection is the decode envelope of the catalog document: a single
// field holding the recipes in document order.
type RecipeCollection struct {
	Recipes []Recipe `json:"recipe"`
}

// HasName returns true if the recipe carries a name in the source document.
// Recipes without a name are not displayable.
func (r *Recipe) HasName() bool {
	return r.Name != nil
}

// DisplayTitle returns the recipe name, falling back to the id when the
// name is absent.
func (r *Recipe) DisplayTitle() string {
	if r.Name != nil {
		return *r.Name
	}
	return r.ID
}

// TagLine returns the recipe tags joined for single-line display.
func (r *Recipe) TagLine() string {
	return strings.Join(r.Tags, ", ")
}

// StepDescriptions returns the ordered step texts for the step viewer.
func (r *Recipe) StepDescriptions() []string {
	descriptions := make([]string, 0, len(r.Steps))
	for _, step := range r.Steps {
		descriptions = append(descriptions, step.Description)
	}
	return descriptions
}

// Display returns the ingredient formatted as "amount unit name, preparation"
// with absent parts skipped.
func (i *Ingredient) Display() string {
	parts := make([]string, 0, 3)
	if i.Amount != nil {
		parts = append(parts, *i.Amount)
	}
	if i.Unit != nil {
		parts = append(parts, *i.Unit)
	}
	if i.Name != nil {
		parts = append(parts, *i.Name)
	}

	line := strings.Join(parts, " ")
	if i.Preparation != nil && *i.Preparation != "" {
		if line == "" {
			return *i.Preparation
		}
		return line + ", " + *i.Preparation
	}
	return line
}
