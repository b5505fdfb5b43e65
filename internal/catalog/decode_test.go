package catalog

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/recipekit/recipebox/internal/model"
)

const sampleDocument = `{
	"recipe": [
		{
			"id": "1",
			"name": "Tea",
			"description": "d",
			"tag": [],
			"ingredient": [],
			"step": [
				{"description": "Boil water"},
				{"description": "Steep tea"}
			],
			"image": "tea.png"
		},
		{
			"id": "2",
			"description": "d2",
			"tag": [],
			"ingredient": [],
			"step": [],
			"image": "x.png"
		}
	]
}`

func TestDecode(t *testing.T) {
	collection, err := Decode([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(collection.Recipes) != 2 {
		t.Fatalf("Expected 2 recipes, got %d", len(collection.Recipes))
	}

	first := collection.Recipes[0]
	if first.ID != "1" {
		t.Errorf("Expected id '1', got %q", first.ID)
	}
	if first.Name == nil || *first.Name != "Tea" {
		t.Errorf("Expected name 'Tea', got %v", first.Name)
	}

	steps := first.StepDescriptions()
	expectedSteps := []string{"Boil water", "Steep tea"}
	if !reflect.DeepEqual(steps, expectedSteps) {
		t.Errorf("Expected steps %v, got %v", expectedSteps, steps)
	}

	// Absent name must decode to nil, never to ""
	second := collection.Recipes[1]
	if second.Name != nil {
		t.Errorf("Expected absent name to decode to nil, got %q", *second.Name)
	}
}

func TestDecode_OptionalIngredientFields(t *testing.T) {
	tests := []struct {
		name     string
		document string
		check    func(t *testing.T, ing model.Ingredient)
	}{
		{
			name: "absent fields decode to nil",
			document: `{"recipe":[{"id":"1","name":"n","description":"d","tag":[],
				"ingredient":[{"name":"salt"}],"step":[],"image":"i"}]}`,
			check: func(t *testing.T, ing model.Ingredient) {
				if ing.Amount != nil || ing.Unit != nil || ing.Preparation != nil {
					t.Errorf("absent fields should be nil: %+v", ing)
				}
				if ing.Name == nil || *ing.Name != "salt" {
					t.Errorf("expected name 'salt', got %v", ing.Name)
				}
			},
		},
		{
			name: "null fields decode to nil",
			document: `{"recipe":[{"id":"1","name":"n","description":"d","tag":[],
				"ingredient":[{"amount":null,"unit":null,"name":"salt","preparation":null}],
				"step":[],"image":"i"}]}`,
			check: func(t *testing.T, ing model.Ingredient) {
				if ing.Amount != nil || ing.Unit != nil || ing.Preparation != nil {
					t.Errorf("null fields should be nil: %+v", ing)
				}
			},
		},
		{
			name: "empty string is preserved, not nil",
			document: `{"recipe":[{"id":"1","name":"n","description":"d","tag":[],
				"ingredient":[{"amount":"","name":"salt"}],"step":[],"image":"i"}]}`,
			check: func(t *testing.T, ing model.Ingredient) {
				if ing.Amount == nil || *ing.Amount != "" {
					t.Errorf("empty amount should decode to empty string pointer, got %v", ing.Amount)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collection, err := Decode([]byte(tt.document))
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if len(collection.Recipes) != 1 || len(collection.Recipes[0].Ingredients) != 1 {
				t.Fatalf("unexpected collection shape: %+v", collection)
			}
			tt.check(t, collection.Recipes[0].Ingredients[0])
		})
	}
}

func TestDecode_ExtraFieldsIgnored(t *testing.T) {
	document := `{"recipe":[{"id":"1","name":"n","description":"d","tag":[],
		"ingredient":[],"step":[],"image":"i","rating":5,"author":"x"}],"version":2}`

	collection, err := Decode([]byte(document))
	if err != nil {
		t.Fatalf("Extra fields should be ignored, got error: %v", err)
	}
	if len(collection.Recipes) != 1 {
		t.Fatalf("Expected 1 recipe, got %d", len(collection.Recipes))
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{
			name:     "truncated document",
			document: `{"recipe":[{"id":"1","name":"Tea"`,
		},
		{
			name:     "wrong envelope type",
			document: `{"recipe":"not-a-list"}`,
		},
		{
			name:     "wrong field type",
			document: `{"recipe":[{"id":1}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.document)); err == nil {
				t.Error("Expected decode error, got nil")
			}
		})
	}
}

func TestDecode_EmptyRecipeList(t *testing.T) {
	collection, err := Decode([]byte(`{"recipe":[]}`))
	if err != nil {
		t.Fatalf("Empty recipe list should not be an error, got %v", err)
	}
	if len(collection.Recipes) != 0 {
		t.Errorf("Expected empty collection, got %d recipes", len(collection.Recipes))
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	collection, err := Decode([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	encoded, err := json.Marshal(collection)
	if err != nil {
		t.Fatalf("Failed to re-encode collection: %v", err)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Failed to re-decode collection: %v", err)
	}

	if !reflect.DeepEqual(collection, decoded) {
		t.Errorf("Round-trip changed the collection:\nbefore: %+v\nafter:  %+v", collection, decoded)
	}
}

func TestFilter(t *testing.T) {
	name := func(s string) *string { return &s }

	tests := []struct {
		name        string
		collection  model.RecipeCollection
		expectedIDs []string
	}{
		{
			name: "drops unnamed recipes and preserves order",
			collection: model.RecipeCollection{Recipes: []model.Recipe{
				{ID: "1", Name: name("A")},
				{ID: "2"},
				{ID: "3", Name: name("C")},
				{ID: "4"},
				{ID: "5", Name: name("E")},
			}},
			expectedIDs: []string{"1", "3", "5"},
		},
		{
			name:        "empty collection yields empty catalog",
			collection:  model.RecipeCollection{},
			expectedIDs: []string{},
		},
		{
			name: "duplicate ids are passed through",
			collection: model.RecipeCollection{Recipes: []model.Recipe{
				{ID: "1", Name: name("A")},
				{ID: "1", Name: name("B")},
			}},
			expectedIDs: []string{"1", "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes := Filter(tt.collection)

			if len(recipes) != len(tt.expectedIDs) {
				t.Fatalf("Expected %d recipes, got %d", len(tt.expectedIDs), len(recipes))
			}

			for i, id := range tt.expectedIDs {
				if recipes[i].ID != id {
					t.Errorf("Recipe %d: expected id %q, got %q", i, id, recipes[i].ID)
				}
			}
		})
	}
}

func TestFilter_DoesNotMutateSource(t *testing.T) {
	name := "A"
	collection := model.RecipeCollection{Recipes: []model.Recipe{
		{ID: "1", Name: &name},
		{ID: "2"},
	}}

	Filter(collection)

	if len(collection.Recipes) != 2 {
		t.Errorf("Filter mutated the source collection: %d recipes left", len(collection.Recipes))
	}
}
