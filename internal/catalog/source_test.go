package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSource_Open(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`{"recipe":[]}`)
	if err := os.WriteFile(filepath.Join(dir, "Recipes.json"), content, 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	source := NewFileSource(dir)

	data, err := source.Open("Recipes", "json")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(data) != string(content) {
		t.Errorf("Expected %q, got %q", content, data)
	}
}

func TestFileSource_OpenMissing(t *testing.T) {
	source := NewFileSource(t.TempDir())

	_, err := source.Open("Recipes", "json")
	if err == nil {
		t.Fatal("Expected error for missing resource")
	}
	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("Expected ErrResourceNotFound, got %v", err)
	}
}

func TestFileSource_FirstDirectoryWins(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	if err := os.WriteFile(filepath.Join(first, "Recipes.json"), []byte("first"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(second, "Recipes.json"), []byte("second"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	source := NewFileSource(first, second)

	data, err := source.Open("Recipes", "json")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(data) != "first" {
		t.Errorf("Expected contents from first directory, got %q", data)
	}
}
