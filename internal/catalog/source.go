package catalog

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resource extension for catalog documents
const (
	CatalogExtension = "json"
)

// FileSource resolves logical resource names against a list of bundle
// directories, first match wins. The directories are searched in order so an
// app-local override can shadow the packaged asset.
type FileSource struct {
	dirs []string
}

// NewFileSource creates a source over the given bundle directories.
func NewFileSource(dirs ...string) *FileSource {
	return &FileSource{dirs: dirs}
}

// Open reads the full contents of "<name>.<ext>" from the first bundle
// directory that contains it.
func (fs *FileSource) Open(name, ext string) ([]byte, error) {
	filename := name + "." + ext

	for _, dir := range fs.dirs {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read resource %s: %w", path, err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, filename)
}
