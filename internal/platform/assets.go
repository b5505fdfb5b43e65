package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// Asset directory name inside the app bundle
const (
	AssetsDirName = "assets"
)

// Image extensions tried when the catalog names an image without one
var (
	ImageExtensions = []string{".png", ".jpg", ".jpeg"}
)

// AssetSearchPaths returns the directories searched for bundled assets, in
// priority order: next to the executable, the executable's assets/ subdir,
// the working directory, and its assets/ subdir. Mobile bundles unpack
// assets next to the binary; desktop dev runs find them in the working dir.
func AssetSearchPaths() []string {
	paths := make([]string, 0, 4)

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths, exeDir, filepath.Join(exeDir, AssetsDirName))
	}

	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, wd, filepath.Join(wd, AssetsDirName))
	}

	return paths
}

// FindAsset locates "<name>.<ext>" in the given directories, first match
// wins. Pass the result of AssetSearchPaths for the standard lookup.
func FindAsset(dirs []string, name, ext string) (string, error) {
	filename := name + "." + ext

	for _, dir := range dirs {
		path := filepath.Join(dir, filename)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("asset not found: %s", filename)
}

// FindImageAsset locates an image asset by name. Names that already carry an
// extension are looked up as-is; bare names are tried with the known image
// extensions.
func FindImageAsset(dirs []string, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty image asset name")
	}

	if ext := filepath.Ext(name); ext != "" {
		base := name[:len(name)-len(ext)]
		return FindAsset(dirs, base, ext[1:])
	}

	for _, ext := range ImageExtensions {
		if path, err := FindAsset(dirs, name, ext[1:]); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("image asset not found: %s", name)
}
