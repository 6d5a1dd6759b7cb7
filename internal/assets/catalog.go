// Package assets resolves asset refs against the asset directory.
package assets

import (
	"os"
	"path/filepath"
	"strings"
)

// Catalog resolves refs relative to Root. Refs never escape Root.
type Catalog struct {
	Root string
}

func New(root string) Catalog {
	if strings.TrimSpace(root) == "" {
		root = "assets"
	}
	return Catalog{Root: root}
}

// Path maps a ref to a file path. Returns false for refs that are empty or
// point outside the root.
func (c Catalog) Path(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" || filepath.IsAbs(ref) {
		return "", false
	}
	clean := filepath.Clean(filepath.FromSlash(ref))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.Join(c.Root, clean), true
}

func (c Catalog) Exists(ref string) bool {
	path, ok := c.Path(ref)
	if !ok {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
