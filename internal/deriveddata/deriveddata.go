// Package deriveddata evicts Xcode's DerivedData build caches for a project.
// Eviction is name-based: any entry under the DerivedData root whose name
// contains the project name is removed. Xcode derives cache directory names
// from the project name plus a hash, so this is coarse but sufficient to
// force a clean rebuild.
package deriveddata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultRoot returns Xcode's DerivedData directory under the user's home.
func DefaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("Library", "Developer", "Xcode", "DerivedData")
	}
	return filepath.Join(home, "Library", "Developer", "Xcode", "DerivedData")
}

// Clean removes every entry under root whose name contains match and returns
// the removed names. A missing root is not an error: there is nothing to evict.
func Clean(root, match string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading derived data root %s: %w", root, err)
	}

	var removed []string
	for _, entry := range entries {
		if !strings.Contains(entry.Name(), match) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(root, entry.Name())); err != nil {
			return removed, fmt.Errorf("removing %s: %w", entry.Name(), err)
		}
		removed = append(removed, entry.Name())
	}
	return removed, nil
}
