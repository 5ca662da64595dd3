package pbxproj

import (
	"fmt"
	"os"
	"strings"

	"github.com/redi-labs/xcsync/internal/platform"
)

// BackupSuffix is appended to the project file path for the pre-mutation copy.
const BackupSuffix = ".backup"

// Document holds the full text of a project.pbxproj loaded into memory.
// Mutations happen on the in-memory text; Save writes the file back only
// when something actually changed.
type Document struct {
	path    string
	content string
	changed bool
}

// Load reads the project file at path. A missing project file is the one
// fatal precondition of the whole sync flow.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file %s: %w", path, err)
	}
	return &Document{path: path, content: string(data)}, nil
}

// Path returns the on-disk path of the project file.
func (d *Document) Path() string { return d.path }

// Content returns the current (possibly mutated) text.
func (d *Document) Content() string { return d.content }

// Changed reports whether any insertion has been applied since Load.
func (d *Document) Changed() bool { return d.changed }

// Contains reports whether name appears anywhere in the project text.
// This is the heuristic "already registered" check: a plain substring
// match, not a structural one.
func (d *Document) Contains(name string) bool {
	return strings.Contains(d.content, name)
}

// Backup copies the on-disk project file to a .backup sibling and returns
// the backup path. Called before any mutation is written back.
func (d *Document) Backup() (string, error) {
	backupPath := d.path + BackupSuffix
	if err := platform.CopyFile(d.path, backupPath); err != nil {
		return "", fmt.Errorf("backing up project file: %w", err)
	}
	return backupPath, nil
}

// Save writes the mutated text back to the project file. It reports whether
// a write happened: an unchanged document is left untouched on disk.
func (d *Document) Save() (bool, error) {
	if !d.changed {
		return false, nil
	}
	if err := os.WriteFile(d.path, []byte(d.content), 0644); err != nil {
		return false, fmt.Errorf("writing project file %s: %w", d.path, err)
	}
	d.changed = false
	return true, nil
}
