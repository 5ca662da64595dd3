package syncfile

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Parse reads a sync manifest, applies defaults, and checks the fields the
// rest of the tool depends on. Schema validation is separate (see Validate);
// Parse only enforces what would make later steps misbehave.
func Parse(path string) (*Syncfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sync manifest %s: %w", path, err)
	}

	var s Syncfile
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing sync manifest %s: %w", path, err)
	}

	if s.ProjectDir == "" {
		return nil, fmt.Errorf("sync manifest %s: project_dir is required", path)
	}
	if s.ProjectName == "" {
		return nil, fmt.Errorf("sync manifest %s: project_name is required", path)
	}
	for i, f := range s.Files {
		if f.Path == "" {
			return nil, fmt.Errorf("sync manifest %s: files[%d] has no path", path, i)
		}
	}

	s.Dir = filepath.Dir(path)
	s.applyDefaults()
	return &s, nil
}

// applyDefaults fills the optional fields. The scheme falls back to the
// project name. Destination is left empty here: user config may supply one
// before the built-in default applies, which is resolved at build time.
func (s *Syncfile) applyDefaults() {
	if s.Scheme == "" {
		s.Scheme = s.ProjectName
	}
}
