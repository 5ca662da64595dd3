package syncfile

import "path/filepath"

// DefaultFileName is the sync manifest name looked up in the working directory.
const DefaultFileName = "xcsync.yaml"

// DefaultDestination is the simulator destination used when the manifest
// does not declare one.
const DefaultDestination = "platform=iOS Simulator,name=iPhone 16"

// File is one source file that must be registered in the Xcode project.
type File struct {
	// Path is relative to the project directory, e.g. "V5/Config/V5Config.swift".
	Path string `yaml:"path" json:"path"`
	// Name is the display name used in pbxproj comments and for the
	// already-registered check. Defaults to the path's base name.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// Syncfile is the parsed xcsync.yaml sync manifest.
type Syncfile struct {
	// ProjectDir is the directory containing the .xcodeproj bundle,
	// relative to the manifest's own directory.
	ProjectDir string `yaml:"project_dir" json:"project_dir"`
	// ProjectName names the .xcodeproj bundle (without extension).
	ProjectName string `yaml:"project_name" json:"project_name"`
	// Scheme is the xcodebuild scheme. Defaults to ProjectName.
	Scheme string `yaml:"scheme,omitempty" json:"scheme,omitempty"`
	// Destination is the xcodebuild -destination string.
	Destination string `yaml:"destination,omitempty" json:"destination,omitempty"`
	// Files lists the source files to register.
	Files []File `yaml:"files" json:"files"`

	// Dir is the directory containing the manifest itself, set by Parse.
	// All project paths resolve relative to it.
	Dir string `yaml:"-" json:"-"`
}

// XcodeprojPath returns the path to the .xcodeproj bundle, e.g. "Redi/Redi.xcodeproj".
func (s *Syncfile) XcodeprojPath() string {
	return filepath.Join(s.Dir, s.ProjectDir, s.ProjectName+".xcodeproj")
}

// ProjectFilePath returns the path to the project.pbxproj inside the bundle.
func (s *Syncfile) ProjectFilePath() string {
	return filepath.Join(s.XcodeprojPath(), "project.pbxproj")
}

// SourcePath returns the on-disk path of a candidate file, resolved against
// the project directory.
func (s *Syncfile) SourcePath(f File) string {
	return filepath.Join(s.Dir, s.ProjectDir, f.Path)
}

// DisplayName returns the file's display name, defaulting to the path's base name.
func (f File) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}
	return filepath.Base(f.Path)
}
