package pbxproj

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/redi-labs/xcsync/internal/platform"
)

// Section-end markers the insertions anchor on. Xcode writes these on every
// project it touches, so their absence means the file is not a pbxproj we
// know how to patch.
const (
	fileRefSectionEnd   = "/* End PBXFileReference section */"
	buildFileSectionEnd = "/* End PBXBuildFile section */"
)

// sourcesFilesPattern locates the files list of a Sources build phase:
// the block opened by "/* Sources */ = {" up to its "files = (" list.
var sourcesFilesPattern = regexp.MustCompile(`(/\* Sources \*/ = \{[^}]*files = \()([^)]*)`)

// Candidate is one source file that should be registered in the project.
type Candidate struct {
	Path     string // path recorded in the project, relative to the project dir
	Name     string // display name used in record comments and the presence check
	DiskPath string // where the file lives on disk
}

// Status is the outcome of registering a single candidate.
type Status int

const (
	// StatusAdded means the three records were inserted.
	StatusAdded Status = iota
	// StatusAlreadyRegistered means the display name was found in the
	// project text and the candidate was skipped.
	StatusAlreadyRegistered
	// StatusNotOnDisk means the candidate file is absent from disk and
	// was skipped without touching the project.
	StatusNotOnDisk
)

// Patcher inserts missing source file records into a Document.
type Patcher struct {
	doc *Document
	ids *identifierPool
}

// NewPatcher creates a Patcher for doc, seeding identifier generation with
// the identifiers already present in the document.
func NewPatcher(doc *Document) *Patcher {
	return &Patcher{doc: doc, ids: newIdentifierPool(doc.content)}
}

// Register ensures a single candidate is present in the project. Candidates
// absent from disk or already named in the project text are skipped.
func (p *Patcher) Register(c Candidate) (Status, error) {
	if !platform.FileExists(c.DiskPath) {
		return StatusNotOnDisk, nil
	}
	if p.doc.Contains(c.Name) {
		return StatusAlreadyRegistered, nil
	}
	if err := p.addSourceFile(c.Path, c.Name); err != nil {
		return 0, fmt.Errorf("registering %s: %w", c.Name, err)
	}
	return StatusAdded, nil
}

// Apply runs Register over every candidate, reporting progress to w.
// It returns the number of files added.
func (p *Patcher) Apply(w io.Writer, candidates []Candidate) (int, error) {
	added := 0
	for _, c := range candidates {
		status, err := p.Register(c)
		if err != nil {
			return added, err
		}
		switch status {
		case StatusAdded:
			added++
			fmt.Fprintf(w, "  [ ADD] %s\n", c.Name)
		case StatusAlreadyRegistered:
			fmt.Fprintf(w, "  [ OK ] %s already in project\n", c.Name)
		case StatusNotOnDisk:
			fmt.Fprintf(w, "  [SKIP] %s not on disk\n", c.Name)
		}
	}
	return added, nil
}

// addSourceFile inserts the three records for one file: a PBXFileReference
// before the file-reference section end, a PBXBuildFile before the
// build-file section end, and an entry appended to the Sources build
// phase's files list. The document is only mutated if all three anchors
// are found.
func (p *Patcher) addSourceFile(path, name string) error {
	refID := p.ids.Generate()
	buildID := p.ids.Generate()

	content := p.doc.content

	fileRef := fmt.Sprintf("\t\t%s /* %s */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = %s; sourceTree = \"<group>\"; };\n",
		refID, name, path)
	content, err := insertBefore(content, fileRefSectionEnd, fileRef)
	if err != nil {
		return err
	}

	buildFile := fmt.Sprintf("\t\t%s /* %s in Sources */ = {isa = PBXBuildFile; fileRef = %s /* %s */; };\n",
		buildID, name, refID, name)
	content, err = insertBefore(content, buildFileSectionEnd, buildFile)
	if err != nil {
		return err
	}

	if !sourcesFilesPattern.MatchString(content) {
		return fmt.Errorf("no Sources build phase with a files list found")
	}
	entry := "\n\t\t\t\t" + buildID + " /* " + name + " in Sources */,"
	content = sourcesFilesPattern.ReplaceAllString(content, "${1}${2}"+entry)

	p.doc.content = content
	p.doc.changed = true
	return nil
}

// insertBefore inserts text immediately before the first occurrence of marker.
func insertBefore(content, marker, text string) (string, error) {
	idx := strings.Index(content, marker)
	if idx < 0 {
		return "", fmt.Errorf("marker %q not found in project file", marker)
	}
	return content[:idx] + text + content[idx:], nil
}
