package pbxproj

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// writeSource creates a fake source file on disk and returns its path.
func writeSource(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("// swift\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func loadFixture(t *testing.T) *Document {
	t.Helper()
	path, _ := fixtureProject(t)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	return doc
}

func TestRegister_InsertsThreeRecords(t *testing.T) {
	doc := loadFixture(t)
	patcher := NewPatcher(doc)

	status, err := patcher.Register(Candidate{
		Path:     "V5/Config/V5Config.swift",
		Name:     "V5Config.swift",
		DiskPath: writeSource(t, "V5Config.swift"),
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if status != StatusAdded {
		t.Fatalf("status = %v, want StatusAdded", status)
	}

	content := doc.Content()

	if got := strings.Count(content, "/* V5Config.swift */ = {isa = PBXFileReference"); got != 1 {
		t.Errorf("file-reference records = %d, want 1", got)
	}
	if got := strings.Count(content, "/* V5Config.swift in Sources */ = {isa = PBXBuildFile"); got != 1 {
		t.Errorf("build-file records = %d, want 1", got)
	}
	if got := strings.Count(content, "/* V5Config.swift in Sources */,"); got != 1 {
		t.Errorf("sources-list entries = %d, want 1", got)
	}

	// The file-reference record carries the relative path.
	if !strings.Contains(content, "path = V5/Config/V5Config.swift;") {
		t.Error("file-reference record is missing the relative path")
	}

	// The build-file record references the file-reference identifier.
	refLine := regexp.MustCompile(`([0-9A-F]{24}) /\* V5Config\.swift \*/ = \{isa = PBXFileReference`).FindStringSubmatch(content)
	if refLine == nil {
		t.Fatal("no well-formed file-reference identifier found")
	}
	if !strings.Contains(content, "fileRef = "+refLine[1]+" /* V5Config.swift */") {
		t.Error("build-file record does not reference the file-reference identifier")
	}

	// Records land inside their sections and the Sources files list.
	if strings.Index(content, "/* V5Config.swift */ = {isa") > strings.Index(content, fileRefSectionEnd) {
		t.Error("file-reference record inserted after the section end marker")
	}
	filesOpen := strings.Index(content, "files = (")
	filesClose := strings.Index(content[filesOpen:], ");") + filesOpen
	entry := strings.Index(content, "/* V5Config.swift in Sources */,")
	if entry < filesOpen || entry > filesClose {
		t.Error("sources-list entry is outside the files list")
	}
}

func TestRegister_SecondRunIsNoop(t *testing.T) {
	doc := loadFixture(t)
	patcher := NewPatcher(doc)

	c := Candidate{
		Path:     "V5/Config/V5Config.swift",
		Name:     "V5Config.swift",
		DiskPath: writeSource(t, "V5Config.swift"),
	}

	if status, err := patcher.Register(c); err != nil || status != StatusAdded {
		t.Fatalf("first Register = (%v, %v), want (StatusAdded, nil)", status, err)
	}
	before := doc.Content()

	status, err := patcher.Register(c)
	if err != nil {
		t.Fatalf("second Register error: %v", err)
	}
	if status != StatusAlreadyRegistered {
		t.Errorf("second status = %v, want StatusAlreadyRegistered", status)
	}
	if doc.Content() != before {
		t.Error("second Register mutated the document")
	}
}

func TestRegister_SkipsFileMissingFromDisk(t *testing.T) {
	doc := loadFixture(t)
	patcher := NewPatcher(doc)
	before := doc.Content()

	status, err := patcher.Register(Candidate{
		Path:     "V5/Views/V5MainView.swift",
		Name:     "V5MainView.swift",
		DiskPath: filepath.Join(t.TempDir(), "V5MainView.swift"),
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if status != StatusNotOnDisk {
		t.Errorf("status = %v, want StatusNotOnDisk", status)
	}
	if doc.Content() != before {
		t.Error("document mutated for a candidate missing from disk")
	}
	if doc.Changed() {
		t.Error("Changed() = true for a skipped candidate")
	}
}

func TestRegister_MissingMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.pbxproj")
	if err := os.WriteFile(path, []byte("not a pbxproj"), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	_, err = NewPatcher(doc).Register(Candidate{
		Path:     "V5/Config/V5Config.swift",
		Name:     "V5Config.swift",
		DiskPath: writeSource(t, "V5Config.swift"),
	})
	if err == nil {
		t.Fatal("expected error for project without section markers, got nil")
	}
	if doc.Changed() {
		t.Error("document marked changed after a failed insertion")
	}
}

func TestApply_MixedCandidates(t *testing.T) {
	doc := loadFixture(t)
	patcher := NewPatcher(doc)

	candidates := []Candidate{
		{Path: "AppDelegate.swift", Name: "AppDelegate.swift", DiskPath: writeSource(t, "AppDelegate.swift")},
		{Path: "V5/Config/V5Config.swift", Name: "V5Config.swift", DiskPath: writeSource(t, "V5Config.swift")},
		{Path: "V5/Views/V5MainView.swift", Name: "V5MainView.swift", DiskPath: filepath.Join(t.TempDir(), "gone.swift")},
	}

	var out bytes.Buffer
	added, err := patcher.Apply(&out, candidates)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}

	report := out.String()
	for _, want := range []string{
		"[ OK ] AppDelegate.swift already in project",
		"[ ADD] V5Config.swift",
		"[SKIP] V5MainView.swift not on disk",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q\nreport:\n%s", want, report)
		}
	}
}

func TestIdentifierPool(t *testing.T) {
	doc := loadFixture(t)
	pool := newIdentifierPool(doc.Content())

	// Seeded with the fixture's identifiers.
	if _, found := pool.seen["2A1111111111111111111111"]; !found {
		t.Error("pool not seeded with existing identifiers")
	}

	hex24 := regexp.MustCompile(`^[0-9A-F]{24}$`)
	generated := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := pool.Generate()
		if !hex24.MatchString(id) {
			t.Fatalf("identifier %q is not 24 uppercase hex characters", id)
		}
		if _, dup := generated[id]; dup {
			t.Fatalf("duplicate identifier %q", id)
		}
		generated[id] = struct{}{}
	}
}
