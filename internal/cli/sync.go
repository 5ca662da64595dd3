package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/redi-labs/xcsync/internal/config"
	"github.com/redi-labs/xcsync/internal/deriveddata"
	"github.com/redi-labs/xcsync/internal/pbxproj"
	"github.com/redi-labs/xcsync/internal/syncfile"
	"github.com/redi-labs/xcsync/internal/xcodebuild"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Register missing sources, clean caches, and build",
	Long: `Run the full sync pipeline: register any source files from the manifest
that are missing from the Xcode project, evict the project's DerivedData
caches, and build with xcodebuild.

The process exit code follows the build: a failed build exits with
xcodebuild's own exit code. A missing project.pbxproj exits with code 1.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	s, err := loadSyncfile()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Syncing %s (%s)\n", s.ProjectName, s.ProjectFilePath())

	if _, err := patchProject(out, s, false); err != nil {
		return err
	}
	if err := cleanCaches(out, s); err != nil {
		return err
	}
	return buildProject(cmd.Context(), out, s)
}

// candidates turns the manifest's file entries into patcher candidates.
func candidates(s *syncfile.Syncfile) []pbxproj.Candidate {
	result := make([]pbxproj.Candidate, 0, len(s.Files))
	for _, f := range s.Files {
		result = append(result, pbxproj.Candidate{
			Path:     f.Path,
			Name:     f.DisplayName(),
			DiskPath: s.SourcePath(f),
		})
	}
	return result
}

// patchProject loads the project file, backs it up, applies the candidate
// insertions, and writes the file back if anything changed. With dryRun the
// backup and write-back are skipped and only the report is printed.
func patchProject(out io.Writer, s *syncfile.Syncfile, dryRun bool) (int, error) {
	doc, err := pbxproj.Load(s.ProjectFilePath())
	if err != nil {
		return 0, err
	}

	if !dryRun {
		backupPath, err := doc.Backup()
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(out, "Created backup: %s\n", backupPath)
	}

	added, err := pbxproj.NewPatcher(doc).Apply(out, candidates(s))
	if err != nil {
		return added, err
	}

	switch {
	case dryRun && added > 0:
		fmt.Fprintf(out, "\nDry run: %d file(s) would be added\n", added)
	case dryRun:
		fmt.Fprintf(out, "\nDry run: no files need adding\n")
	case added > 0:
		if _, err := doc.Save(); err != nil {
			return added, err
		}
		fmt.Fprintf(out, "\nUpdated project with %d file(s)\n", added)
	default:
		fmt.Fprintf(out, "\nNo files needed adding\n")
	}
	return added, nil
}

// cleanCaches evicts the project's DerivedData entries.
func cleanCaches(out io.Writer, s *syncfile.Syncfile) error {
	root := config.Get(config.KeyDerivedDataRoot)
	if root == "" {
		root = deriveddata.DefaultRoot()
	}

	fmt.Fprintf(out, "\nCleaning DerivedData under %s\n", root)
	removed, err := deriveddata.Clean(root, s.ProjectName)
	if err != nil {
		return fmt.Errorf("cleaning derived data: %w", err)
	}
	for _, name := range removed {
		fmt.Fprintf(out, "  [ RM ] %s\n", name)
	}
	if len(removed) == 0 {
		fmt.Fprintf(out, "  nothing to remove\n")
	}
	return nil
}

// buildProject runs xcodebuild, prints the tail of the build log, and turns
// a failed build into an exitCodeError carrying xcodebuild's exit code.
func buildProject(ctx context.Context, out io.Writer, s *syncfile.Syncfile) error {
	fmt.Fprintf(out, "\nBuilding %s (scheme %s)\n", s.ProjectName, s.Scheme)

	runner := &xcodebuild.Runner{Bin: config.Get(config.KeyXcodebuildPath)}
	result, err := runner.Build(ctx, xcodebuild.Request{
		Xcodeproj:   s.XcodeprojPath(),
		Scheme:      s.Scheme,
		Destination: destination(s),
	})
	if err != nil {
		return err
	}

	tail := config.GetInt(config.KeyTailLines, xcodebuild.DefaultTailLines)
	fmt.Fprintf(out, "\nBuild output (last %d lines):\n", tail)
	for _, line := range xcodebuild.Tail(result.Combined, tail) {
		fmt.Fprintf(out, "  %s\n", line)
	}

	if result.Succeeded() {
		fmt.Fprintf(out, "\nBUILD SUCCEEDED\n")
		return nil
	}
	fmt.Fprintf(out, "\nBUILD FAILED (exit code %d)\n", result.ExitCode)
	return &exitCodeError{code: result.ExitCode}
}

// destination resolves the build destination: manifest value first, then
// user config, then the built-in simulator default.
func destination(s *syncfile.Syncfile) string {
	if s.Destination != "" {
		return s.Destination
	}
	if d := config.Get(config.KeyDestination); d != "" {
		return d
	}
	return syncfile.DefaultDestination
}
