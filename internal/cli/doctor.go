package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/redi-labs/xcsync/internal/config"
	"github.com/redi-labs/xcsync/internal/platform"
	"github.com/redi-labs/xcsync/internal/syncfile"
	"github.com/redi-labs/xcsync/internal/xcodebuild"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the sync setup",
	Long: `Run diagnostic checks: sync manifest presence and schema validity, the
project file and candidate sources on disk, and the xcodebuild toolchain.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		failures := checkManifest(out)
		failures += checkToolchain(cmd, out)

		if failures > 0 {
			return fmt.Errorf("%d check(s) failed", failures)
		}
		fmt.Fprintf(out, "\nAll checks passed\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// checkManifest validates the sync manifest and the files it points at.
// Returns the number of failed checks.
func checkManifest(out io.Writer) int {
	failures := 0
	fmt.Fprintf(out, "Sync manifest: %s\n", manifestPath)

	if !platform.FileExists(manifestPath) {
		fmt.Fprintf(out, "  [FAIL] not found (run `xcsync init <project-name>`)\n")
		return 1
	}

	result, err := syncfile.ValidateFile(manifestPath)
	switch {
	case err != nil:
		fmt.Fprintf(out, "  [FAIL] validation: %v\n", err)
		failures++
	case !result.Valid:
		fmt.Fprintf(out, "  [FAIL] %d schema issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(out, "    - %s\n", issue.Message)
			}
		}
		failures++
	default:
		fmt.Fprintf(out, "  [ OK ] schema valid\n")
	}

	s, err := syncfile.Parse(manifestPath)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] parse: %v\n", err)
		return failures + 1
	}

	switch {
	case !platform.DirExists(s.XcodeprojPath()):
		fmt.Fprintf(out, "  [FAIL] %s not found\n", s.XcodeprojPath())
		failures++
	case !platform.FileExists(s.ProjectFilePath()):
		fmt.Fprintf(out, "  [FAIL] project file %s not found\n", s.ProjectFilePath())
		failures++
	default:
		fmt.Fprintf(out, "  [ OK ] project file %s\n", s.ProjectFilePath())
	}

	for _, f := range s.Files {
		if platform.FileExists(s.SourcePath(f)) {
			fmt.Fprintf(out, "  [ OK ] %s\n", f.DisplayName())
		} else {
			// Sync skips these rather than failing, so a missing source
			// is only a warning here.
			fmt.Fprintf(out, "  [WARN] %s not on disk (will be skipped)\n", f.DisplayName())
		}
	}
	return failures
}

// checkToolchain verifies xcodebuild is present and recent enough.
// Returns the number of failed checks.
func checkToolchain(cmd *cobra.Command, out io.Writer) int {
	fmt.Fprintf(out, "Toolchain:\n")

	runner := &xcodebuild.Runner{Bin: config.Get(config.KeyXcodebuildPath)}
	version, err := runner.Version(cmd.Context())
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] xcodebuild: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "  [ OK ] xcodebuild (Xcode %s)\n", version)

	ok, err := xcodebuild.MeetsMinVersion(version)
	switch {
	case err != nil:
		fmt.Fprintf(out, "  [WARN] cannot compare Xcode version %q: %v\n", version, err)
	case !ok:
		fmt.Fprintf(out, "  [WARN] Xcode %s is older than %s; the default simulator destination may be unavailable\n",
			version, xcodebuild.MinVersion)
	}
	return 0
}
