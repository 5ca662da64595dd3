package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redi-labs/xcsync/internal/branding"
	"github.com/redi-labs/xcsync/internal/config"
	"github.com/redi-labs/xcsync/internal/syncfile"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// manifestPath is the --manifest global flag: where to find the sync manifest.
var manifestPath string

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` keeps an Xcode project in sync with the source files declared in
its xcsync.yaml manifest: missing files are registered in the project.pbxproj,
stale DerivedData caches are evicted, and the project is rebuilt.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", syncfile.DefaultFileName,
		"Path to the sync manifest")
}

// exitCodeError carries a specific process exit code through cobra, used to
// propagate the build subprocess's own exit code.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		var ece *exitCodeError
		if errors.As(err, &ece) {
			return ece.code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadSyncfile parses the manifest named by the --manifest flag.
func loadSyncfile() (*syncfile.Syncfile, error) {
	return syncfile.Parse(manifestPath)
}
