package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redi-labs/xcsync/internal/platform"
	"github.com/redi-labs/xcsync/internal/syncfile"
)

var (
	initProjectDir string
	initForce      bool
)

var initCmd = &cobra.Command{
	Use:   "init <project-name>",
	Short: "Create a starter sync manifest",
	Long: `Write a starter xcsync.yaml for the named Xcode project into the current
directory (or the path given with --manifest). Edit the files list to match
the sources that should be registered, then run "xcsync sync".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectName := args[0]
		projectDir := initProjectDir
		if projectDir == "" {
			projectDir = projectName
		}

		if platform.FileExists(manifestPath) && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", manifestPath)
		}

		content := syncfile.Starter(projectDir, projectName)
		if err := os.WriteFile(manifestPath, []byte(content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", manifestPath, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s for project %s\n", manifestPath, projectName)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initProjectDir, "project-dir", "", "Project directory (defaults to the project name)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing manifest")
	rootCmd.AddCommand(initCmd)
}
