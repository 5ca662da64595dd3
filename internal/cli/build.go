package cli

import (
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the project with xcodebuild",
	Long: `Invoke xcodebuild for the manifest's project, scheme, and destination
without patching the project file first. The tail of the build log is
printed and xcodebuild's exit code becomes the process exit code.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSyncfile()
		if err != nil {
			return err
		}
		return buildProject(cmd.Context(), cmd.OutOrStdout(), s)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
