package cli

import (
	"github.com/spf13/cobra"
)

var patchDryRun bool

var patchCmd = &cobra.Command{
	Use:   "patch",
	Short: "Register missing sources in the project file",
	Long: `Register the manifest's source files in project.pbxproj without cleaning
caches or building. A backup copy of the project file is created before any
change is written. With --dry-run the project file is left untouched and the
command only reports what would be added.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSyncfile()
		if err != nil {
			return err
		}
		_, err = patchProject(cmd.OutOrStdout(), s, patchDryRun)
		return err
	},
}

func init() {
	patchCmd.Flags().BoolVar(&patchDryRun, "dry-run", false, "Report without modifying the project file")
	rootCmd.AddCommand(patchCmd)
}
