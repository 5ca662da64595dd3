package cli

import (
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Evict the project's DerivedData caches",
	Long: `Remove every entry under the DerivedData root whose name contains the
project name. The root defaults to ~/Library/Developer/Xcode/DerivedData and
can be overridden with the derived_data_root config key.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSyncfile()
		if err != nil {
			return err
		}
		return cleanCaches(cmd.OutOrStdout(), s)
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
