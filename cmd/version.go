package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptgen-dev/promptgen/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the version of promptgen`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("promptgen v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
