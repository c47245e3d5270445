package cmd

import (
	"github.com/spf13/cobra"

	"github.com/promptgen-dev/promptgen/logger"
)

var (
	// Command line flags
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "promptgen",
	Short: "Generate structured AI coding prompts from a plain language task description",
	Long: `Promptgen turns a plain language project idea into a detailed, structured
prompt ready to paste into any AI coding assistant. It can ask a single
provider or fan out to Claude, GPT-4o and DeepSeek at once and show the
results side by side.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger with the specified log level
		logger.Init(logLevel)
		logger.Debugf("Log level set to: %s", logLevel)
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior when no subcommands are provided
		cmd.Help()
	},
}

// Execute runs the root command and handles errors
func Execute() error {
	// Subcommands are added in their respective init() functions
	return rootCmd.Execute()
}

func init() {
	// Add persistent flags that will be available to all subcommands
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Set the logging level (debug, info, warn, error, dpanic, panic, fatal)")
}
