package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptgen-dev/promptgen/compare"
	"github.com/promptgen-dev/promptgen/config"
	"github.com/promptgen-dev/promptgen/output"
	"github.com/promptgen-dev/promptgen/prompt"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Generate prompts with all providers side by side",
	Long: `Send the same meta prompt to Claude, GPT-4o and DeepSeek concurrently and
print each provider's result in turn. One provider failing does not stop
the others.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectIdea, _ := cmd.Flags().GetString("idea")
		requirements, _ := cmd.Flags().GetString("requirements")
		save, _ := cmd.Flags().GetBool("save")
		outputDir, _ := cmd.Flags().GetString("output-dir")

		req, err := prompt.NewRequest(projectIdea, requirements)
		if err != nil {
			return err
		}

		cfg := config.Load()
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}

		progress := NewProgress("Comparing models...")
		results := compare.Run(req, compare.Candidates(cfg))
		progress.Stop()

		failures := 0
		for _, result := range results {
			fmt.Println("")
			fmt.Printf("=== %s ===\n", result.Provider.DisplayName())

			if result.Err != nil {
				failures++
				fmt.Println("Error:", result.Err)
				continue
			}
			fmt.Println(result.Content)

			if save {
				path, err := output.Save(cfg.OutputDir, output.Filename(result.Provider), result.Content)
				if err != nil {
					return err
				}
				fmt.Println("Saved prompt to", path)
			}
		}

		// Only a full wipeout fails the run.
		if failures == len(results) {
			return fmt.Errorf("all providers failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	// Add flags specific to compare command
	compareCmd.Flags().StringP("idea", "i", "", "Project idea or coding task to generate a prompt for")
	compareCmd.Flags().StringP("requirements", "r", "", "Additional requirements (optional)")
	compareCmd.Flags().BoolP("save", "s", false, "Save each generated prompt to its provider's markdown file")
	compareCmd.Flags().StringP("output-dir", "o", "", "Directory for saved prompts (defaults to the configured output dir)")
}
