package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptgen-dev/promptgen/config"
	"github.com/promptgen-dev/promptgen/llm"
	"github.com/promptgen-dev/promptgen/output"
	"github.com/promptgen-dev/promptgen/prompt"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a structured prompt with a single provider",
	Long: `Render the meta prompt from your project idea and send it to one provider.
The generated prompt goes to stdout; progress and labels stay on stderr, so
the output can be piped straight into a file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectIdea, _ := cmd.Flags().GetString("idea")
		requirements, _ := cmd.Flags().GetString("requirements")
		providerName, _ := cmd.Flags().GetString("provider")
		modelName, _ := cmd.Flags().GetString("model")
		save, _ := cmd.Flags().GetBool("save")
		outputDir, _ := cmd.Flags().GetString("output-dir")

		provider, err := llm.ParseProvider(providerName)
		if err != nil {
			return err
		}

		req, err := prompt.NewRequest(projectIdea, requirements)
		if err != nil {
			return err
		}

		cfg := config.Load()
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}

		var opts []llm.Option
		if modelName != "" {
			opts = append(opts, llm.WithModel(modelName))
		}

		client, err := llm.NewLLM(provider, cfg, opts...)
		if err != nil {
			return err
		}

		progress := NewProgress("Crafting your perfect prompt...")
		resp := client.Generate(llm.Request{Prompt: req.Render()})
		progress.Stop()

		if resp.Error != nil {
			return resp.Error
		}

		fmt.Fprintf(os.Stderr, "\n=== %s ===\n\n", provider.DisplayName())
		fmt.Println(resp.Content)

		if save {
			path, err := output.Save(cfg.OutputDir, output.DefaultFilename, resp.Content)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Saved prompt to", path)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// Add flags specific to generate command
	generateCmd.Flags().StringP("provider", "p", "anthropic", "LLM provider to use (anthropic, openai, deepseek)")
	generateCmd.Flags().StringP("model", "m", "", "Override the provider's default model")
	generateCmd.Flags().StringP("idea", "i", "", "Project idea or coding task to generate a prompt for")
	generateCmd.Flags().StringP("requirements", "r", "", "Additional requirements (optional)")
	generateCmd.Flags().BoolP("save", "s", false, "Save the generated prompt to a markdown file")
	generateCmd.Flags().StringP("output-dir", "o", "", "Directory for saved prompts (defaults to the configured output dir)")
}
