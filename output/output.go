package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/promptgen-dev/promptgen/llm"
	"github.com/promptgen-dev/promptgen/logger"
)

// DefaultFilename is the download name used in single prompt mode.
const DefaultFilename = "ai_prompt.md"

// filenames maps each provider to its comparison mode download name.
var filenames = map[llm.Provider]string{
	llm.ProviderAnthropic: "claude_prompt.md",
	llm.ProviderOpenAI:    "gpt_prompt.md",
	llm.ProviderDeepSeek:  "deepseek_prompt.md",
}

// Filename returns the download file name for a provider's prompt.
func Filename(provider llm.Provider) string {
	if name, ok := filenames[provider]; ok {
		return name
	}
	return DefaultFilename
}

// Save writes the generated prompt to dir/filename, byte for byte. It
// returns the path of the written file.
func Save(dir, filename, content string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write prompt file: %w", err)
	}

	logger.Debugf("Saved prompt to %s", path)
	return path, nil
}
