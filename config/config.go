package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/promptgen-dev/promptgen/logger"
	"gopkg.in/yaml.v3"
)

// Environment variables holding the provider credentials
const (
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
	EnvOpenAIAPIKey    = "OPENAI_API_KEY"
	EnvDeepSeekAPIKey  = "DEEPSEEK_API_KEY"
)

// Provider holds the connection settings for a single provider.
// The credential only ever comes from the environment, never from the
// config file.
type Provider struct {
	APIKey    string `yaml:"-"`
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	MaxTokens int    `yaml:"max_tokens"`
}

// HTTP holds the settings for the outbound HTTP client shared by all
// provider clients.
type HTTP struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
	RetryMax       int `yaml:"retry_max"`
}

// Server holds the settings for the web UI server.
type Server struct {
	Addr string `yaml:"addr"`
}

// Config is the process-wide configuration, resolved once at startup and
// passed explicitly into everything that needs it.
type Config struct {
	Anthropic Provider `yaml:"anthropic"`
	OpenAI    Provider `yaml:"openai"`
	DeepSeek  Provider `yaml:"deepseek"`
	HTTP      HTTP     `yaml:"http"`
	Server    Server   `yaml:"server"`
	OutputDir string   `yaml:"output_dir"`
}

// WithDefaults returns a Config populated with the default models and
// endpoints for all three providers.
func WithDefaults() *Config {
	return &Config{
		Anthropic: Provider{
			Model:     "claude-3-5-sonnet-20241022",
			MaxTokens: 1500,
		},
		OpenAI: Provider{
			Model: "gpt-4o",
		},
		DeepSeek: Provider{
			Model:   "deepseek-chat",
			BaseURL: "https://api.deepseek.com/v1",
		},
		HTTP: HTTP{
			TimeoutSeconds: 60,
			RetryMax:       0,
		},
		Server: Server{
			Addr: ":8080",
		},
		OutputDir: ".",
	}
}

// Load resolves the configuration: defaults, then an optional
// promptgen.yml in the working directory, then the environment.
// A .env file is honored if present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := WithDefaults()
	applyYamlFile(cfg)
	applyEnv(cfg)

	return cfg
}

// Provider returns the settings for the named provider.
func (c *Config) Provider(name string) (Provider, error) {
	switch name {
	case "anthropic":
		return c.Anthropic, nil
	case "openai":
		return c.OpenAI, nil
	case "deepseek":
		return c.DeepSeek, nil
	}
	return Provider{}, fmt.Errorf("unknown provider: %s", name)
}

func applyYamlFile(cfg *Config) {
	var filePath string
	filenames := []string{"promptgen.yml", "promptgen.yaml"}

	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			filePath = name
			break
		}
	}

	if filePath == "" {
		return
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Warnf("Failed to read config file %s: %v", filePath, err)
		return
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		logger.Warnf("Failed to parse config file %s: %v", filePath, err)
		return
	}
	logger.Infof("Using settings from config file: %s", filePath)
}

func applyEnv(cfg *Config) {
	cfg.Anthropic.APIKey = os.Getenv(EnvAnthropicAPIKey)
	cfg.OpenAI.APIKey = os.Getenv(EnvOpenAIAPIKey)
	cfg.DeepSeek.APIKey = os.Getenv(EnvDeepSeekAPIKey)
}
