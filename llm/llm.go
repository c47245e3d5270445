package llm

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/promptgen-dev/promptgen/common"
	"github.com/promptgen-dev/promptgen/config"
	"github.com/promptgen-dev/promptgen/logger"
)

// Provider identifies one of the supported chat completion backends.
type Provider string

// Supported providers.
const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderDeepSeek  Provider = "deepseek"
)

// providerInfo is one row of the provider registry.
type providerInfo struct {
	displayName   string
	credentialEnv string
	newClient     func(apiKey string, opts ...Option) (LLM, error)
}

// providers is the registry of supported backends. Display name, credential
// source and constructor for each provider live here.
var providers = map[Provider]providerInfo{
	ProviderAnthropic: {
		displayName:   "Claude 3.5 Sonnet",
		credentialEnv: config.EnvAnthropicAPIKey,
		newClient: func(apiKey string, opts ...Option) (LLM, error) {
			return NewAnthropic(apiKey, opts...)
		},
	},
	ProviderOpenAI: {
		displayName:   "GPT-4o",
		credentialEnv: config.EnvOpenAIAPIKey,
		newClient: func(apiKey string, opts ...Option) (LLM, error) {
			return NewOpenAI(apiKey, opts...)
		},
	},
	ProviderDeepSeek: {
		displayName:   "DeepSeek V3",
		credentialEnv: config.EnvDeepSeekAPIKey,
		newClient: func(apiKey string, opts ...Option) (LLM, error) {
			return NewDeepSeek(apiKey, opts...)
		},
	},
}

// All returns the supported providers in presentation order.
func All() []Provider {
	return []Provider{ProviderAnthropic, ProviderOpenAI, ProviderDeepSeek}
}

// Names returns the provider identifiers in presentation order.
func Names() []string {
	all := All()
	names := make([]string, 0, len(all))
	for _, provider := range all {
		names = append(names, string(provider))
	}
	return names
}

// ParseProvider maps a user supplied name onto a Provider.
func ParseProvider(name string) (Provider, error) {
	provider := Provider(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := providers[provider]; !ok {
		return "", fmt.Errorf("unknown provider: %s (valid providers: %s)", name, strings.Join(Names(), ", "))
	}
	return provider, nil
}

// DisplayName returns the human facing name of the provider.
func (p Provider) DisplayName() string {
	if info, ok := providers[p]; ok {
		return info.displayName
	}
	return string(p)
}

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	ModelNameOption  OptionType = "model"
	MaxTokensOption  OptionType = "max_tokens"
	APITimeoutOption OptionType = "api_timeout"
	BaseURLOption    OptionType = "base_url"
	HTTPClientOption OptionType = "http_client"
)

// Option represents a generic configuration option for any LLM provider
type Option struct {
	Type  OptionType
	Value any
}

// WithModel creates an option to set the model name
func WithModel(model string) Option {
	return Option{
		Type:  ModelNameOption,
		Value: model,
	}
}

// WithMaxTokens creates an option to set the max tokens
func WithMaxTokens(maxTokens int) Option {
	return Option{
		Type:  MaxTokensOption,
		Value: maxTokens,
	}
}

// WithAPITimeout creates an option to set the API timeout in seconds
func WithAPITimeout(timeout int) Option {
	return Option{
		Type:  APITimeoutOption,
		Value: timeout,
	}
}

// WithBaseURL creates an option to override the provider API endpoint
func WithBaseURL(baseURL string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: baseURL,
	}
}

// WithHTTPClient creates an option to set the HTTP client used for API calls
func WithHTTPClient(client *http.Client) Option {
	return Option{
		Type:  HTTPClientOption,
		Value: client,
	}
}

// Request represents the rendered prompt to send to the LLM
type Request struct {
	Prompt string
}

// Response represents the response from the LLM
type Response struct {
	Content string
	Error   error
}

// LLM defines the interface for language model prompting
type LLM interface {
	// Generate sends the prompt to the language model and returns its response
	Generate(req Request) Response
}

// NewLLM builds the client for the given provider from the resolved
// configuration. Credentials and endpoints come in through cfg; nothing here
// reads the environment.
func NewLLM(provider Provider, cfg *config.Config, opts ...Option) (LLM, error) {
	info, ok := providers[provider]
	if !ok {
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}

	providerCfg, err := cfg.Provider(string(provider))
	if err != nil {
		return nil, err
	}
	if providerCfg.APIKey == "" {
		return nil, fmt.Errorf("%s API key not found: set %s", info.displayName, info.credentialEnv)
	}

	retryConfig := common.DefaultRetryConfig()
	retryConfig.RetryMax = cfg.HTTP.RetryMax

	options := []Option{
		WithModel(providerCfg.Model),
		WithAPITimeout(cfg.HTTP.TimeoutSeconds),
		WithHTTPClient(common.NewHTTPClient(retryConfig)),
	}
	if providerCfg.MaxTokens > 0 {
		options = append(options, WithMaxTokens(providerCfg.MaxTokens))
	}
	if providerCfg.BaseURL != "" {
		options = append(options, WithBaseURL(providerCfg.BaseURL))
	}
	options = append(options, opts...)

	client, err := info.newClient(providerCfg.APIKey, options...)
	if err != nil {
		return nil, err
	}

	logger.Debugf("Initialized %s client with model: %s", info.displayName, providerCfg.Model)
	return client, nil
}
