package llm

import (
	"errors"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/promptgen-dev/promptgen/logger"
)

// deepseekBaseURL is the OpenAI compatible endpoint DeepSeek exposes.
const deepseekBaseURL = "https://api.deepseek.com/v1"

// DeepSeekModel implements the LLM interface using DeepSeek's OpenAI
// compatible API
type DeepSeekModel struct {
	client     *openai.Client
	modelName  string
	maxTokens  int
	apiTimeout int // in seconds
}

// NewDeepSeek creates a new DeepSeek client
func NewDeepSeek(apiKey string, opts ...Option) (*DeepSeekModel, error) {
	if apiKey == "" {
		errMsg := "DeepSeek API key cannot be empty"
		logger.Error(errMsg)
		return nil, errors.New(errMsg)
	}

	model := &DeepSeekModel{
		modelName:  "deepseek-chat", // Default model
		apiTimeout: 60,              // Default timeout in seconds
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = deepseekBaseURL

	// Apply options
	for _, opt := range opts {
		switch opt.Type {
		case ModelNameOption:
			if modelName, ok := opt.Value.(string); ok {
				model.modelName = modelName
			}
		case MaxTokensOption:
			if maxTokens, ok := opt.Value.(int); ok {
				model.maxTokens = maxTokens
			}
		case APITimeoutOption:
			if timeout, ok := opt.Value.(int); ok {
				model.apiTimeout = timeout
			}
		case BaseURLOption:
			if u, ok := opt.Value.(string); ok {
				config.BaseURL = u
			}
		case HTTPClientOption:
			if c, ok := opt.Value.(*http.Client); ok {
				config.HTTPClient = c
			}
		}
	}
	model.client = openai.NewClientWithConfig(config)

	logger.Debugf("DeepSeek client initialized with model: %s, max tokens: %d, timeout: %d seconds",
		model.modelName, model.maxTokens, model.apiTimeout)

	return model, nil
}

// Generate sends the prompt to DeepSeek and returns the response
func (d *DeepSeekModel) Generate(req Request) Response {
	logger.Debugf("Sending prompt to DeepSeek model: %s", d.modelName)
	return chatCompletion(d.client, ProviderDeepSeek, d.modelName, d.maxTokens, d.apiTimeout, req)
}
