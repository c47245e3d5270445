package llm

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/promptgen-dev/promptgen/logger"
)

// OpenAIModel implements the LLM interface using OpenAI's API
type OpenAIModel struct {
	client     *openai.Client
	modelName  string
	maxTokens  int
	apiTimeout int // in seconds
}

// NewOpenAI creates a new OpenAI client
func NewOpenAI(apiKey string, opts ...Option) (*OpenAIModel, error) {
	if apiKey == "" {
		errMsg := "OpenAI API key cannot be empty"
		logger.Error(errMsg)
		return nil, errors.New(errMsg)
	}

	model := &OpenAIModel{
		modelName:  "gpt-4o", // Default model
		apiTimeout: 60,       // Default timeout in seconds
	}

	config := openai.DefaultConfig(apiKey)

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

	logger.Debugf("OpenAI client initialized with model: %s, max tokens: %d, timeout: %d seconds",
		model.modelName, model.maxTokens, model.apiTimeout)

	return model, nil
}

// Generate sends the prompt to OpenAI and returns the response
func (o *OpenAIModel) Generate(req Request) Response {
	logger.Debugf("Sending prompt to OpenAI model: %s", o.modelName)
	return chatCompletion(o.client, ProviderOpenAI, o.modelName, o.maxTokens, o.apiTimeout, req)
}

// chatCompletion drives one chat completion round trip. It is shared by the
// OpenAI compatible providers.
func chatCompletion(client *openai.Client, provider Provider, modelName string, maxTokens, timeoutSeconds int, req Request) Response {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSeconds)*time.Second)
	defer cancel()

	// A zero max tokens leaves the field out of the request, matching the
	// provider default.
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     modelName,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Prompt,
			},
		},
	})
	if err != nil {
		return Response{
			Error: chatCompletionError(provider, err),
		}
	}

	if len(resp.Choices) == 0 {
		return Response{
			Error: &ProviderError{
				Provider: provider,
				Message:  "response contained no choices",
			},
		}
	}

	return Response{
		Content: resp.Choices[0].Message.Content,
	}
}

func chatCompletionError(provider Provider, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{
			Provider:   provider,
			StatusCode: apiErr.HTTPStatusCode,
			Message:    apiErr.Message,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &ProviderError{
			Provider:   provider,
			StatusCode: reqErr.HTTPStatusCode,
			Message:    reqErr.Error(),
		}
	}

	return classify(provider, err)
}
