package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/promptgen-dev/promptgen/logger"
)

// AnthropicModel implements the LLM interface using Anthropic's Messages API
type AnthropicModel struct {
	client     anthropic.Client
	modelName  string
	maxTokens  int
	apiTimeout int // in seconds
}

// NewAnthropic creates a new Anthropic client
func NewAnthropic(apiKey string, opts ...Option) (*AnthropicModel, error) {
	if apiKey == "" {
		errMsg := "Anthropic API key cannot be empty"
		logger.Error(errMsg)
		return nil, errors.New(errMsg)
	}

	model := &AnthropicModel{
		modelName:  "claude-3-5-sonnet-20241022", // Default model
		maxTokens:  1500,                         // Default max tokens
		apiTimeout: 60,                           // Default timeout in seconds
	}

	var baseURL string
	var httpClient *http.Client

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
				baseURL = u
			}
		case HTTPClientOption:
			if c, ok := opt.Value.(*http.Client); ok {
				httpClient = c
			}
		}
	}

	// Retries are governed by the injected HTTP client, so the SDK's own
	// retry layer stays off.
	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		clientOpts = append(clientOpts, option.WithHTTPClient(httpClient))
	}
	model.client = anthropic.NewClient(clientOpts...)

	logger.Debugf("Anthropic client initialized with model: %s, max tokens: %d, timeout: %d seconds",
		model.modelName, model.maxTokens, model.apiTimeout)

	return model, nil
}

// Generate sends the prompt to Anthropic and returns the response
func (a *AnthropicModel) Generate(req Request) Response {
	logger.Debugf("Sending prompt to Anthropic model: %s", a.modelName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(a.apiTimeout)*time.Second)
	defer cancel()

	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.modelName),
		MaxTokens: int64(a.maxTokens),
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(req.Prompt),
				},
			},
		},
	})
	if err != nil {
		return Response{
			Error: anthropicError(err),
		}
	}

	// Extract text content from the response
	var content string
	for _, block := range message.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			content += b.Text
		}
	}

	if content == "" {
		return Response{
			Error: &ProviderError{
				Provider: ProviderAnthropic,
				Message:  "response contained no text content",
			},
		}
	}

	return Response{
		Content: content,
	}
}

func anthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		message := strings.TrimSpace(string(apiErr.RawJSON()))
		if message == "" {
			message = http.StatusText(apiErr.StatusCode)
		}
		return &ProviderError{
			Provider:   ProviderAnthropic,
			StatusCode: apiErr.StatusCode,
			Message:    message,
		}
	}
	return classify(ProviderAnthropic, err)
}
