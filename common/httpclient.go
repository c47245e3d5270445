package common

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/promptgen-dev/promptgen/logger"
)

// RetryConfig holds the configuration for the outbound HTTP client
type RetryConfig struct {
	// Maximum number of retries; 0 keeps every call single-shot
	RetryMax int
	// Minimum time to wait between retries
	RetryWaitMin time.Duration
	// Maximum time to wait between retries
	RetryWaitMax time.Duration
	// Function to determine if a request should be retried
	CheckRetry retryablehttp.CheckRetry
}

// DefaultRetryConfig returns a RetryConfig with retries disabled.
// Each generation is a single request; failures surface to the user
// instead of being retried behind their back.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		RetryMax:     0,
		RetryWaitMin: 1 * time.Second,
		RetryWaitMax: 5 * time.Second,
		CheckRetry:   retryablehttp.DefaultRetryPolicy,
	}
}

// NewHTTPClient creates the outbound HTTP client shared by all provider
// clients. Built on retryablehttp so retries stay available through
// configuration, but with the default config it performs exactly one attempt.
func NewHTTPClient(config RetryConfig) *http.Client {
	retryClient := retryablehttp.NewClient()

	// Apply configuration
	retryClient.RetryMax = config.RetryMax
	retryClient.RetryWaitMin = config.RetryWaitMin
	retryClient.RetryWaitMax = config.RetryWaitMax

	logger.Debugf("Created HTTP client with max retries: %d, min wait: %s, max wait: %s",
		config.RetryMax, config.RetryWaitMin, config.RetryWaitMax)

	// Only set CheckRetry if provided (non-nil)
	if config.CheckRetry != nil {
		retryClient.CheckRetry = config.CheckRetry
	}

	// Route retryablehttp's internal logging through zap
	retryClient.Logger = &zapRetryLogger{}

	return retryClient.StandardClient()
}

// zapRetryLogger adapts our zap logger to the interface required by retryablehttp
type zapRetryLogger struct{}

func (z *zapRetryLogger) Error(msg string, keysAndValues ...interface{}) {
	logger.Error(append([]interface{}{msg}, keysAndValues...)...)
}

func (z *zapRetryLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Info(append([]interface{}{msg}, keysAndValues...)...)
}

func (z *zapRetryLogger) Debug(msg string, keysAndValues ...interface{}) {
	logger.Debug(append([]interface{}{msg}, keysAndValues...)...)
}

func (z *zapRetryLogger) Warn(msg string, keysAndValues ...interface{}) {
	logger.Warn(append([]interface{}{msg}, keysAndValues...)...)
}
