package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// ProviderError reports a non-success answer from a provider API, such as an
// auth failure or a well-formed response with no usable content.
type ProviderError struct {
	Provider   Provider
	StatusCode int // zero when the failure carried no HTTP status
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s API error (HTTP %d): %s", e.Provider.DisplayName(), e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s API error: %s", e.Provider.DisplayName(), e.Message)
}

// TransportError reports that the provider could not be reached at all, for
// instance a refused connection or a timeout.
type TransportError struct {
	Provider Provider
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not reach %s: %v", e.Provider.DisplayName(), e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// classify sorts an error the SDK did not type as an API error into the
// transport or provider bucket.
func classify(provider Provider, err error) error {
	var urlErr *url.Error
	var netErr net.Error
	switch {
	case errors.As(err, &urlErr),
		errors.As(err, &netErr),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return &TransportError{Provider: provider, Err: err}
	}

	return &ProviderError{Provider: provider, Message: err.Error()}
}
