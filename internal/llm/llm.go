package llm

import (
	"context"
	"errors"
)

// Client abstracts generative-text providers. The gateway depends only on
// "submit text, receive text, may fail".
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
// Every call fails, which drives callers onto their local fallbacks.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}

var _ Client = PlaceholderClient{}
