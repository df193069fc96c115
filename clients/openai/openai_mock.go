package openai

import "context"

// MockCompletionClient implements CompletionClient interface for testing
type MockCompletionClient struct {
	MockCreateCompletion func(ctx context.Context, text string) (string, error)
}

// NewMockCompletionClient creates a new mock completion client
func NewMockCompletionClient() *MockCompletionClient {
	return &MockCompletionClient{}
}

// CreateCompletion implements CompletionClient interface for testing
func (m *MockCompletionClient) CreateCompletion(ctx context.Context, text string) (string, error) {
	if m.MockCreateCompletion != nil {
		return m.MockCreateCompletion(ctx, text)
	}

	// Default mock response for testing
	return "mock completion reply", nil
}
