package slack

import (
	"context"

	"mentionrelay/clients"
)

// MockSlackClient implements SlackClient interface for testing
type MockSlackClient struct {
	// Bot operations
	MockAuthTest func() (*clients.SlackAuthTestResponse, error)

	// Message operations
	MockPostMessage func(ctx context.Context, channelID string, options ...clients.SlackMessageOption) (*clients.SlackPostMessageResponse, error)
}

// NewMockSlackClient creates a new mock Slack client
func NewMockSlackClient() *MockSlackClient {
	return &MockSlackClient{}
}

// AuthTest implements SlackClient interface for testing
func (m *MockSlackClient) AuthTest() (*clients.SlackAuthTestResponse, error) {
	if m.MockAuthTest != nil {
		return m.MockAuthTest()
	}

	// Default mock response for testing
	return &clients.SlackAuthTestResponse{
		UserID: "U_BOT123",
		TeamID: "T123456789",
	}, nil
}

// PostMessage implements SlackClient interface for testing
func (m *MockSlackClient) PostMessage(
	ctx context.Context,
	channelID string,
	options ...clients.SlackMessageOption,
) (*clients.SlackPostMessageResponse, error) {
	if m.MockPostMessage != nil {
		return m.MockPostMessage(ctx, channelID, options...)
	}

	// Default mock response for testing
	return &clients.SlackPostMessageResponse{
		Channel:   channelID,
		Timestamp: "1234567890.123456",
	}, nil
}
