package clients

import "context"

// SlackClient defines the interface for the Slack Web API operations the
// relay needs
type SlackClient interface {
	// Bot operations
	AuthTest() (*SlackAuthTestResponse, error)

	// Message operations
	PostMessage(ctx context.Context, channelID string, options ...SlackMessageOption) (*SlackPostMessageResponse, error)
}

// CompletionClient defines the interface for the chat-completion API.
// Implementations perform exactly one attempt per call; retries belong to
// the pipeline coordinator.
type CompletionClient interface {
	CreateCompletion(ctx context.Context, text string) (string, error)
}
