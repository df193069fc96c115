package services

import (
	"context"

	"github.com/samber/mo"
)

// CompletionsService defines the interface for requesting chat completions.
// One call is exactly one billable request; callers own the retry policy.
type CompletionsService interface {
	RequestCompletion(ctx context.Context, text string) (string, error)
}

// RepliesService defines the interface for posting replies back to Slack.
// PostReply returns the Slack timestamp of the posted message.
type RepliesService interface {
	PostReply(ctx context.Context, channelID, text string, threadTS mo.Option[string]) (string, error)
}
