package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"mentionrelay/clients"
)

const (
	// requestTimeout bounds one outbound completion call so a stalled
	// provider surfaces as a failure instead of hanging the pipeline.
	requestTimeout = 10 * time.Second

	maxReplyTokens   = 1000
	replyTemperature = 0.7
)

// OpenAIClient implements the clients.CompletionClient interface using the openai-go SDK
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a completion client for the configured model.
// SDK-level retries are disabled: the bounded retry policy lives in the
// pipeline coordinator, and a hidden SDK retry would duplicate billable calls.
func NewOpenAIClient(apiKey, model string) clients.CompletionClient {
	return &OpenAIClient{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithMaxRetries(0),
			option.WithRequestTimeout(requestTimeout),
		),
		model: model,
	}
}

// CreateCompletion sends text as the sole user turn and returns the first
// choice's content
func (c *OpenAIClient) CreateCompletion(ctx context.Context, text string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(text),
		},
		MaxTokens:   openai.Int(maxReplyTokens),
		Temperature: openai.Float(replyTemperature),
	})
	if err != nil {
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
