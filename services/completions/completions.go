package completions

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/openai/openai-go/v3"

	"mentionrelay/clients"
	"mentionrelay/core"
)

type CompletionsService struct {
	completionClient clients.CompletionClient
}

func NewCompletionsService(completionClient clients.CompletionClient) *CompletionsService {
	return &CompletionsService{
		completionClient: completionClient,
	}
}

// RequestCompletion performs exactly one completion attempt with the given
// text as the sole user turn. Failures come back classified so the
// coordinator can decide whether a retry is allowed.
func (s *CompletionsService) RequestCompletion(ctx context.Context, text string) (string, error) {
	log.Printf("📋 Starting completion request (%d chars)", len(text))

	reply, err := s.completionClient.CreateCompletion(ctx, text)
	if err != nil {
		classified := classifyCompletionError(err)
		log.Printf("❌ Completion request failed (%s): %v", core.KindOf(classified), err)
		return "", classified
	}

	log.Printf("✅ Completion request succeeded (%d chars)", len(reply))
	return reply, nil
}

// classifyCompletionError maps provider failures onto the pipeline's error kinds
func classifyCompletionError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
			return core.NewClassifiedError(core.ErrorKindAuth, err)
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return core.NewClassifiedError(core.ErrorKindRateLimited, err)
		case apiErr.StatusCode >= http.StatusInternalServerError:
			return core.NewClassifiedError(core.ErrorKindProviderUnavailable, err)
		case apiErr.StatusCode >= http.StatusBadRequest:
			return core.NewClassifiedError(core.ErrorKindInvalidRequest, err)
		}
	}

	// Anything that is not an API error never reached the provider: a
	// timeout or transport failure. Both count as the provider being
	// unavailable.
	return core.NewClassifiedError(core.ErrorKindProviderUnavailable, err)
}
