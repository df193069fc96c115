package completions

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/openai/openai-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	openaiclient "mentionrelay/clients/openai"
	"mentionrelay/core"
)

func newAPIError(t *testing.T, statusCode int) *openai.Error {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "https://api.openai.com/v1/chat/completions", nil)
	require.NoError(t, err)

	return &openai.Error{
		StatusCode: statusCode,
		Request:    req,
	}
}

func TestCompletionsService_RequestCompletion_Success(t *testing.T) {
	mockClient := openaiclient.NewMockCompletionClient()

	var requestedText string
	mockClient.MockCreateCompletion = func(ctx context.Context, text string) (string, error) {
		requestedText = text
		return "the answer is 42", nil
	}

	service := NewCompletionsService(mockClient)

	reply, err := service.RequestCompletion(context.Background(), "what is the answer?")

	assert.NoError(t, err)
	assert.Equal(t, "the answer is 42", reply)
	assert.Equal(t, "what is the answer?", requestedText)
}

func TestCompletionsService_RequestCompletion_SingleAttempt(t *testing.T) {
	mockClient := openaiclient.NewMockCompletionClient()

	attempts := 0
	mockClient.MockCreateCompletion = func(ctx context.Context, text string) (string, error) {
		attempts++
		return "", newAPIError(t, http.StatusTooManyRequests)
	}

	service := NewCompletionsService(mockClient)

	_, err := service.RequestCompletion(context.Background(), "hello")

	// The service never retries on its own - that policy belongs to the
	// pipeline coordinator.
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestCompletionsService_RequestCompletion_ErrorClassification(t *testing.T) {
	testCases := []struct {
		name         string
		statusCode   int
		err          error
		expectedKind core.ErrorKind
	}{
		{
			name:         "401 is an auth error",
			statusCode:   http.StatusUnauthorized,
			expectedKind: core.ErrorKindAuth,
		},
		{
			name:         "403 is an auth error",
			statusCode:   http.StatusForbidden,
			expectedKind: core.ErrorKindAuth,
		},
		{
			name:         "429 is rate limited",
			statusCode:   http.StatusTooManyRequests,
			expectedKind: core.ErrorKindRateLimited,
		},
		{
			name:         "400 is an invalid request",
			statusCode:   http.StatusBadRequest,
			expectedKind: core.ErrorKindInvalidRequest,
		},
		{
			name:         "413 is an invalid request",
			statusCode:   http.StatusRequestEntityTooLarge,
			expectedKind: core.ErrorKindInvalidRequest,
		},
		{
			name:         "500 means the provider is unavailable",
			statusCode:   http.StatusInternalServerError,
			expectedKind: core.ErrorKindProviderUnavailable,
		},
		{
			name:         "503 means the provider is unavailable",
			statusCode:   http.StatusServiceUnavailable,
			expectedKind: core.ErrorKindProviderUnavailable,
		},
		{
			name:         "transport failure means the provider is unavailable",
			err:          errors.New("dial tcp: connection refused"),
			expectedKind: core.ErrorKindProviderUnavailable,
		},
		{
			name:         "context deadline means the provider is unavailable",
			err:          context.DeadlineExceeded,
			expectedKind: core.ErrorKindProviderUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			failure := tc.err
			if failure == nil {
				failure = newAPIError(t, tc.statusCode)
			}

			mockClient := openaiclient.NewMockCompletionClient()
			mockClient.MockCreateCompletion = func(ctx context.Context, text string) (string, error) {
				return "", failure
			}

			service := NewCompletionsService(mockClient)

			_, err := service.RequestCompletion(context.Background(), "hello")

			require.Error(t, err)
			assert.Equal(t, tc.expectedKind, core.KindOf(err))
			assert.True(t, errors.Is(err, failure), "classified error should wrap the original")
		})
	}
}
