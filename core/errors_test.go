package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifiedError_WrapsUnderlyingError(t *testing.T) {
	underlying := errors.New("429 too many requests")
	classified := NewClassifiedError(ErrorKindRateLimited, underlying)

	assert.Equal(t, "rate_limited: 429 too many requests", classified.Error())
	assert.True(t, errors.Is(classified, underlying))
}

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{
			name:     "classified error",
			err:      NewClassifiedError(ErrorKindAuth, errors.New("invalid_auth")),
			expected: ErrorKindAuth,
		},
		{
			name:     "classified error wrapped further",
			err:      fmt.Errorf("posting failed: %w", NewClassifiedError(ErrorKindChannelNotFound, errors.New("channel_not_found"))),
			expected: ErrorKindChannelNotFound,
		},
		{
			name:     "unclassified error",
			err:      errors.New("something broke"),
			expected: ErrorKindUnknown,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: ErrorKindUnknown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, KindOf(tc.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	retryable := []ErrorKind{ErrorKindRateLimited, ErrorKindProviderUnavailable, ErrorKindServiceUnavailable}
	for _, kind := range retryable {
		assert.True(t, IsRetryable(kind), "%s should be retryable", kind)
	}

	terminal := []ErrorKind{
		ErrorKindAuth,
		ErrorKindPermissionDenied,
		ErrorKindInvalidRequest,
		ErrorKindChannelNotFound,
		ErrorKindUnknown,
	}
	for _, kind := range terminal {
		assert.False(t, IsRetryable(kind), "%s should be terminal", kind)
	}
}
