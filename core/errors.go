package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a pipeline failure for retry and logging decisions.
type ErrorKind string

const (
	ErrorKindAuth                ErrorKind = "auth_error"
	ErrorKindPermissionDenied    ErrorKind = "permission_denied"
	ErrorKindRateLimited         ErrorKind = "rate_limited"
	ErrorKindInvalidRequest      ErrorKind = "invalid_request"
	ErrorKindChannelNotFound     ErrorKind = "channel_not_found"
	ErrorKindProviderUnavailable ErrorKind = "provider_unavailable"
	ErrorKindServiceUnavailable  ErrorKind = "service_unavailable"
	ErrorKindUnknown             ErrorKind = "unknown"
)

// ClassifiedError wraps an underlying error with the kind the pipeline
// should treat it as.
type ClassifiedError struct {
	Kind ErrorKind
	Err  error
}

func (e *ClassifiedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

// NewClassifiedError wraps err with the given kind
func NewClassifiedError(kind ErrorKind, err error) *ClassifiedError {
	return &ClassifiedError{Kind: kind, Err: err}
}

// KindOf extracts the error kind from err, or ErrorKindUnknown if err was
// never classified.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ErrorKindUnknown
	}
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return ErrorKindUnknown
}

// IsRetryable reports whether the pipeline may re-attempt an operation that
// failed with the given kind. Only backpressure and availability failures
// qualify; everything else is terminal after one attempt.
func IsRetryable(kind ErrorKind) bool {
	switch kind {
	case ErrorKindRateLimited, ErrorKindProviderUnavailable, ErrorKindServiceUnavailable:
		return true
	}
	return false
}
