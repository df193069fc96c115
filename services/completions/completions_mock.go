package completions

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCompletionsService struct {
	mock.Mock
}

func (m *MockCompletionsService) RequestCompletion(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}
