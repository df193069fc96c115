package replies

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"
)

type MockRepliesService struct {
	mock.Mock
}

func (m *MockRepliesService) PostReply(
	ctx context.Context,
	channelID, text string,
	threadTS mo.Option[string],
) (string, error) {
	args := m.Called(ctx, channelID, text, threadTS)
	return args.String(0), args.Error(1)
}
