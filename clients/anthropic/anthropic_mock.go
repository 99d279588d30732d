package anthropic

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGuideClient implements the clients.GuideClient interface for testing
type MockGuideClient struct {
	mock.Mock
}

func (m *MockGuideClient) Ask(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}
