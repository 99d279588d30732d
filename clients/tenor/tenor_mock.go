package tenor

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTenorClient implements the clients.TenorClient interface for testing
type MockTenorClient struct {
	mock.Mock
}

func (m *MockTenorClient) ResolveGifURL(ctx context.Context, postID string) (string, error) {
	args := m.Called(ctx, postID)
	return args.String(0), args.Error(1)
}
