package economy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sanctyr/models"
)

// MockEconomyClient implements the clients.EconomyClient interface for testing
type MockEconomyClient struct {
	mock.Mock
}

func (m *MockEconomyClient) GetProfile(ctx context.Context, userID string) (*models.EconomyProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EconomyProfile), args.Error(1)
}

func (m *MockEconomyClient) ExecuteAction(
	ctx context.Context,
	command, userID string,
	actionArgs []string,
) (*models.EconomyActionResult, error) {
	args := m.Called(ctx, command, userID, actionArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EconomyActionResult), args.Error(1)
}
