package economy

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanctyr/cache"
	economyclient "sanctyr/clients/economy"
	"sanctyr/core"
	"sanctyr/models"
)

func TestEconomyService_GetProfile_Found(t *testing.T) {
	mockClient := new(economyclient.MockEconomyClient)
	mockClient.On("GetProfile", context.Background(), "123").Return(&models.EconomyProfile{
		UserID: "123",
		Wallet: 100,
		Bank:   5000,
	}, nil)

	service := NewEconomyService(mockClient, cache.NewResponseCache())

	maybeProfile, err := service.GetProfile(context.Background(), "123")
	require.NoError(t, err)
	require.True(t, maybeProfile.IsPresent())
	assert.Equal(t, int64(100), maybeProfile.MustGet().Wallet)
}

func TestEconomyService_GetProfile_NotFoundIsNone(t *testing.T) {
	mockClient := new(economyclient.MockEconomyClient)
	mockClient.On("GetProfile", context.Background(), "123").
		Return(nil, fmt.Errorf("economy profile for user 123: %w", core.ErrNotFound))

	service := NewEconomyService(mockClient, cache.NewResponseCache())

	maybeProfile, err := service.GetProfile(context.Background(), "123")
	require.NoError(t, err)
	assert.False(t, maybeProfile.IsPresent())
}

func TestEconomyService_GetProfile_ConfigurationErrorPropagates(t *testing.T) {
	mockClient := new(economyclient.MockEconomyClient)
	mockClient.On("GetProfile", context.Background(), "123").
		Return(nil, fmt.Errorf("economy API: %w", core.ErrNotConfigured))

	service := NewEconomyService(mockClient, cache.NewResponseCache())

	_, err := service.GetProfile(context.Background(), "123")
	assert.ErrorIs(t, err, core.ErrNotConfigured)
}

func TestEconomyService_GetProfile_CachesResult(t *testing.T) {
	mockClient := new(economyclient.MockEconomyClient)
	mockClient.On("GetProfile", context.Background(), "123").Return(&models.EconomyProfile{
		UserID: "123",
	}, nil).Once()

	service := NewEconomyService(mockClient, cache.NewResponseCache())

	_, err := service.GetProfile(context.Background(), "123")
	require.NoError(t, err)
	// Second call inside the freshness window must hit the cache
	_, err = service.GetProfile(context.Background(), "123")
	require.NoError(t, err)

	mockClient.AssertExpectations(t)
}

func TestEconomyService_ExecuteAction_InvalidatesProfileCache(t *testing.T) {
	mockClient := new(economyclient.MockEconomyClient)
	mockClient.On("GetProfile", context.Background(), "123").
		Return(&models.EconomyProfile{UserID: "123"}, nil).Twice()
	mockClient.On("ExecuteAction", context.Background(), "daily", "123", []string(nil)).
		Return(&models.EconomyActionResult{Success: true, Message: "done"}, nil)

	service := NewEconomyService(mockClient, cache.NewResponseCache())

	_, err := service.GetProfile(context.Background(), "123")
	require.NoError(t, err)

	result, err := service.ExecuteAction(context.Background(), "daily", "123", nil)
	require.NoError(t, err)
	assert.True(t, result.Success)

	// Profile cache was dropped, so this refetches
	_, err = service.GetProfile(context.Background(), "123")
	require.NoError(t, err)

	mockClient.AssertExpectations(t)
}
