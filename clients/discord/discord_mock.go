package discord

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sanctyr/clients"
)

// MockDiscordClient implements the clients.DiscordClient interface for testing
type MockDiscordClient struct {
	mock.Mock
}

func (m *MockDiscordClient) GetGuildWithCounts(ctx context.Context, guildID string) (*clients.DiscordGuild, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordGuild), args.Error(1)
}

func (m *MockDiscordClient) GetGuildRoles(ctx context.Context, guildID string) ([]clients.DiscordRole, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clients.DiscordRole), args.Error(1)
}

func (m *MockDiscordClient) GetGuildMember(ctx context.Context, guildID, userID string) (*clients.DiscordMember, error) {
	args := m.Called(ctx, guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordMember), args.Error(1)
}

func (m *MockDiscordClient) ListGuildMembers(ctx context.Context, guildID string, limit int) ([]clients.DiscordMember, error) {
	args := m.Called(ctx, guildID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clients.DiscordMember), args.Error(1)
}

func (m *MockDiscordClient) GetChannelMessages(ctx context.Context, channelID string, limit int) ([]clients.DiscordMessage, error) {
	args := m.Called(ctx, channelID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clients.DiscordMessage), args.Error(1)
}

func (m *MockDiscordClient) SendChannelMessage(ctx context.Context, channelID, content string) error {
	args := m.Called(ctx, channelID, content)
	return args.Error(0)
}

func (m *MockDiscordClient) GetGuildWidget(ctx context.Context, guildID string) (*clients.DiscordWidget, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordWidget), args.Error(1)
}

func (m *MockDiscordClient) ExchangeCodeForToken(
	ctx context.Context,
	clientID, clientSecret, code, redirectURL string,
) (*clients.DiscordOAuthResponse, error) {
	args := m.Called(ctx, clientID, clientSecret, code, redirectURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordOAuthResponse), args.Error(1)
}

func (m *MockDiscordClient) GetCurrentUser(ctx context.Context, accessToken string) (*clients.DiscordUser, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordUser), args.Error(1)
}
