package services

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"sanctyr/models"
)

// MockGuildService is a mock implementation of the GuildService interface
type MockGuildService struct {
	mock.Mock
}

func (m *MockGuildService) ListRoles(ctx context.Context) ([]models.GuildRole, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GuildRole), args.Error(1)
}

func (m *MockGuildService) GetGuildDetails(ctx context.Context) (*models.GuildDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuildDetails), args.Error(1)
}

func (m *MockGuildService) GetGuildWidget(ctx context.Context) (*models.GuildWidget, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuildWidget), args.Error(1)
}

func (m *MockGuildService) GetMember(ctx context.Context, userID string) (*models.EnrichedMember, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EnrichedMember), args.Error(1)
}

func (m *MockGuildService) GetMembersByRoleName(
	ctx context.Context,
	roleName string,
) ([]models.EnrichedMember, error) {
	args := m.Called(ctx, roleName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EnrichedMember), args.Error(1)
}

func (m *MockGuildService) GetChannelMessages(
	ctx context.Context,
	channelID string,
	limit int,
) ([]models.ChannelMessage, error) {
	args := m.Called(ctx, channelID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChannelMessage), args.Error(1)
}

func (m *MockGuildService) GetPartners(ctx context.Context) ([]models.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Partner), args.Error(1)
}

func (m *MockGuildService) SendChannelMessage(ctx context.Context, channelID, content string) error {
	args := m.Called(ctx, channelID, content)
	return args.Error(0)
}

// MockContentService is a mock implementation of the ContentService interface
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Normalize(
	ctx context.Context,
	content string,
	roles []models.GuildRole,
) models.NormalizedContent {
	args := m.Called(ctx, content, roles)
	return args.Get(0).(models.NormalizedContent)
}

// MockEconomyService is a mock implementation of the EconomyService interface
type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) GetProfile(
	ctx context.Context,
	userID string,
) (mo.Option[*models.EconomyProfile], error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return mo.None[*models.EconomyProfile](), args.Error(1)
	}
	return args.Get(0).(mo.Option[*models.EconomyProfile]), args.Error(1)
}

func (m *MockEconomyService) ExecuteAction(
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

// MockGuideService is a mock implementation of the GuideService interface
type MockGuideService struct {
	mock.Mock
}

func (m *MockGuideService) Ask(ctx context.Context, query string) (*models.GuideAnswer, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuideAnswer), args.Error(1)
}

// MockAuthService is a mock implementation of the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) LoginURL(state string) (string, error) {
	args := m.Called(state)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) HandleCallback(ctx context.Context, code string) (*models.SessionUser, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionUser), args.Error(1)
}

func (m *MockAuthService) VerifyLoginCode(
	ctx context.Context,
	code string,
) (mo.Option[*models.SessionUser], error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return mo.None[*models.SessionUser](), args.Error(1)
	}
	return args.Get(0).(mo.Option[*models.SessionUser]), args.Error(1)
}
