package services

import (
	"context"

	"github.com/samber/mo"

	"sanctyr/models"
)

// GuildService defines the guild-data aggregation and view-model operations
type GuildService interface {
	// ListRoles returns all guild roles sorted descending by position,
	// ties keeping API order. Callers depend on this ordering for
	// highest-role selection.
	ListRoles(ctx context.Context) ([]models.GuildRole, error)
	// GetGuildDetails merges guild-with-counts and the public widget.
	// The widget is optional: its failure degrades online count to 0.
	GetGuildDetails(ctx context.Context) (*models.GuildDetails, error)
	GetGuildWidget(ctx context.Context) (*models.GuildWidget, error)
	GetMember(ctx context.Context, userID string) (*models.EnrichedMember, error)
	GetMembersByRoleName(ctx context.Context, roleName string) ([]models.EnrichedMember, error)
	GetChannelMessages(ctx context.Context, channelID string, limit int) ([]models.ChannelMessage, error)
	GetPartners(ctx context.Context) ([]models.Partner, error)
	SendChannelMessage(ctx context.Context, channelID, content string) error
}

// ContentService normalizes raw message content for display
type ContentService interface {
	Normalize(ctx context.Context, content string, roles []models.GuildRole) models.NormalizedContent
}

// EconomyService defines read and proxy operations against the economy system
type EconomyService interface {
	// GetProfile returns None when the user has no profile yet (upstream 404)
	GetProfile(ctx context.Context, userID string) (mo.Option[*models.EconomyProfile], error)
	ExecuteAction(ctx context.Context, command, userID string, args []string) (*models.EconomyActionResult, error)
}

// GuideService answers visitor questions through the hosted model
type GuideService interface {
	Ask(ctx context.Context, query string) (*models.GuideAnswer, error)
}

// AuthService implements the Discord OAuth login flow and bot-code login
type AuthService interface {
	LoginURL(state string) (string, error)
	HandleCallback(ctx context.Context, code string) (*models.SessionUser, error)
	VerifyLoginCode(ctx context.Context, code string) (mo.Option[*models.SessionUser], error)
}
