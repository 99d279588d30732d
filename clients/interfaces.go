package clients

import (
	"context"

	"sanctyr/models"
)

// DiscordClient defines the REST surface this service consumes from the
// chat platform. Every method normalizes transport and HTTP errors; a
// missing bot token short-circuits with core.ErrNotConfigured before any
// network call, except GetGuildWidget which is a public endpoint.
type DiscordClient interface {
	GetGuildWithCounts(ctx context.Context, guildID string) (*DiscordGuild, error)
	GetGuildRoles(ctx context.Context, guildID string) ([]DiscordRole, error)
	GetGuildMember(ctx context.Context, guildID, userID string) (*DiscordMember, error)
	ListGuildMembers(ctx context.Context, guildID string, limit int) ([]DiscordMember, error)
	GetChannelMessages(ctx context.Context, channelID string, limit int) ([]DiscordMessage, error)
	SendChannelMessage(ctx context.Context, channelID, content string) error
	GetGuildWidget(ctx context.Context, guildID string) (*DiscordWidget, error)
	ExchangeCodeForToken(ctx context.Context, clientID, clientSecret, code, redirectURL string) (*DiscordOAuthResponse, error)
	GetCurrentUser(ctx context.Context, accessToken string) (*DiscordUser, error)
}

// EconomyClient talks to the bot-operated economy microservice. It is a
// distinct failure domain from the chat platform client.
type EconomyClient interface {
	GetProfile(ctx context.Context, userID string) (*models.EconomyProfile, error)
	ExecuteAction(ctx context.Context, command, userID string, args []string) (*models.EconomyActionResult, error)
}

// TenorClient resolves Tenor view-page links to directly renderable GIF URLs.
type TenorClient interface {
	ResolveGifURL(ctx context.Context, postID string) (string, error)
}

// GuideClient dispatches a free-text query to the hosted model behind the
// Sanctuary Guide and returns its markdown answer.
type GuideClient interface {
	Ask(ctx context.Context, query string) (string, error)
}
