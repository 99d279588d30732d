package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"sanctyr/clients"
	"sanctyr/core"

	"github.com/bwmarrin/discordgo"
)

var (
	discordAPIBase  = "https://discord.com/api/v10"
	discordOAuthURL = discordAPIBase + "/oauth2/token"
	discordMeURL    = discordAPIBase + "/users/@me"
)

// DiscordClient implements the clients.DiscordClient interface
type DiscordClient struct {
	// httpClient is used for the public widget endpoint and for OAuth,
	// neither of which discordgo supports
	httpClient *http.Client
	// botToken is the Discord bot token used for API requests
	botToken string
}

// NewDiscordClient creates a new Discord REST client. An empty botToken is
// allowed: authenticated calls then short-circuit with core.ErrNotConfigured,
// while the public widget endpoint keeps working.
func NewDiscordClient(httpClient *http.Client, botToken string) clients.DiscordClient {
	return &DiscordClient{
		httpClient: httpClient,
		botToken:   botToken,
	}
}

// session builds a discordgo session around our HTTP client. discordgo is
// used purely as a REST client here; the gateway is never opened.
func (c *DiscordClient) session() (*discordgo.Session, error) {
	if c.botToken == "" {
		return nil, core.ErrNotConfigured
	}

	sdkClient, err := discordgo.New("Bot " + c.botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	sdkClient.Client = c.httpClient

	return sdkClient, nil
}

// normalizeRESTError maps discordgo REST errors onto the client's error
// taxonomy so callers can branch on sentinels instead of status codes.
func normalizeRESTError(err error, what string) error {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		if restErr.Response.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s: %w", what, core.ErrNotFound)
		}
		return fmt.Errorf("%s failed with status %d: %w", what, restErr.Response.StatusCode, core.ErrUpstream)
	}
	return fmt.Errorf("failed to fetch %s: %w", what, err)
}

// GetGuildWithCounts fetches guild metadata including approximate member
// and presence counts.
func (c *DiscordClient) GetGuildWithCounts(ctx context.Context, guildID string) (*clients.DiscordGuild, error) {
	sdkClient, err := c.session()
	if err != nil {
		return nil, err
	}

	discordGuild, err := sdkClient.GuildWithCounts(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, normalizeRESTError(err, "guild")
	}
	if discordGuild == nil {
		return nil, fmt.Errorf("guild: %w", core.ErrNotFound)
	}

	return &clients.DiscordGuild{
		ID:                       discordGuild.ID,
		Name:                     discordGuild.Name,
		Icon:                     discordGuild.Icon,
		ApproximateMemberCount:   discordGuild.ApproximateMemberCount,
		ApproximatePresenceCount: discordGuild.ApproximatePresenceCount,
		PremiumSubscriptionCount: discordGuild.PremiumSubscriptionCount,
		PremiumTier:              int(discordGuild.PremiumTier),
	}, nil
}

// GetGuildRoles fetches all roles of the guild. Ordering is whatever the
// API returns; sorting by position is the role resolver's job.
func (c *DiscordClient) GetGuildRoles(ctx context.Context, guildID string) ([]clients.DiscordRole, error) {
	sdkClient, err := c.session()
	if err != nil {
		return nil, err
	}

	discordRoles, err := sdkClient.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, normalizeRESTError(err, "guild roles")
	}

	roles := make([]clients.DiscordRole, 0, len(discordRoles))
	for _, role := range discordRoles {
		roles = append(roles, clients.DiscordRole{
			ID:       role.ID,
			Name:     role.Name,
			Color:    role.Color,
			Position: role.Position,
		})
	}

	return roles, nil
}

// GetGuildMember fetches a single membership record by user ID.
func (c *DiscordClient) GetGuildMember(ctx context.Context, guildID, userID string) (*clients.DiscordMember, error) {
	sdkClient, err := c.session()
	if err != nil {
		return nil, err
	}

	member, err := sdkClient.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, normalizeRESTError(err, "guild member")
	}

	converted := convertMember(member)
	return &converted, nil
}

// ListGuildMembers fetches up to limit membership records (the API caps a
// single page at 1000).
func (c *DiscordClient) ListGuildMembers(ctx context.Context, guildID string, limit int) ([]clients.DiscordMember, error) {
	sdkClient, err := c.session()
	if err != nil {
		return nil, err
	}

	discordMembers, err := sdkClient.GuildMembers(guildID, "", limit, discordgo.WithContext(ctx))
	if err != nil {
		return nil, normalizeRESTError(err, "guild members")
	}

	members := make([]clients.DiscordMember, 0, len(discordMembers))
	for _, member := range discordMembers {
		members = append(members, convertMember(member))
	}

	return members, nil
}

// GetChannelMessages fetches the most recent messages of a channel.
func (c *DiscordClient) GetChannelMessages(ctx context.Context, channelID string, limit int) ([]clients.DiscordMessage, error) {
	sdkClient, err := c.session()
	if err != nil {
		return nil, err
	}

	discordMessages, err := sdkClient.ChannelMessages(channelID, limit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, normalizeRESTError(err, "channel messages")
	}

	messages := make([]clients.DiscordMessage, 0, len(discordMessages))
	for _, msg := range discordMessages {
		messages = append(messages, convertMessage(msg))
	}

	return messages, nil
}

// SendChannelMessage posts a plain-text message to a channel. This is the
// one write this system performs against the chat platform; it is
// fire-and-forget with no ordering guarantee.
func (c *DiscordClient) SendChannelMessage(ctx context.Context, channelID, content string) error {
	sdkClient, err := c.session()
	if err != nil {
		return err
	}

	if _, err := sdkClient.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx)); err != nil {
		return normalizeRESTError(err, "channel message send")
	}

	return nil
}

// GetGuildWidget fetches the guild's public widget.json. This endpoint is
// unauthenticated, so it works even without a bot token. A 204 means the
// widget is administratively disabled and maps to core.ErrWidgetDisabled.
func (c *DiscordClient) GetGuildWidget(ctx context.Context, guildID string) (*clients.DiscordWidget, error) {
	widgetURL := fmt.Sprintf("%s/guilds/%s/widget.json", discordAPIBase, guildID)

	req, err := http.NewRequestWithContext(ctx, "GET", widgetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create widget request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch widget: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, core.ErrWidgetDisabled
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("widget: %w", core.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("widget request failed with status %d: %w", resp.StatusCode, core.ErrUpstream)
	}

	var widget clients.DiscordWidget
	if err := json.NewDecoder(resp.Body).Decode(&widget); err != nil {
		return nil, fmt.Errorf("failed to decode widget response: %w", err)
	}

	return &widget, nil
}

// ExchangeCodeForToken exchanges an OAuth authorization code for access tokens.
// This uses HTTP directly as discordgo doesn't support OAuth2 token exchange.
func (c *DiscordClient) ExchangeCodeForToken(
	ctx context.Context,
	clientID, clientSecret, code, redirectURL string,
) (*clients.DiscordOAuthResponse, error) {
	data := url.Values{}
	data.Set("client_id", clientID)
	data.Set("client_secret", clientSecret)
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("redirect_uri", redirectURL)

	req, err := http.NewRequestWithContext(
		ctx,
		"POST",
		discordOAuthURL,
		strings.NewReader(data.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OAuth request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute OAuth request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("OAuth request failed with status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read OAuth response body: %w", err)
	}

	var oauthResp clients.DiscordOAuthResponse
	if err := json.Unmarshal(body, &oauthResp); err != nil {
		return nil, fmt.Errorf("failed to decode OAuth response: %w", err)
	}

	return &oauthResp, nil
}

// GetCurrentUser fetches /users/@me with the visitor's OAuth access token
// (not the bot token).
func (c *DiscordClient) GetCurrentUser(ctx context.Context, accessToken string) (*clients.DiscordUser, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", discordMeURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("current user request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var user struct {
		ID            string `json:"id"`
		Username      string `json:"username"`
		GlobalName    string `json:"global_name"`
		Avatar        string `json:"avatar"`
		Discriminator string `json:"discriminator"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode current user response: %w", err)
	}

	return &clients.DiscordUser{
		ID:            user.ID,
		Username:      user.Username,
		GlobalName:    user.GlobalName,
		Avatar:        user.Avatar,
		Discriminator: user.Discriminator,
	}, nil
}

func convertMember(member *discordgo.Member) clients.DiscordMember {
	converted := clients.DiscordMember{
		Nick:    member.Nick,
		RoleIDs: member.Roles,
	}
	if member.User != nil {
		converted.User = convertUser(member.User)
	}
	return converted
}

func convertUser(user *discordgo.User) clients.DiscordUser {
	return clients.DiscordUser{
		ID:            user.ID,
		Username:      user.Username,
		GlobalName:    user.GlobalName,
		Avatar:        user.Avatar,
		Discriminator: user.Discriminator,
	}
}

func convertMessage(msg *discordgo.Message) clients.DiscordMessage {
	converted := clients.DiscordMessage{
		ID:             msg.ID,
		Content:        msg.Content,
		Timestamp:      msg.Timestamp,
		MentionRoleIDs: msg.MentionRoles,
	}
	if msg.Author != nil {
		converted.Author = convertUser(msg.Author)
	}
	for _, att := range msg.Attachments {
		converted.Attachments = append(converted.Attachments, clients.DiscordAttachment{
			URL:         att.URL,
			ProxyURL:    att.ProxyURL,
			Width:       att.Width,
			Height:      att.Height,
			ContentType: att.ContentType,
		})
	}
	for _, embed := range msg.Embeds {
		convertedEmbed := clients.DiscordEmbed{
			Title:       embed.Title,
			Description: embed.Description,
		}
		if embed.Image != nil {
			convertedEmbed.ImageURL = embed.Image.URL
		}
		for _, field := range embed.Fields {
			convertedEmbed.Fields = append(convertedEmbed.Fields, clients.DiscordEmbedField{
				Name:  field.Name,
				Value: field.Value,
			})
		}
		converted.Embeds = append(converted.Embeds, convertedEmbed)
	}
	return converted
}
