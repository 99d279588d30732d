package clients

import (
	"time"
)

// DiscordGuild is guild metadata fetched with approximate counts.
type DiscordGuild struct {
	ID                       string
	Name                     string
	Icon                     string
	ApproximateMemberCount   int
	ApproximatePresenceCount int
	PremiumSubscriptionCount int
	PremiumTier              int
}

// DiscordRole mirrors a guild role as returned by the API.
type DiscordRole struct {
	ID       string
	Name     string
	Color    int
	Position int
}

// DiscordUser mirrors a platform user payload.
type DiscordUser struct {
	ID            string
	Username      string
	GlobalName    string
	Avatar        string
	Discriminator string
}

// DiscordMember mirrors a guild membership payload.
type DiscordMember struct {
	User    DiscordUser
	Nick    string
	RoleIDs []string
}

// DiscordAttachment mirrors a message attachment payload.
type DiscordAttachment struct {
	URL         string
	ProxyURL    string
	Width       int
	Height      int
	ContentType string
}

// DiscordEmbedField is a single field of a message embed.
type DiscordEmbedField struct {
	Name  string
	Value string
}

// DiscordEmbed carries the embed parts the site reads (partner cards).
type DiscordEmbed struct {
	Title       string
	Description string
	ImageURL    string
	Fields      []DiscordEmbedField
}

// DiscordMessage mirrors a channel message payload.
type DiscordMessage struct {
	ID             string
	Content        string
	Author         DiscordUser
	Timestamp      time.Time
	Attachments    []DiscordAttachment
	MentionRoleIDs []string
	Embeds         []DiscordEmbed
}

// DiscordWidget mirrors the public widget.json payload.
type DiscordWidget struct {
	Name          string               `json:"name"`
	InstantInvite string               `json:"instant_invite"`
	PresenceCount int                  `json:"presence_count"`
	Members       []DiscordWidgetMember `json:"members"`
}

// DiscordWidgetMember is a sample member entry from widget.json.
type DiscordWidgetMember struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// DiscordOAuthResponse is the OAuth2 token exchange response.
type DiscordOAuthResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
}
