package models

import (
	"github.com/samber/mo"
)

// GuildRole is a role defined on the community server.
// Color is the packed RGB integer Discord uses; Position is the display
// precedence rank (higher = more prominent).
type GuildRole struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    int    `json:"color"`
	Position int    `json:"position"`
}

// GuildUser is the platform-wide identity embedded in a membership record.
type GuildUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	Avatar     string `json:"avatar"`
}

// GuildMember is a user's membership record in the guild.
type GuildMember struct {
	User    GuildUser `json:"user"`
	Nick    string    `json:"nick"`
	RoleIDs []string  `json:"roles"`
}

// EnrichedMember is a membership record joined against the sorted role list.
type EnrichedMember struct {
	GuildMember
	DisplayName string               `json:"display_name"`
	AvatarURL   string               `json:"avatar_url"`
	HighestRole mo.Option[GuildRole] `json:"highest_role"`
	Roles       []GuildRole          `json:"resolved_roles"`
}

// GuildDetails is the denormalized guild-wide stats view model, composed
// from the guild-with-counts endpoint and the public widget.
type GuildDetails struct {
	Name                     string `json:"name"`
	MemberCount              int    `json:"member_count"`
	OnlineCount              int    `json:"online_count"`
	IconURL                  string `json:"icon_url"`
	PremiumSubscriptionCount int    `json:"premium_subscription_count"`
	PremiumTier              int    `json:"premium_tier"`
}

// WidgetMember is a sample member entry from the public widget.
type WidgetMember struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// GuildWidget is the guild's public, unauthenticated summary. It can be
// administratively disabled, in which case none of this is available.
type GuildWidget struct {
	Name          string         `json:"name"`
	InstantInvite string         `json:"instant_invite"`
	PresenceCount int            `json:"presence_count"`
	Members       []WidgetMember `json:"members"`
}
