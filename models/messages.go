package models

import (
	"time"
)

// MessageAuthor is the normalized author of a channel message.
type MessageAuthor struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// MessageAttachment is a file or image attached to a message.
type MessageAttachment struct {
	URL         string `json:"url"`
	ProxyURL    string `json:"proxy_url"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ContentType string `json:"content_type"`
}

// RoleMention is a role reference resolved out of message content.
type RoleMention struct {
	RoleID string `json:"role_id"`
	Name   string `json:"name"`
	Color  int    `json:"color"`
}

// ChannelMessage is a single chat message normalized for the site's feeds.
// Content may still contain platform mention/markup tokens; DisplayContent
// carries the normalized text once content normalization has run.
type ChannelMessage struct {
	ID             string              `json:"id"`
	Content        string              `json:"content"`
	DisplayContent string              `json:"display_content"`
	Author         MessageAuthor       `json:"author"`
	Timestamp      time.Time           `json:"timestamp"`
	Attachments    []MessageAttachment `json:"attachments"`
	MentionRoleIDs []string            `json:"mention_role_ids"`
	ResolvedRoles  []RoleMention       `json:"resolved_roles"`
	GifURL         string              `json:"gif_url,omitempty"`
	Member         *EnrichedMember     `json:"member"`
}

// NormalizedContent is the result of single-pass content normalization:
// mention tokens resolved, GIF links looked up, everything else unchanged.
type NormalizedContent struct {
	DisplayContent string        `json:"display_content"`
	RoleMentions   []RoleMention `json:"role_mentions"`
	GifURL         string        `json:"gif_url,omitempty"`
}

// Partner is a partnered community parsed from a partners-channel embed.
type Partner struct {
	Name        string   `json:"name"`
	JoinLink    string   `json:"join_link"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}
