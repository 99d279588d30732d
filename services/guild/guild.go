package guild

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"sanctyr/core"

	"sanctyr/cache"
	"sanctyr/clients"
	"sanctyr/models"
	"sanctyr/services"
)

// defaultFeedLimit is the message count the site's feed widgets request.
const defaultFeedLimit = 5

// GuildService aggregates chat-platform data into the view models the site
// renders. All reads go through the advisory response cache; callers must
// tolerate slightly stale data.
type GuildService struct {
	discordClient     clients.DiscordClient
	contentService    services.ContentService
	responseCache     *cache.ResponseCache
	guildID           string
	partnersChannelID string
}

func NewGuildService(
	discordClient clients.DiscordClient,
	contentService services.ContentService,
	responseCache *cache.ResponseCache,
	guildID string,
	partnersChannelID string,
) *GuildService {
	return &GuildService{
		discordClient:     discordClient,
		contentService:    contentService,
		responseCache:     responseCache,
		guildID:           guildID,
		partnersChannelID: partnersChannelID,
	}
}

// ListRoles fetches the guild's roles sorted descending by position.
func (s *GuildService) ListRoles(ctx context.Context) ([]models.GuildRole, error) {
	return cache.Fetch(s.responseCache, "discord:roles:"+s.guildID, cache.TTLSlow, func() ([]models.GuildRole, error) {
		discordRoles, err := s.discordClient.GetGuildRoles(ctx, s.guildID)
		if err != nil {
			return nil, fmt.Errorf("failed to list guild roles: %w", err)
		}

		roles := make([]models.GuildRole, 0, len(discordRoles))
		for _, role := range discordRoles {
			roles = append(roles, models.GuildRole{
				ID:       role.ID,
				Name:     role.Name,
				Color:    role.Color,
				Position: role.Position,
			})
		}
		return SortRolesByPosition(roles), nil
	})
}

// GetGuildDetails merges the guild-with-counts fetch and the public widget
// into one denormalized view model. The two fetches run concurrently.
// Failure policy is asymmetric: the primary metadata fetch is required,
// the widget is optional presence garnish.
func (s *GuildService) GetGuildDetails(ctx context.Context) (*models.GuildDetails, error) {
	return cache.Fetch(s.responseCache, "discord:details:"+s.guildID, cache.TTLLive, func() (*models.GuildDetails, error) {
		var (
			discordGuild *clients.DiscordGuild
			widget       *clients.DiscordWidget
			widgetErr    error
		)

		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			var err error
			discordGuild, err = s.discordClient.GetGuildWithCounts(groupCtx, s.guildID)
			return err
		})
		group.Go(func() error {
			// Widget failure must not fail the aggregate, so its error
			// stays out of the group's error channel.
			widget, widgetErr = s.discordClient.GetGuildWidget(groupCtx, s.guildID)
			return nil
		})

		if err := group.Wait(); err != nil {
			return nil, fmt.Errorf("failed to fetch guild details: %w", err)
		}

		onlineCount := 0
		if widgetErr != nil {
			log.Printf("⚠️ Could not fetch guild widget, online count may be inaccurate: %v", widgetErr)
		} else if widget != nil {
			onlineCount = widget.PresenceCount
		}

		return &models.GuildDetails{
			Name:                     discordGuild.Name,
			MemberCount:              discordGuild.ApproximateMemberCount,
			OnlineCount:              onlineCount,
			IconURL:                  GuildIconURL(s.guildID, discordGuild.Icon),
			PremiumSubscriptionCount: discordGuild.PremiumSubscriptionCount,
			PremiumTier:              discordGuild.PremiumTier,
		}, nil
	})
}

// GetGuildWidget returns the public widget view model.
func (s *GuildService) GetGuildWidget(ctx context.Context) (*models.GuildWidget, error) {
	return cache.Fetch(s.responseCache, "discord:widget:"+s.guildID, cache.TTLLive, func() (*models.GuildWidget, error) {
		widget, err := s.discordClient.GetGuildWidget(ctx, s.guildID)
		if err != nil {
			return nil, err
		}

		members := make([]models.WidgetMember, 0, len(widget.Members))
		for _, member := range widget.Members {
			members = append(members, models.WidgetMember{
				ID:        member.ID,
				Username:  member.Username,
				AvatarURL: member.AvatarURL,
			})
		}

		return &models.GuildWidget{
			Name:          widget.Name,
			InstantInvite: widget.InstantInvite,
			PresenceCount: widget.PresenceCount,
			Members:       members,
		}, nil
	})
}

// GetMember fetches a membership record and joins it against the sorted
// role list.
func (s *GuildService) GetMember(ctx context.Context, userID string) (*models.EnrichedMember, error) {
	var (
		member *clients.DiscordMember
		roles  []models.GuildRole
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		member, err = s.discordClient.GetGuildMember(groupCtx, s.guildID, userID)
		return err
	})
	group.Go(func() error {
		var err error
		roles, err = s.ListRoles(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	enriched := s.enrichMember(member, roles)
	return &enriched, nil
}

// GetMembersByRoleName lists guild members that hold the named role
// (case-insensitive match on the role name).
func (s *GuildService) GetMembersByRoleName(ctx context.Context, roleName string) ([]models.EnrichedMember, error) {
	roles, err := s.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	var wanted *models.GuildRole
	for i := range roles {
		if strings.EqualFold(roles[i].Name, roleName) {
			wanted = &roles[i]
			break
		}
	}
	if wanted == nil {
		return nil, fmt.Errorf("role %q: %w", roleName, core.ErrNotFound)
	}

	members, err := cache.Fetch(s.responseCache, "discord:members:"+s.guildID, cache.TTLSlow,
		func() ([]clients.DiscordMember, error) {
			return s.discordClient.ListGuildMembers(ctx, s.guildID, 1000)
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list guild members: %w", err)
	}

	matched := make([]models.EnrichedMember, 0)
	for i := range members {
		for _, roleID := range members[i].RoleIDs {
			if roleID == wanted.ID {
				matched = append(matched, s.enrichMember(&members[i], roles))
				break
			}
		}
	}
	return matched, nil
}

// GetChannelMessages fetches the latest channel messages and enriches each
// with its author's membership record, resolved roles and normalized
// content. A failed member lookup degrades that message, not the feed.
func (s *GuildService) GetChannelMessages(ctx context.Context, channelID string, limit int) ([]models.ChannelMessage, error) {
	if channelID == "" {
		return nil, fmt.Errorf("channel ID not provided")
	}

	var (
		rawMessages []clients.DiscordMessage
		roles       []models.GuildRole
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		rawMessages, err = cache.Fetch(s.responseCache,
			fmt.Sprintf("discord:messages:%s:%d", channelID, limit), cache.TTLLive,
			func() ([]clients.DiscordMessage, error) {
				return s.discordClient.GetChannelMessages(groupCtx, channelID, limit)
			})
		return err
	})
	group.Go(func() error {
		var err error
		roles, err = s.ListRoles(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// One member lookup per distinct author, fetched concurrently
	authorIDs := make([]string, 0)
	seen := make(map[string]struct{})
	for _, msg := range rawMessages {
		if _, ok := seen[msg.Author.ID]; !ok {
			seen[msg.Author.ID] = struct{}{}
			authorIDs = append(authorIDs, msg.Author.ID)
		}
	}

	fetched := make([]*clients.DiscordMember, len(authorIDs))
	memberGroup, memberCtx := errgroup.WithContext(ctx)
	for i, authorID := range authorIDs {
		memberGroup.Go(func() error {
			member, err := s.discordClient.GetGuildMember(memberCtx, s.guildID, authorID)
			if err != nil {
				log.Printf("⚠️ Could not fetch member %s: %v", authorID, err)
				return nil
			}
			fetched[i] = member
			return nil
		})
	}
	_ = memberGroup.Wait()

	members := make(map[string]*clients.DiscordMember, len(authorIDs))
	for i, authorID := range authorIDs {
		if fetched[i] != nil {
			members[authorID] = fetched[i]
		}
	}

	messages := make([]models.ChannelMessage, 0, len(rawMessages))
	for _, raw := range rawMessages {
		messages = append(messages, s.composeMessage(ctx, raw, roles, members[raw.Author.ID]))
	}
	return messages, nil
}

// GetPartners reads the partner showcase out of the partners channel:
// one embed message per partnered community. Malformed embeds are skipped.
func (s *GuildService) GetPartners(ctx context.Context) ([]models.Partner, error) {
	if s.partnersChannelID == "" {
		return nil, fmt.Errorf("partners channel ID not configured")
	}

	rawMessages, err := cache.Fetch(s.responseCache, "discord:partners:"+s.partnersChannelID, cache.TTLSlow,
		func() ([]clients.DiscordMessage, error) {
			return s.discordClient.GetChannelMessages(ctx, s.partnersChannelID, 25)
		})
	if err != nil {
		return nil, err
	}

	partners := make([]models.Partner, 0)
	for _, msg := range rawMessages {
		if len(msg.Embeds) == 0 {
			continue
		}
		embed := msg.Embeds[0]
		if embed.Title == "" || embed.ImageURL == "" {
			continue
		}

		partner := models.Partner{
			Name:        embed.Title,
			JoinLink:    "#",
			ImageURL:    embed.ImageURL,
			Description: embed.Description,
			Tags:        []string{},
		}
		for _, field := range embed.Fields {
			switch strings.ToLower(field.Name) {
			case "invite link":
				partner.JoinLink = field.Value
			case "tags":
				for _, tag := range strings.Split(field.Value, ",") {
					if trimmed := strings.TrimSpace(tag); trimmed != "" {
						partner.Tags = append(partner.Tags, trimmed)
					}
				}
			}
		}
		partners = append(partners, partner)
	}
	return partners, nil
}

// SendChannelMessage posts a message and drops the channel's cached feed.
func (s *GuildService) SendChannelMessage(ctx context.Context, channelID, content string) error {
	if channelID == "" {
		return fmt.Errorf("channel ID not provided")
	}
	if err := s.discordClient.SendChannelMessage(ctx, channelID, content); err != nil {
		return err
	}
	s.responseCache.Invalidate(fmt.Sprintf("discord:messages:%s:%d", channelID, defaultFeedLimit))
	return nil
}

func (s *GuildService) enrichMember(member *clients.DiscordMember, sortedRoles []models.GuildRole) models.EnrichedMember {
	converted := models.GuildMember{
		User: models.GuildUser{
			ID:         member.User.ID,
			Username:   member.User.Username,
			GlobalName: member.User.GlobalName,
			Avatar:     member.User.Avatar,
		},
		Nick:    member.Nick,
		RoleIDs: member.RoleIDs,
	}

	return models.EnrichedMember{
		GuildMember: converted,
		DisplayName: ResolveDisplayName(member.Nick, member.User.GlobalName, member.User.Username),
		AvatarURL:   AvatarURL(member.User.ID, member.User.Avatar),
		HighestRole: HighestRole(sortedRoles, member.RoleIDs),
		Roles:       MemberRoles(sortedRoles, member.RoleIDs),
	}
}

func (s *GuildService) composeMessage(
	ctx context.Context,
	raw clients.DiscordMessage,
	sortedRoles []models.GuildRole,
	member *clients.DiscordMember,
) models.ChannelMessage {
	displayName := ResolveDisplayName("", raw.Author.GlobalName, raw.Author.Username)
	var enriched *models.EnrichedMember
	if member != nil {
		e := s.enrichMember(member, sortedRoles)
		enriched = &e
		displayName = e.DisplayName
	}

	normalized := s.contentService.Normalize(ctx, raw.Content, sortedRoles)

	attachments := make([]models.MessageAttachment, 0, len(raw.Attachments))
	for _, att := range raw.Attachments {
		attachments = append(attachments, models.MessageAttachment{
			URL:         att.URL,
			ProxyURL:    att.ProxyURL,
			Width:       att.Width,
			Height:      att.Height,
			ContentType: att.ContentType,
		})
	}

	return models.ChannelMessage{
		ID:             raw.ID,
		Content:        raw.Content,
		DisplayContent: normalized.DisplayContent,
		Author: models.MessageAuthor{
			ID:          raw.Author.ID,
			Username:    raw.Author.Username,
			DisplayName: displayName,
			AvatarURL:   AvatarURL(raw.Author.ID, raw.Author.Avatar),
		},
		Timestamp:      raw.Timestamp,
		Attachments:    attachments,
		MentionRoleIDs: raw.MentionRoleIDs,
		ResolvedRoles:  normalized.RoleMentions,
		GifURL:         normalized.GifURL,
		Member:         enriched,
	}
}
