package content

import (
	"context"
	"log"
	"regexp"
	"strings"

	"sanctyr/clients"
	"sanctyr/models"
	"sanctyr/services"
)

var (
	roleMentionPattern = regexp.MustCompile(`<@&(\d+)>`)
	tenorLinkPattern   = regexp.MustCompile(`https://tenor\.com/view/[a-zA-Z0-9-]+-(\d+)`)
)

// ContentService rewrites raw message content for display: role mention
// tokens become readable @RoleName text, Tenor view-page links resolve to
// renderable GIF URLs, everything unrecognized passes through unchanged.
// Single-pass regex substitution, nothing recursive.
type ContentService struct {
	tenorClient clients.TenorClient
}

func NewContentService(tenorClient clients.TenorClient) services.ContentService {
	return &ContentService{tenorClient: tenorClient}
}

func (s *ContentService) Normalize(ctx context.Context, content string, roles []models.GuildRole) models.NormalizedContent {
	normalized := models.NormalizedContent{
		RoleMentions: []models.RoleMention{},
	}

	rolesByID := make(map[string]models.GuildRole, len(roles))
	for _, role := range roles {
		rolesByID[role.ID] = role
	}

	mentioned := make(map[string]bool)
	display := roleMentionPattern.ReplaceAllStringFunc(content, func(token string) string {
		roleID := roleMentionPattern.FindStringSubmatch(token)[1]
		role, ok := rolesByID[roleID]
		if !ok {
			// Unknown role, leave the token as-is
			return token
		}
		if !mentioned[role.ID] {
			mentioned[role.ID] = true
			normalized.RoleMentions = append(normalized.RoleMentions, models.RoleMention{
				RoleID: role.ID,
				Name:   role.Name,
				Color:  role.Color,
			})
		}
		return "@" + role.Name
	})

	if match := tenorLinkPattern.FindStringSubmatch(display); match != nil {
		gifURL, err := s.tenorClient.ResolveGifURL(ctx, match[1])
		if err != nil {
			log.Printf("⚠️ Could not resolve Tenor GIF %s: %v", match[1], err)
		} else {
			normalized.GifURL = gifURL
		}
		// Only the link we attempted to resolve is stripped; any further
		// Tenor links stay in the text as plain links
		display = strings.TrimSpace(strings.Replace(display, match[0], "", 1))
	}

	normalized.DisplayContent = display
	return normalized
}
