package guild

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/samber/mo"

	"sanctyr/models"
)

const cdnBase = "https://cdn.discordapp.com"

// defaultAvatarCount is the number of stock avatars the CDN serves.
const defaultAvatarCount = 6

// SortRolesByPosition orders roles descending by position. The sort is
// stable: ties keep their input order, which callers rely on when picking
// a member's highest role.
func SortRolesByPosition(roles []models.GuildRole) []models.GuildRole {
	sorted := make([]models.GuildRole, len(roles))
	copy(sorted, roles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position > sorted[j].Position
	})
	return sorted
}

// ResolveDisplayName picks a member's display name with strict precedence:
// per-guild nickname, else platform-wide display name, else username.
func ResolveDisplayName(nick, globalName, username string) string {
	if nick != "" {
		return nick
	}
	if globalName != "" {
		return globalName
	}
	return username
}

// HighestRole returns the first role in sortedRoles whose ID the member
// holds, or None if the member holds no known role. sortedRoles must
// already be in descending position order.
func HighestRole(sortedRoles []models.GuildRole, memberRoleIDs []string) mo.Option[models.GuildRole] {
	if len(memberRoleIDs) == 0 {
		return mo.None[models.GuildRole]()
	}

	held := make(map[string]struct{}, len(memberRoleIDs))
	for _, id := range memberRoleIDs {
		held[id] = struct{}{}
	}

	for _, role := range sortedRoles {
		if _, ok := held[role.ID]; ok {
			return mo.Some(role)
		}
	}
	return mo.None[models.GuildRole]()
}

// MemberRoles returns every role in sortedRoles the member holds,
// preserving the descending position order.
func MemberRoles(sortedRoles []models.GuildRole, memberRoleIDs []string) []models.GuildRole {
	held := make(map[string]struct{}, len(memberRoleIDs))
	for _, id := range memberRoleIDs {
		held[id] = struct{}{}
	}

	roles := make([]models.GuildRole, 0)
	for _, role := range sortedRoles {
		if _, ok := held[role.ID]; ok {
			roles = append(roles, role)
		}
	}
	return roles
}

// DefaultAvatarIndex derives the stock avatar index for a user without a
// custom avatar hash: (id >> 22) mod 6, as the platform's CDN expects.
func DefaultAvatarIndex(userID string) int {
	id, err := strconv.ParseUint(userID, 10, 64)
	if err != nil {
		return 0
	}
	return int((id >> 22) % defaultAvatarCount)
}

// AvatarURL derives a user's avatar URL, falling back deterministically to
// a stock avatar when no custom hash is set.
func AvatarURL(userID, avatarHash string) string {
	if avatarHash != "" {
		return fmt.Sprintf("%s/avatars/%s/%s.png", cdnBase, userID, avatarHash)
	}
	return fmt.Sprintf("%s/embed/avatars/%d.png", cdnBase, DefaultAvatarIndex(userID))
}

// GuildIconURL derives the guild icon URL, or "" when no icon is set.
func GuildIconURL(guildID, iconHash string) string {
	if iconHash == "" {
		return ""
	}
	return fmt.Sprintf("%s/icons/%s/%s.png", cdnBase, guildID, iconHash)
}
