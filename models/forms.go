package models

import (
	"time"
)

// NewsletterSignup is a stored newsletter subscription.
type NewsletterSignup struct {
	ID        string    `db:"id"         json:"id"`
	Email     string    `db:"email"      json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// LoginCode is a bot-verified login code. The community bot writes the row
// once a user DMs it the code; the site consumes it exactly once.
type LoginCode struct {
	ID            string     `db:"id"              json:"id"`
	Code          string     `db:"code"            json:"code"`
	DiscordUserID string     `db:"discord_user_id" json:"discord_user_id"`
	ExpiresAt     time.Time  `db:"expires_at"      json:"expires_at"`
	ConsumedAt    *time.Time `db:"consumed_at"     json:"consumed_at"`
	CreatedAt     time.Time  `db:"created_at"      json:"created_at"`
}
