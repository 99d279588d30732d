package models

import (
	"github.com/shopspring/decimal"
)

// EcosystemItem is one entry of the realm's ecosystem showcase.
type EcosystemItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ComingSoon  bool     `json:"coming_soon"`
	ImageID     string   `json:"image_id"`
	Features    []string `json:"features,omitempty"`
	Details     string   `json:"details,omitempty"`
}

// CommunityEvent is a scheduled or recurring community event.
type CommunityEvent struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageID     string `json:"image_id"`
}

// LoreSection is a chapter of the realm's lore.
type LoreSection struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// DonationTier is a supporter tier with a suggested monthly amount.
type DonationTier struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Perks        []string        `json:"perks"`
	GoalProgress int             `json:"goal_progress,omitempty"`
}

// GalleryItem is a community showcase entry.
type GalleryItem struct {
	ID  string `json:"id"`
	Tag string `json:"tag"`
}
