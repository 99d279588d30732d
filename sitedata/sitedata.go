// Package sitedata holds the realm's static site content. The frontend
// renders these lists verbatim; keeping them server-side means copy changes
// ship without a frontend deploy.
package sitedata

import (
	"github.com/shopspring/decimal"

	"sanctyr/models"
)

// EcosystemItems lists the realm's hubs and tools.
func EcosystemItems() []models.EcosystemItem {
	return []models.EcosystemItem{
		{
			Title:       "Emberlyn Bot",
			Description: "A versatile Discord bot to manage your community and enhance engagement.",
			ComingSoon:  false,
			ImageID:     "hub-bot-bg",
			Details:     "Emberlyn is the official bot of D'Last Sanctuary, packed with features for moderation, engagement, and utility. She is an integral part of our community, helping to keep the realm safe and vibrant.",
			Features: []string{
				"Advanced Moderation Tools",
				"Role & Permission Management",
				"Custom Engagement Commands",
				"Event & Announcement Integration",
				"AI-Powered Q&A",
			},
		},
		{
			Title:       "Artist Hub",
			Description: "A dedicated space for artists to showcase their work, find inspiration, and collaborate.",
			ComingSoon:  true,
			ImageID:     "hub-artist-bg",
		},
		{
			Title:       "Gaming Hub",
			Description: "Organize tournaments, track stats, and connect with fellow gamers.",
			ComingSoon:  true,
			ImageID:     "hub-gaming-bg",
		},
		{
			Title:       "Music Hub",
			Description: "Share your compositions, discover new music, and collaborate on projects.",
			ComingSoon:  true,
			ImageID:     "hub-music-bg",
		},
		{
			Title:       "Anime/Fandom Hub",
			Description: "A central place for all things anime and fandom, from discussions to fan art.",
			ComingSoon:  true,
			ImageID:     "hub-anime-bg",
		},
		{
			Title:       "Creator Hub",
			Description: "Tools and resources for creators to manage their content and grow their audience.",
			ComingSoon:  true,
			ImageID:     "hub-creator-bg",
		},
	}
}

// Events lists the current community events.
func Events() []models.CommunityEvent {
	return []models.CommunityEvent{
		{
			Title:       "Nexus Clash Tournament",
			Category:    "Gaming",
			Description: "The seasonal tournament begins. Sharpen your blades!",
			ImageID:     "event-tournament",
		},
		{
			Title:       "Chiaroscuro Art Contest",
			Category:    "Art",
			Description: "Showcase your mastery of light and shadow. Grand prizes await.",
			ImageID:     "event-contest",
		},
		{
			Title:       "The Ashen Masquerade",
			Category:    "Roleplay",
			Description: "A realm-wide roleplaying event of intrigue and mystery.",
			ImageID:     "event-rp",
		},
		{
			Title:       "Artist Hub Launch",
			Category:    "Update",
			Description: "The new Artist Hub is coming soon! Prepare your portfolios.",
			ImageID:     "event-update",
		},
	}
}

// LoreSections lists the chapters of the realm's lore.
func LoreSections() []models.LoreSection {
	return []models.LoreSection{
		{
			Title: "The Eternal Queen & King",
			Body:  "At the heart of the realm stand the Eternal Queen and King, immortal sovereigns who have witnessed ages turn to dust. Their wisdom is as boundless as their power, guiding the sanctuary through eons of turmoil and peace. They are the twin flames from which the sanctuary was born.",
		},
		{
			Title: "The High Council",
			Body:  "Comprised of the most esteemed and sagacious individuals from across the realms, the High Council advises the Eternal monarchs. Each member is a master of their craft, be it arcane arts, statecraft, or ancient warfare, ensuring the kingdom's stability and prosperity.",
		},
		{
			Title: "The Wardens",
			Body:  "The silent protectors and enforcers of the sanctuary's laws. Clad in moonlit silver armor, the Wardens patrol the seen and unseen paths of the realm. They are chosen for their unwavering loyalty and formidable skills, embodying justice and order.",
		},
		{
			Title: "Citizens of the Realm",
			Body:  "From the most talented artists to the bravest gamers, the citizens are the lifeblood of D'Last Sanctuary. They are the creators, the dreamers, and the adventurers whose passions and stories weave the very fabric of the kingdom, shaping its destiny with every creation and quest.",
		},
	}
}

// DonationTiers lists the supporter tiers with suggested monthly amounts.
func DonationTiers() []models.DonationTier {
	return []models.DonationTier{
		{
			Name:        "Flame of Nitro",
			Description: "Fund Discord Nitro boosts to keep the Sanctuary blazing with enhanced features for all members.",
			Amount:      decimal.NewFromFloat(4.99),
			Currency:    "USD",
			Perks:       []string{"Supporter role", "Booster badge on the site"},
		},
		{
			Name:         "The Citadel's Vault",
			Description:  "Contribute directly to server hosting, domain, and bot maintenance costs to keep our digital fortress secure.",
			Amount:       decimal.NewFromFloat(9.99),
			Currency:     "USD",
			Perks:        []string{"Supporter role", "Name in the monthly vault report"},
			GoalProgress: 70,
		},
		{
			Name:        "Forging New Realms",
			Description: "Support the development of new community projects and applications, like the upcoming Gaming and Artist Hubs.",
			Amount:      decimal.NewFromFloat(14.99),
			Currency:    "USD",
			Perks:       []string{"Supporter role", "Early access to new hubs"},
		},
		{
			Name:        "Patron of the Crown",
			Description: "Provide general support to the creators and leaders of the realm, ensuring the vision continues to thrive.",
			Amount:      decimal.NewFromFloat(24.99),
			Currency:    "USD",
			Perks:       []string{"Patron role", "Private patron lounge", "Vote on realm initiatives"},
		},
	}
}

// GalleryItems lists the community showcase entries.
func GalleryItems() []models.GalleryItem {
	return []models.GalleryItem{
		{ID: "community-art-1", Tag: "Art"},
		{ID: "community-cosplay-1", Tag: "Cosplay"},
		{ID: "community-art-2", Tag: "Art"},
		{ID: "community-music-1", Tag: "Music"},
		{ID: "community-rp-1", Tag: "Roleplay"},
		{ID: "community-art-3", Tag: "Art"},
		{ID: "community-writing-1", Tag: "Writing"},
		{ID: "community-cosplay-2", Tag: "Cosplay"},
		{ID: "community-art-4", Tag: "Art"},
		{ID: "community-video-1", Tag: "Video"},
	}
}

// FallbackPartners is served when the partners channel is unreachable or
// yields no usable embeds, so the partners section never renders empty.
func FallbackPartners() []models.Partner {
	return []models.Partner{
		{Name: "Mythic Realms", JoinLink: "#", ImageURL: "partner-mythic-realms"},
		{Name: "Cyber Scape", JoinLink: "#", ImageURL: "partner-cyber-scape"},
		{Name: "Pixel Perfect", JoinLink: "#", ImageURL: "partner-pixel-perfect"},
		{Name: "Bardic Tales", JoinLink: "#", ImageURL: "partner-bardic-tales"},
		{Name: "Aesthetic Valley", JoinLink: "#", ImageURL: "partner-aesthetic-valley"},
	}
}
