package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type DiscordConfig struct {
	BotToken     string
	GuildID      string
	ClientID     string
	ClientSecret string
	RedirectURL  string

	// Channel IDs the site reads from / posts to
	AnnouncementsChannelID       string
	LiveFeedChannelID            string
	PartnersChannelID            string
	PartnershipRequestsChannelID string
}

// IsConfigured returns true if all required Discord configuration is present
func (c DiscordConfig) IsConfigured() bool {
	return c.BotToken != "" &&
		c.GuildID != ""
	// Note: channel IDs are optional; the endpoints that need them error individually
}

// OAuthConfigured returns true if the Discord login flow can be used
func (c DiscordConfig) OAuthConfigured() bool {
	return c.ClientID != "" &&
		c.ClientSecret != "" &&
		c.RedirectURL != ""
}

type EconomyConfig struct {
	BaseURL   string
	APISecret string
}

// IsConfigured returns true if all required economy service configuration is present
func (c EconomyConfig) IsConfigured() bool {
	return c.BaseURL != "" &&
		c.APISecret != ""
}

type AnthropicConfig struct {
	APIKey string
	Model  string // Optional with a sensible default
}

// IsConfigured returns true if the AI guide can be used
func (c AnthropicConfig) IsConfigured() bool {
	return c.APIKey != ""
}

type TenorConfig struct {
	APIKey string
}

// IsConfigured returns true if Tenor GIF resolution can be used
func (c TenorConfig) IsConfigured() bool {
	return c.APIKey != ""
}

type SessionConfig struct {
	// HashKey signs the session cookie, BlockKey encrypts it.
	// Both are hex-encoded; 32 bytes each once decoded.
	HashKey  string
	BlockKey string
	Secure   bool
}

// IsConfigured returns true if session cookies can be issued
func (c SessionConfig) IsConfigured() bool {
	return c.HashKey != "" &&
		c.BlockKey != ""
}

type AppConfig struct {
	// Core configuration (always required)
	DatabaseURL        string
	DatabaseSchema     string
	Port               string // Optional with default "8080"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	SiteBaseURL        string // Used for post-login redirects
	UseStrictConfig    bool   // If true, error when any integration is not fully configured

	// Integration configurations (grouped)
	DiscordConfig   DiscordConfig
	EconomyConfig   EconomyConfig
	AnthropicConfig AnthropicConfig
	TenorConfig     TenorConfig
	SessionConfig   SessionConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	// Core required configuration
	databaseURL, err := getEnvRequired("DB_URL")
	if err != nil {
		return nil, err
	}

	databaseSchema, err := getEnvRequired("DB_SCHEMA")
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		// Core configuration
		DatabaseURL:        databaseURL,
		DatabaseSchema:     databaseSchema,
		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		SiteBaseURL:        getEnvWithDefault("SITE_BASE_URL", "http://localhost:3000"),
		UseStrictConfig:    getEnvWithDefault("USE_STRICT_CONFIG", "true") == "true",

		// Discord configuration (optional)
		DiscordConfig: DiscordConfig{
			BotToken:     os.Getenv("DISCORD_BOT_TOKEN"),
			GuildID:      os.Getenv("DISCORD_GUILD_ID"),
			ClientID:     os.Getenv("DISCORD_CLIENT_ID"),
			ClientSecret: os.Getenv("DISCORD_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("DISCORD_REDIRECT_URL"),

			AnnouncementsChannelID:       os.Getenv("DISCORD_ANNOUNCEMENTS_CHANNEL_ID"),
			LiveFeedChannelID:            os.Getenv("DISCORD_LIVE_FEED_CHANNEL_ID"),
			PartnersChannelID:            os.Getenv("DISCORD_PARTNERS_CHANNEL_ID"),
			PartnershipRequestsChannelID: os.Getenv("DISCORD_PARTNERSHIP_REQUESTS_CHANNEL_ID"),
		},

		// Economy service configuration (optional)
		EconomyConfig: EconomyConfig{
			BaseURL:   os.Getenv("ECONOMY_API_URL"),
			APISecret: os.Getenv("ECONOMY_API_SECRET"),
		},

		// Anthropic configuration (optional)
		AnthropicConfig: AnthropicConfig{
			APIKey: os.Getenv("ANTHROPIC_API_KEY"),
			Model:  getEnvWithDefault("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
		},

		// Tenor configuration (optional)
		TenorConfig: TenorConfig{
			APIKey: os.Getenv("TENOR_API_KEY"),
		},

		// Session configuration (optional)
		SessionConfig: SessionConfig{
			HashKey:  os.Getenv("SESSION_HASH_KEY"),
			BlockKey: os.Getenv("SESSION_BLOCK_KEY"),
			Secure:   getEnvWithDefault("ENVIRONMENT", "dev") == "production",
		},
	}

	// Log which integrations are configured
	if config.DiscordConfig.IsConfigured() {
		log.Printf("✅ Discord integration configured")
	} else {
		log.Printf("⚠️ Discord integration not configured - guild data will be unavailable")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("discord integration is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if config.DiscordConfig.OAuthConfigured() {
		log.Printf("✅ Discord OAuth configured")
	} else {
		log.Printf("⚠️ Discord OAuth not configured - login will be disabled")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("discord OAuth is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if config.EconomyConfig.IsConfigured() {
		log.Printf("✅ Economy service configured")
	} else {
		log.Printf("⚠️ Economy service not configured - profiles will show a configuration notice")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("economy service is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if config.AnthropicConfig.IsConfigured() {
		log.Printf("✅ Anthropic configured")
	} else {
		log.Printf("⚠️ Anthropic not configured - the guide endpoint will be disabled")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("anthropic is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if config.TenorConfig.IsConfigured() {
		log.Printf("✅ Tenor configured")
	} else {
		log.Printf("⚠️ Tenor not configured - GIF links will be stripped, not resolved")
	}

	if config.SessionConfig.IsConfigured() {
		log.Printf("✅ Session keys configured")
	} else {
		log.Printf("⚠️ Session keys not configured - ephemeral keys will be generated at startup")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("session keys are not configured (USE_STRICT_CONFIG=true)")
		}
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
