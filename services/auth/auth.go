package auth

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/samber/mo"

	"sanctyr/clients"
	"sanctyr/config"
	"sanctyr/core"
	"sanctyr/db"
	"sanctyr/models"
)

var discordAuthorizeURL = "https://discord.com/oauth2/authorize"

// AuthService implements the Discord login flows: the standard OAuth2
// authorization-code exchange, and the bot-DM login-code path where the
// community bot verifies a code and the site consumes it.
type AuthService struct {
	discordClient  clients.DiscordClient
	loginCodesRepo *db.PostgresLoginCodesRepository
	oauthConfig    config.DiscordConfig
}

func NewAuthService(
	discordClient clients.DiscordClient,
	loginCodesRepo *db.PostgresLoginCodesRepository,
	oauthConfig config.DiscordConfig,
) *AuthService {
	return &AuthService{
		discordClient:  discordClient,
		loginCodesRepo: loginCodesRepo,
		oauthConfig:    oauthConfig,
	}
}

// LoginURL builds the authorization URL the browser is redirected to.
func (s *AuthService) LoginURL(state string) (string, error) {
	if !s.oauthConfig.OAuthConfigured() {
		return "", fmt.Errorf("discord OAuth: %w", core.ErrNotConfigured)
	}

	query := url.Values{}
	query.Set("client_id", s.oauthConfig.ClientID)
	query.Set("redirect_uri", s.oauthConfig.RedirectURL)
	query.Set("response_type", "code")
	query.Set("scope", "identify")
	if state != "" {
		query.Set("state", state)
	}

	return discordAuthorizeURL + "?" + query.Encode(), nil
}

// HandleCallback exchanges the authorization code for an access token,
// fetches the visitor's identity and returns the session user to store.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (*models.SessionUser, error) {
	if !s.oauthConfig.OAuthConfigured() {
		return nil, fmt.Errorf("discord OAuth: %w", core.ErrNotConfigured)
	}
	if code == "" {
		return nil, fmt.Errorf("no authorization code provided")
	}

	tokens, err := s.discordClient.ExchangeCodeForToken(
		ctx,
		s.oauthConfig.ClientID,
		s.oauthConfig.ClientSecret,
		code,
		s.oauthConfig.RedirectURL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	user, err := s.discordClient.GetCurrentUser(ctx, tokens.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch authenticated user: %w", err)
	}

	log.Printf("✅ OAuth login completed for user %s", user.ID)

	return &models.SessionUser{
		ID:            user.ID,
		Username:      user.Username,
		Avatar:        user.Avatar,
		Discriminator: user.Discriminator,
	}, nil
}

// VerifyLoginCode consumes a bot-verified login code exactly once. A code
// that is unknown, expired or already used yields None; the visitor is
// told to DM the bot and try again.
func (s *AuthService) VerifyLoginCode(ctx context.Context, code string) (mo.Option[*models.SessionUser], error) {
	if code == "" {
		return mo.None[*models.SessionUser](), fmt.Errorf("code not provided")
	}

	loginCode, err := s.loginCodesRepo.ConsumeCode(ctx, code)
	if err != nil {
		return mo.None[*models.SessionUser](), fmt.Errorf("failed to verify login code: %w", err)
	}
	if loginCode == nil {
		return mo.None[*models.SessionUser](), nil
	}

	// The code only proves membership; fetch the member for identity details
	member, err := s.discordClient.GetGuildMember(ctx, s.oauthConfig.GuildID, loginCode.DiscordUserID)
	if err != nil {
		return mo.None[*models.SessionUser](), fmt.Errorf("failed to fetch verified member: %w", err)
	}

	log.Printf("✅ Login code verified for user %s", loginCode.DiscordUserID)

	return mo.Some(&models.SessionUser{
		ID:            member.User.ID,
		Username:      member.User.Username,
		Avatar:        member.User.Avatar,
		Discriminator: member.User.Discriminator,
	}), nil
}
