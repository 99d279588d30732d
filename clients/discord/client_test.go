package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanctyr/clients"
	"sanctyr/core"
)

func TestDiscordClient_MissingToken_ShortCircuits(t *testing.T) {
	// No server at all: a missing bot token must never reach the network
	client := NewDiscordClient(&http.Client{}, "")
	ctx := context.Background()

	_, err := client.GetGuildWithCounts(ctx, "guild-1")
	assert.ErrorIs(t, err, core.ErrNotConfigured)

	_, err = client.GetGuildRoles(ctx, "guild-1")
	assert.ErrorIs(t, err, core.ErrNotConfigured)

	_, err = client.GetGuildMember(ctx, "guild-1", "user-1")
	assert.ErrorIs(t, err, core.ErrNotConfigured)

	_, err = client.GetChannelMessages(ctx, "channel-1", 5)
	assert.ErrorIs(t, err, core.ErrNotConfigured)

	err = client.SendChannelMessage(ctx, "channel-1", "hello")
	assert.ErrorIs(t, err, core.ErrNotConfigured)
}

func TestDiscordClient_GetGuildWidget_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/guilds/guild-1/widget.json", r.URL.Path)
		// The widget endpoint is public: no Authorization header expected
		assert.Empty(t, r.Header.Get("Authorization"))

		response := clients.DiscordWidget{
			Name:          "D'Last Sanctuary",
			InstantInvite: "https://discord.gg/sanctuary",
			PresenceCount: 42,
			Members: []clients.DiscordWidgetMember{
				{ID: "0", Username: "Warden", AvatarURL: "https://cdn.example.com/a.png"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	originalBase := discordAPIBase
	discordAPIBase = server.URL
	defer func() { discordAPIBase = originalBase }()

	// Widget works without a bot token
	client := NewDiscordClient(&http.Client{}, "")

	widget, err := client.GetGuildWidget(context.Background(), "guild-1")
	require.NoError(t, err)
	assert.Equal(t, "D'Last Sanctuary", widget.Name)
	assert.Equal(t, 42, widget.PresenceCount)
	require.Len(t, widget.Members, 1)
	assert.Equal(t, "Warden", widget.Members[0].Username)
}

func TestDiscordClient_GetGuildWidget_Disabled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A disabled widget answers 204 No Content
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	originalBase := discordAPIBase
	discordAPIBase = server.URL
	defer func() { discordAPIBase = originalBase }()

	client := NewDiscordClient(&http.Client{}, "test-token")

	widget, err := client.GetGuildWidget(context.Background(), "guild-1")
	assert.Nil(t, widget)
	assert.ErrorIs(t, err, core.ErrWidgetDisabled)
}

func TestDiscordClient_GetGuildWidget_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	originalBase := discordAPIBase
	discordAPIBase = server.URL
	defer func() { discordAPIBase = originalBase }()

	client := NewDiscordClient(&http.Client{}, "test-token")

	widget, err := client.GetGuildWidget(context.Background(), "guild-1")
	assert.Nil(t, widget)
	assert.ErrorIs(t, err, core.ErrUpstream)
	assert.NotErrorIs(t, err, core.ErrWidgetDisabled)
}

func TestDiscordClient_ExchangeCodeForToken_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/oauth2/token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		err := r.ParseForm()
		require.NoError(t, err)
		assert.Equal(t, "test-client-id", r.FormValue("client_id"))
		assert.Equal(t, "test-client-secret", r.FormValue("client_secret"))
		assert.Equal(t, "authorization_code", r.FormValue("grant_type"))
		assert.Equal(t, "test-auth-code", r.FormValue("code"))
		assert.Equal(t, "https://example.com/auth/discord/callback", r.FormValue("redirect_uri"))

		response := clients.DiscordOAuthResponse{
			AccessToken: "test-access-token",
			TokenType:   "Bearer",
			ExpiresIn:   3600,
			Scope:       "identify",
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	originalURL := discordOAuthURL
	discordOAuthURL = server.URL + "/oauth2/token"
	defer func() { discordOAuthURL = originalURL }()

	client := NewDiscordClient(&http.Client{}, "test-token")

	response, err := client.ExchangeCodeForToken(
		context.Background(),
		"test-client-id",
		"test-client-secret",
		"test-auth-code",
		"https://example.com/auth/discord/callback",
	)

	require.NoError(t, err)
	assert.Equal(t, "test-access-token", response.AccessToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, 3600, response.ExpiresIn)
	assert.Equal(t, "identify", response.Scope)
}

func TestDiscordClient_ExchangeCodeForToken_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invalid_grant", "error_description": "Invalid authorization code"}`))
	}))
	defer server.Close()

	originalURL := discordOAuthURL
	discordOAuthURL = server.URL
	defer func() { discordOAuthURL = originalURL }()

	client := NewDiscordClient(&http.Client{}, "test-token")

	response, err := client.ExchangeCodeForToken(
		context.Background(),
		"test-client-id",
		"test-client-secret",
		"bad-code",
		"https://example.com/auth/discord/callback",
	)

	assert.Nil(t, response)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestDiscordClient_GetCurrentUser_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "Bearer visitor-access-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "123456789",
			"username": "warden",
			"global_name": "Warden",
			"avatar": "abc123",
			"discriminator": "0"
		}`))
	}))
	defer server.Close()

	originalURL := discordMeURL
	discordMeURL = server.URL + "/users/@me"
	defer func() { discordMeURL = originalURL }()

	client := NewDiscordClient(&http.Client{}, "")

	user, err := client.GetCurrentUser(context.Background(), "visitor-access-token")
	require.NoError(t, err)
	assert.Equal(t, "123456789", user.ID)
	assert.Equal(t, "warden", user.Username)
	assert.Equal(t, "Warden", user.GlobalName)
	assert.Equal(t, "abc123", user.Avatar)
}
