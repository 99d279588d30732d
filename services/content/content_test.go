package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanctyr/clients/tenor"
	"sanctyr/core"
	"sanctyr/models"
)

var testRoles = []models.GuildRole{
	{ID: "100", Name: "High Council", Color: 0xff0000, Position: 10},
	{ID: "200", Name: "Warden", Color: 0x00ff00, Position: 5},
}

func TestNormalize_ResolvesRoleMentions(t *testing.T) {
	mockTenor := new(tenor.MockTenorClient)
	service := NewContentService(mockTenor)

	result := service.Normalize(context.Background(), "Calling all <@&100> and <@&200> members!", testRoles)

	assert.Equal(t, "Calling all @High Council and @Warden members!", result.DisplayContent)
	require.Len(t, result.RoleMentions, 2)
	assert.Equal(t, "High Council", result.RoleMentions[0].Name)
	assert.Equal(t, 0xff0000, result.RoleMentions[0].Color)
	assert.Equal(t, "Warden", result.RoleMentions[1].Name)
}

func TestNormalize_RepeatedMentionListedOnce(t *testing.T) {
	mockTenor := new(tenor.MockTenorClient)
	service := NewContentService(mockTenor)

	result := service.Normalize(context.Background(), "<@&200> ping, <@&200> ping again", testRoles)

	assert.Equal(t, "@Warden ping, @Warden ping again", result.DisplayContent)
	require.Len(t, result.RoleMentions, 1)
	assert.Equal(t, "Warden", result.RoleMentions[0].Name)
}

func TestNormalize_UnknownRoleTokenLeftUnchanged(t *testing.T) {
	mockTenor := new(tenor.MockTenorClient)
	service := NewContentService(mockTenor)

	result := service.Normalize(context.Background(), "Hello <@&999>!", testRoles)

	assert.Equal(t, "Hello <@&999>!", result.DisplayContent)
	assert.Empty(t, result.RoleMentions)
}

func TestNormalize_ResolvesTenorLink(t *testing.T) {
	mockTenor := new(tenor.MockTenorClient)
	mockTenor.On("ResolveGifURL", context.Background(), "12345").
		Return("https://media.tenor.com/xyz/dance.gif", nil)
	service := NewContentService(mockTenor)

	result := service.Normalize(context.Background(),
		"look at this https://tenor.com/view/funny-dance-12345", testRoles)

	assert.Equal(t, "look at this", result.DisplayContent)
	assert.Equal(t, "https://media.tenor.com/xyz/dance.gif", result.GifURL)
	mockTenor.AssertExpectations(t)
}

func TestNormalize_SecondTenorLinkLeftInText(t *testing.T) {
	mockTenor := new(tenor.MockTenorClient)
	mockTenor.On("ResolveGifURL", context.Background(), "12345").
		Return("https://media.tenor.com/xyz/dance.gif", nil)
	service := NewContentService(mockTenor)

	result := service.Normalize(context.Background(),
		"https://tenor.com/view/funny-dance-12345 and https://tenor.com/view/sad-cat-67890", testRoles)

	assert.Equal(t, "and https://tenor.com/view/sad-cat-67890", result.DisplayContent)
	assert.Equal(t, "https://media.tenor.com/xyz/dance.gif", result.GifURL)
	mockTenor.AssertExpectations(t)
}

func TestNormalize_TenorFailureStripsLink(t *testing.T) {
	mockTenor := new(tenor.MockTenorClient)
	mockTenor.On("ResolveGifURL", context.Background(), "12345").
		Return("", core.ErrNotConfigured)
	service := NewContentService(mockTenor)

	result := service.Normalize(context.Background(),
		"https://tenor.com/view/funny-dance-12345", testRoles)

	assert.Empty(t, result.DisplayContent)
	assert.Empty(t, result.GifURL)
}

func TestNormalize_PlainContentUnchanged(t *testing.T) {
	mockTenor := new(tenor.MockTenorClient)
	service := NewContentService(mockTenor)

	result := service.Normalize(context.Background(), "just a regular message", testRoles)

	assert.Equal(t, "just a regular message", result.DisplayContent)
	assert.Empty(t, result.RoleMentions)
	assert.Empty(t, result.GifURL)
}
